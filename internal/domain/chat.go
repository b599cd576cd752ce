package domain

import "context"

type ChatRole string

const (
	RoleSystem    ChatRole = "system"
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	Role    ChatRole
	Content string
}

// ChatCompleter is the negotiation collaborator. Implementations must
// honor ctx cancellation and fail with ErrUpstreamConfig when no
// credential is configured, ErrUpstreamTransient otherwise.
type ChatCompleter interface {
	Complete(ctx context.Context, conversation []ChatMessage) (string, error)
}
