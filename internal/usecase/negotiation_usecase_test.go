package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/inflink/inflink-escrow-service/internal/domain"
	"github.com/inflink/inflink-escrow-service/internal/infrastructure/memstore"
	"github.com/stretchr/testify/require"
)

type stubCompleter struct {
	reply string
	err   error
	calls int
}

func (s *stubCompleter) Complete(ctx context.Context, conversation []domain.ChatMessage) (string, error) {
	s.calls++
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUpstreamTransient, err)
	}
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newNegotiationUsecase(completer domain.ChatCompleter) (*DefaultNegotiationUsecase, *DefaultContractUsecase) {
	contractUC := NewDefaultContractUsecase(memstore.NewInMemoryContractRepository(), nil, nil, nil)
	return NewDefaultNegotiationUsecase(completer, contractUC, nil), contractUC
}

func negotiationConversation() []domain.ChatMessage {
	return []domain.ChatMessage{
		{Role: domain.RoleSystem, Content: "You negotiate influencer campaign contracts."},
		{Role: domain.RoleUser, Content: "Two feed posts for ₩800,000, June 15 to July 15."},
	}
}

func TestNegotiationComplete(t *testing.T) {
	uc, _ := newNegotiationUsecase(&stubCompleter{reply: "Deal. I will draft the contract."})

	reply, err := uc.Complete(context.Background(), negotiationConversation())
	require.NoError(t, err)
	require.Equal(t, "Deal. I will draft the contract.", reply)
}

func TestNegotiationCompleteEmptyConversation(t *testing.T) {
	uc, _ := newNegotiationUsecase(&stubCompleter{reply: "hi"})

	_, err := uc.Complete(context.Background(), nil)
	require.ErrorIs(t, err, domain.ErrInvalidTerms)
}

func TestConcludeContract(t *testing.T) {
	uc, contractUC := newNegotiationUsecase(&stubCompleter{reply: "Agreed on all terms."})

	contract, reply, err := uc.ConcludeContract(context.Background(), negotiationConversation(), validTerms())
	require.NoError(t, err)
	require.Equal(t, "Agreed on all terms.", reply)
	require.Equal(t, domain.ContractPending, contract.Status)

	stored, err := contractUC.GetContractByID(contract.ID)
	require.NoError(t, err)
	require.Equal(t, contract.ID, stored.ID)
}

func TestConcludeContractUpstreamFailure(t *testing.T) {
	completer := &stubCompleter{err: fmt.Errorf("%w: connection reset", domain.ErrUpstreamTransient)}
	uc, contractUC := newNegotiationUsecase(completer)

	_, _, err := uc.ConcludeContract(context.Background(), negotiationConversation(), validTerms())
	require.ErrorIs(t, err, domain.ErrUpstreamTransient)

	// a failed collaborator call must not leave contract state behind
	contracts, err := contractUC.GetContractsByParty("brand001")
	require.NoError(t, err)
	require.Empty(t, contracts)
}

func TestConcludeContractCancelled(t *testing.T) {
	uc, contractUC := newNegotiationUsecase(&stubCompleter{reply: "Agreed."})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := uc.ConcludeContract(ctx, negotiationConversation(), validTerms())
	require.ErrorIs(t, err, domain.ErrUpstreamTransient)

	contracts, err := contractUC.GetContractsByParty("brand001")
	require.NoError(t, err)
	require.Empty(t, contracts)
}

func TestConcludeContractConfigurationError(t *testing.T) {
	completer := &stubCompleter{err: fmt.Errorf("%w: OPENAI_API_KEY is not set", domain.ErrUpstreamConfig)}
	uc, _ := newNegotiationUsecase(completer)

	_, _, err := uc.ConcludeContract(context.Background(), negotiationConversation(), validTerms())
	require.ErrorIs(t, err, domain.ErrUpstreamConfig)
	require.NotErrorIs(t, err, domain.ErrUpstreamTransient)
}
