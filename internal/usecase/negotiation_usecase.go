package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/inflink/inflink-escrow-service/internal/domain"
	"github.com/inflink/inflink-escrow-service/internal/infrastructure/metrics"
	contractdto "github.com/inflink/inflink-escrow-service/internal/usecase/dto/contract"
)

type NegotiationUsecase interface {
	Complete(ctx context.Context, conversation []domain.ChatMessage) (string, error)
	ConcludeContract(ctx context.Context, conversation []domain.ChatMessage, terms *contractdto.ProposeContractInput) (*domain.Contract, string, error)
}

// DefaultNegotiationUsecase drives the chat collaborator that brands and
// influencers negotiate through. Contract state is only touched after
// the collaborator has answered, so a cancelled or failed call never
// leaves a half-written contract behind.
type DefaultNegotiationUsecase struct {
	Completer       domain.ChatCompleter
	ContractUsecase ContractUsecase
	Metrics         *metrics.EscrowMetrics
}

func NewDefaultNegotiationUsecase(
	completer domain.ChatCompleter,
	contractUsecase ContractUsecase,
	escrowMetrics *metrics.EscrowMetrics,
) *DefaultNegotiationUsecase {
	return &DefaultNegotiationUsecase{
		Completer:       completer,
		ContractUsecase: contractUsecase,
		Metrics:         escrowMetrics,
	}
}

func (uc *DefaultNegotiationUsecase) Complete(ctx context.Context, conversation []domain.ChatMessage) (string, error) {
	if len(conversation) == 0 {
		return "", fmt.Errorf("%w: conversation must not be empty", domain.ErrInvalidTerms)
	}

	started := time.Now()
	reply, err := uc.Completer.Complete(ctx, conversation)
	if uc.Metrics != nil {
		uc.Metrics.ObserveChatCompletion(time.Since(started).Seconds(), err == nil)
	}
	if err != nil {
		return "", err
	}
	return reply, nil
}

// ConcludeContract finishes a negotiation: the collaborator produces
// its closing reply first, and only then are the agreed terms proposed
// as a pending contract.
func (uc *DefaultNegotiationUsecase) ConcludeContract(
	ctx context.Context,
	conversation []domain.ChatMessage,
	terms *contractdto.ProposeContractInput,
) (*domain.Contract, string, error) {
	reply, err := uc.Complete(ctx, conversation)
	if err != nil {
		return nil, "", err
	}

	contract, err := uc.ContractUsecase.ProposeContract(terms)
	if err != nil {
		return nil, "", err
	}
	return contract, reply, nil
}
