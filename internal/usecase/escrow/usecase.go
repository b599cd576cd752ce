package usecase

import (
	"github.com/inflink/inflink-escrow-service/internal/domain"
	publisher "github.com/inflink/inflink-escrow-service/internal/infrastructure/kafka"
	"github.com/inflink/inflink-escrow-service/internal/infrastructure/logger"
	"github.com/inflink/inflink-escrow-service/internal/infrastructure/metrics"
	parent "github.com/inflink/inflink-escrow-service/internal/usecase"
	escrowdto "github.com/inflink/inflink-escrow-service/internal/usecase/dto/escrow"
)

type EscrowUsecase interface {
	CreateEscrow(input *escrowdto.CreateEscrowInput) (*domain.EscrowTransaction, error)
	Advance(input *escrowdto.AdvanceEscrowInput) (*domain.EscrowTransaction, error)

	StartMilestone(escrowID, milestoneID string) (*domain.Milestone, error)
	RecordMilestoneEvidence(escrowID, milestoneID, evidence string) (*domain.Milestone, error)
	ReviewMilestone(escrowID, milestoneID string, decision domain.MilestoneDecision) (*domain.EscrowTransaction, error)

	GetEscrowByID(escrowID string) (*domain.EscrowTransaction, error)
	GetEscrowsByParty(partyID string) ([]*domain.EscrowTransaction, error)
	GetProgress(escrowID string) (*domain.MilestoneProgress, error)
}

type DefaultEscrowUsecase struct {
	EscrowRepo   domain.EscrowRepository
	ContractRepo domain.ContractRepository
	Publisher    *publisher.KafkaPublisher
	Metrics      *metrics.EscrowMetrics
	EventLog     logger.StatusEventLogger

	// Creation serializes on the contract id, every later transition on
	// the transaction id.
	contractLocks parent.KeyMutex
	escrowLocks   parent.KeyMutex
}

func NewDefaultEscrowUsecase(
	escrowRepo domain.EscrowRepository,
	contractRepo domain.ContractRepository,
	kafkaPublisher *publisher.KafkaPublisher,
	escrowMetrics *metrics.EscrowMetrics,
	eventLog logger.StatusEventLogger,
) *DefaultEscrowUsecase {
	return &DefaultEscrowUsecase{
		EscrowRepo:   escrowRepo,
		ContractRepo: contractRepo,
		Publisher:    kafkaPublisher,
		Metrics:      escrowMetrics,
		EventLog:     eventLog,
	}
}
