package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/inflink/inflink-escrow-service/internal/domain"
	publisher "github.com/inflink/inflink-escrow-service/internal/infrastructure/kafka"
	"github.com/inflink/inflink-escrow-service/internal/infrastructure/logger"
	"github.com/inflink/inflink-escrow-service/internal/infrastructure/metrics"
	contractdto "github.com/inflink/inflink-escrow-service/internal/usecase/dto/contract"
)

type ContractUsecase interface {
	ProposeContract(input *contractdto.ProposeContractInput) (*domain.Contract, error)
	RespondContract(contractID string, decision domain.ContractDecision) (*domain.Contract, error)
	CompleteContract(contractID string) (*domain.Contract, error)
	GetContractByID(contractID string) (*domain.Contract, error)
	GetContractsByParty(partyID string) ([]*domain.Contract, error)
}

type DefaultContractUsecase struct {
	ContractRepo domain.ContractRepository
	Publisher    *publisher.KafkaPublisher
	Metrics      *metrics.EscrowMetrics
	EventLog     logger.StatusEventLogger

	locks KeyMutex
}

func NewDefaultContractUsecase(
	contractRepo domain.ContractRepository,
	kafkaPublisher *publisher.KafkaPublisher,
	escrowMetrics *metrics.EscrowMetrics,
	eventLog logger.StatusEventLogger,
) *DefaultContractUsecase {
	return &DefaultContractUsecase{
		ContractRepo: contractRepo,
		Publisher:    kafkaPublisher,
		Metrics:      escrowMetrics,
		EventLog:     eventLog,
	}
}

func (uc *DefaultContractUsecase) ProposeContract(input *contractdto.ProposeContractInput) (*domain.Contract, error) {
	if input.EndDate.Before(input.StartDate) {
		return nil, fmt.Errorf("%w: end date %s before start date %s",
			domain.ErrInvalidTerms, input.EndDate.Format("2006-01-02"), input.StartDate.Format("2006-01-02"))
	}
	if strings.TrimSpace(input.Deliverables) == "" {
		return nil, fmt.Errorf("%w: deliverables must not be empty", domain.ErrInvalidTerms)
	}

	contract := &domain.Contract{
		ID:           uuid.New().String(),
		CampaignID:   input.CampaignID,
		BrandID:      input.BrandID,
		InfluencerID: input.InfluencerID,
		CampaignName: input.CampaignName,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Compensation: input.Compensation,
		Deliverables: input.Deliverables,
		Status:       domain.ContractPending,
		CreatedAt:    time.Now(),
	}

	if err := uc.ContractRepo.CreateContract(contract); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordContractProposed(contract.BrandID)
	}
	uc.publishContractEvent(contract, "contract_proposed")

	return contract, nil
}

func (uc *DefaultContractUsecase) RespondContract(contractID string, decision domain.ContractDecision) (*domain.Contract, error) {
	var target domain.ContractStatus
	switch decision {
	case domain.DecisionAccept:
		target = domain.ContractAccepted
	case domain.DecisionReject:
		target = domain.ContractRejected
	default:
		return nil, fmt.Errorf("%w: unknown decision %q", domain.ErrInvalidTerms, decision)
	}

	contract, err := uc.transition(contractID, target)
	if err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordContractResponded(string(decision))
	}
	uc.publishContractEvent(contract, "contract_"+string(target))

	return contract, nil
}

func (uc *DefaultContractUsecase) CompleteContract(contractID string) (*domain.Contract, error) {
	contract, err := uc.transition(contractID, domain.ContractCompleted)
	if err != nil {
		return nil, err
	}

	uc.publishContractEvent(contract, "contract_completed")

	return contract, nil
}

// transition moves a contract to target under the per-contract lock.
func (uc *DefaultContractUsecase) transition(contractID string, target domain.ContractStatus) (*domain.Contract, error) {
	unlock := uc.locks.Lock(contractID)
	defer unlock()

	contract, err := uc.ContractRepo.GetContractByID(contractID)
	if err != nil {
		return nil, err
	}
	if !contract.Status.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: contract %s -> %s", domain.ErrInvalidTransition, contract.Status, target)
	}
	if err := uc.ContractRepo.UpdateContractStatus(contractID, target); err != nil {
		return nil, err
	}

	if uc.EventLog != nil {
		event := logger.ContractStatusEvent{
			ContractID: contract.ID,
			BrandID:    contract.BrandID,
			FromStatus: string(contract.Status),
			ToStatus:   string(target),
			Timestamp:  time.Now(),
		}
		if err := uc.EventLog.LogContractStatus(context.Background(), event); err != nil {
			slog.Error("failed to log contract status event", "contract_id", contract.ID, "error", err.Error())
		}
	}

	contract.Status = target
	return contract, nil
}

func (uc *DefaultContractUsecase) GetContractByID(contractID string) (*domain.Contract, error) {
	return uc.ContractRepo.GetContractByID(contractID)
}

func (uc *DefaultContractUsecase) GetContractsByParty(partyID string) ([]*domain.Contract, error) {
	return uc.ContractRepo.GetContractsByParty(partyID)
}

func (uc *DefaultContractUsecase) publishContractEvent(contract *domain.Contract, event string) {
	if uc.Publisher == nil {
		return
	}
	go func(e publisher.ContractEvent) {
		if err := uc.Publisher.PublishContract(e); err != nil {
			slog.Error("failed to publish ContractEvent", "event", e.Event, "contract_id", e.ContractID, "error", err.Error())
		}
	}(publisher.ContractEvent{
		ContractID:   contract.ID,
		CampaignID:   contract.CampaignID,
		BrandID:      contract.BrandID,
		InfluencerID: contract.InfluencerID,
		Status:       string(contract.Status),
		Event:        event,
	})
}
