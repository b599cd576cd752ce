package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/inflink/inflink-escrow-service/internal/domain"
	parent "github.com/inflink/inflink-escrow-service/internal/usecase"
	escrowdto "github.com/inflink/inflink-escrow-service/internal/usecase/dto/escrow"
	"github.com/jaevor/go-nanoid"
)

// CreateEscrow funds an accepted contract. The transaction and its
// milestones commit together or not at all; the conflict check and the
// insert run inside the per-contract lock so two concurrent calls for
// the same contract cannot both pass.
func (uc *DefaultEscrowUsecase) CreateEscrow(input *escrowdto.CreateEscrowInput) (*domain.EscrowTransaction, error) {
	unlock := uc.contractLocks.Lock(input.ContractID)
	defer unlock()

	contract, err := uc.ContractRepo.GetContractByID(input.ContractID)
	if err != nil {
		return nil, err
	}
	if contract.Status != domain.ContractAccepted {
		uc.recordError("create", "invalid_transition")
		return nil, fmt.Errorf("%w: escrow requires an accepted contract, got %s", domain.ErrInvalidTransition, contract.Status)
	}

	active, err := uc.EscrowRepo.GetActiveEscrowByContractID(input.ContractID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if active != nil {
		uc.recordError("create", "conflict")
		return nil, fmt.Errorf("%w: escrow %s is still %s", domain.ErrConflict, active.ID, active.Status)
	}

	specs := input.Milestones
	if len(specs) == 0 {
		// No explicit milestones: derive one per contract deliverable.
		for _, spec := range parent.DeriveMilestoneSpecs(contract) {
			specs = append(specs, escrowdto.MilestoneSpecInput{
				Description: spec.Description,
				DueDate:     spec.DueDate,
			})
		}
	}

	milestones, err := buildMilestones(contract, specs)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTerms) {
			uc.recordError("create", "invalid_terms")
		}
		return nil, err
	}

	now := time.Now()
	escrow := &domain.EscrowTransaction{
		ID:           uuid.New().String(),
		CampaignID:   contract.CampaignID,
		ContractID:   contract.ID,
		InfluencerID: contract.InfluencerID,
		BrandID:      contract.BrandID,
		Amount:       input.Amount,
		Status:       domain.EscrowPending,
		Milestones:   milestones,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, m := range milestones {
		m.EscrowID = escrow.ID
	}

	if err := uc.EscrowRepo.CreateEscrow(escrow); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordEscrowCreated(escrow.BrandID, escrow.Amount, len(milestones))
	}
	uc.publishEscrowEvent(escrow, "escrow_created", "")

	return escrow, nil
}

func buildMilestones(contract *domain.Contract, specs []escrowdto.MilestoneSpecInput) ([]*domain.Milestone, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: escrow requires at least one milestone", domain.ErrInvalidTerms)
	}

	generateID, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}

	milestones := make([]*domain.Milestone, 0, len(specs))
	for i, spec := range specs {
		if spec.DueDate.Before(contract.StartDate) || spec.DueDate.After(contract.EndDate) {
			return nil, fmt.Errorf("%w: milestone %d due %s outside contract dates %s..%s",
				domain.ErrInvalidTerms, i+1,
				spec.DueDate.Format("2006-01-02"),
				contract.StartDate.Format("2006-01-02"),
				contract.EndDate.Format("2006-01-02"))
		}
		milestones = append(milestones, &domain.Milestone{
			ID:          generateID(),
			Description: spec.Description,
			DueDate:     spec.DueDate,
			Status:      domain.MilestonePending,
			Position:    i,
		})
	}
	return milestones, nil
}
