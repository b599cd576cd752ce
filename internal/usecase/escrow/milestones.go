package usecase

import (
	"fmt"
	"strings"

	"github.com/inflink/inflink-escrow-service/internal/domain"
)

// StartMilestone marks a pending milestone as being worked on.
func (uc *DefaultEscrowUsecase) StartMilestone(escrowID, milestoneID string) (*domain.Milestone, error) {
	unlock := uc.escrowLocks.Lock(escrowID)
	defer unlock()

	_, milestone, err := uc.loadMilestone(escrowID, milestoneID)
	if err != nil {
		return nil, err
	}
	if !milestone.Status.CanTransitionTo(domain.MilestoneInProgress) {
		uc.recordError("start_milestone", "invalid_transition")
		return nil, fmt.Errorf("%w: milestone %s -> %s", domain.ErrInvalidTransition, milestone.Status, domain.MilestoneInProgress)
	}

	milestone.Status = domain.MilestoneInProgress
	if err := uc.EscrowRepo.UpdateMilestone(milestone); err != nil {
		return nil, err
	}
	return milestone, nil
}

// RecordMilestoneEvidence attaches the influencer's proof and marks the
// milestone completed, ready for the brand's review.
func (uc *DefaultEscrowUsecase) RecordMilestoneEvidence(escrowID, milestoneID, evidence string) (*domain.Milestone, error) {
	if strings.TrimSpace(evidence) == "" {
		uc.recordError("record_evidence", "invalid_terms")
		return nil, fmt.Errorf("%w: evidence must not be empty", domain.ErrInvalidTerms)
	}

	unlock := uc.escrowLocks.Lock(escrowID)
	defer unlock()

	_, milestone, err := uc.loadMilestone(escrowID, milestoneID)
	if err != nil {
		return nil, err
	}
	if !milestone.Status.CanTransitionTo(domain.MilestoneCompleted) {
		uc.recordError("record_evidence", "invalid_transition")
		return nil, fmt.Errorf("%w: milestone %s -> %s", domain.ErrInvalidTransition, milestone.Status, domain.MilestoneCompleted)
	}

	milestone.Status = domain.MilestoneCompleted
	milestone.Evidence = evidence
	if err := uc.EscrowRepo.UpdateMilestone(milestone); err != nil {
		return nil, err
	}
	return milestone, nil
}

// ReviewMilestone approves or rejects a completed milestone. Once every
// milestone of the transaction is reviewed, the transaction itself is
// closed out as completed.
func (uc *DefaultEscrowUsecase) ReviewMilestone(escrowID, milestoneID string, decision domain.MilestoneDecision) (*domain.EscrowTransaction, error) {
	var target domain.MilestoneStatus
	switch decision {
	case domain.MilestoneApprove:
		target = domain.MilestoneApproved
	case domain.MilestoneReject:
		target = domain.MilestoneRejected
	default:
		uc.recordError("review_milestone", "invalid_terms")
		return nil, fmt.Errorf("%w: unknown decision %q", domain.ErrInvalidTerms, decision)
	}

	unlock := uc.escrowLocks.Lock(escrowID)
	defer unlock()

	escrow, milestone, err := uc.loadMilestone(escrowID, milestoneID)
	if err != nil {
		return nil, err
	}
	if !milestone.Status.CanTransitionTo(target) {
		uc.recordError("review_milestone", "invalid_transition")
		return nil, fmt.Errorf("%w: milestone %s -> %s", domain.ErrInvalidTransition, milestone.Status, target)
	}

	milestone.Status = target
	if err := uc.EscrowRepo.UpdateMilestone(milestone); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordMilestoneReviewed(string(decision))
	}
	uc.publishEscrowEvent(escrow, "milestone_"+string(target), escrow.DisputeReason)

	if err := uc.autoComplete(escrow); err != nil {
		return nil, err
	}

	return escrow, nil
}

func (uc *DefaultEscrowUsecase) loadMilestone(escrowID, milestoneID string) (*domain.EscrowTransaction, *domain.Milestone, error) {
	escrow, err := uc.EscrowRepo.GetEscrowByID(escrowID)
	if err != nil {
		return nil, nil, err
	}
	milestone := escrow.FindMilestone(milestoneID)
	if milestone == nil {
		return nil, nil, fmt.Errorf("%w: milestone %s in escrow %s", domain.ErrNotFound, milestoneID, escrowID)
	}
	return escrow, milestone, nil
}
