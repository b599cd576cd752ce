package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/inflink/inflink-escrow-service/internal/domain"
	escrowdto "github.com/inflink/inflink-escrow-service/internal/usecase/dto/escrow"
)

// Advance moves a transaction along its state machine. Entering
// disputed requires a reason; leaving it clears the reason again so the
// reason is set exactly while the dispute holds. Entering released or
// paid stamps the release date.
func (uc *DefaultEscrowUsecase) Advance(input *escrowdto.AdvanceEscrowInput) (*domain.EscrowTransaction, error) {
	target := domain.EscrowStatus(input.TargetStatus)
	if !knownEscrowStatus(target) {
		uc.recordError("advance", "invalid_terms")
		return nil, fmt.Errorf("%w: unknown escrow status %q", domain.ErrInvalidTerms, input.TargetStatus)
	}

	unlock := uc.escrowLocks.Lock(input.EscrowID)
	defer unlock()

	escrow, err := uc.EscrowRepo.GetEscrowByID(input.EscrowID)
	if err != nil {
		return nil, err
	}
	if !escrow.Status.CanTransitionTo(target) {
		uc.recordError("advance", "invalid_transition")
		return nil, fmt.Errorf("%w: escrow %s -> %s", domain.ErrInvalidTransition, escrow.Status, target)
	}

	// The audit row and event keep the reason the transition acted on,
	// even when leaving disputed clears it on the transaction.
	reason := escrow.DisputeReason
	if target == domain.EscrowDisputed {
		if strings.TrimSpace(input.DisputeReason) == "" {
			uc.recordError("advance", "invalid_terms")
			return nil, fmt.Errorf("%w: dispute requires a reason", domain.ErrInvalidTerms)
		}
		reason = input.DisputeReason
		escrow.DisputeReason = reason
	} else {
		escrow.DisputeReason = ""
	}
	if target == domain.EscrowReleased || target == domain.EscrowPaid {
		releaseDate := time.Now()
		escrow.ReleaseDate = &releaseDate
	}

	from := escrow.Status
	escrow.Status = target
	escrow.UpdatedAt = time.Now()

	if err := uc.EscrowRepo.UpdateEscrow(escrow); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordEscrowTransition(string(from), string(target))
	}
	uc.logEscrowStatus(escrow, from, reason)
	uc.publishEscrowEvent(escrow, "escrow_"+string(target), reason)

	return escrow, nil
}

func knownEscrowStatus(s domain.EscrowStatus) bool {
	switch s {
	case domain.EscrowPending, domain.EscrowInProgress, domain.EscrowCompleted,
		domain.EscrowReleased, domain.EscrowRefunded, domain.EscrowDisputed, domain.EscrowPaid:
		return true
	}
	return false
}

// autoComplete closes the transaction once every milestone has been
// reviewed. Caller holds the escrow lock. Only an active pre-completed
// transaction is moved; repeating the trigger on a completed or
// terminal transaction changes nothing.
func (uc *DefaultEscrowUsecase) autoComplete(escrow *domain.EscrowTransaction) error {
	if !escrow.Progress().Reviewed() {
		return nil
	}
	if escrow.Status != domain.EscrowPending && escrow.Status != domain.EscrowInProgress {
		return nil
	}

	from := escrow.Status
	escrow.Status = domain.EscrowCompleted
	escrow.UpdatedAt = time.Now()
	if err := uc.EscrowRepo.UpdateEscrow(escrow); err != nil {
		return err
	}

	if uc.Metrics != nil {
		uc.Metrics.RecordEscrowTransition(string(from), string(domain.EscrowCompleted))
	}
	uc.logEscrowStatus(escrow, from, escrow.DisputeReason)
	uc.publishEscrowEvent(escrow, "escrow_completed", escrow.DisputeReason)

	return nil
}
