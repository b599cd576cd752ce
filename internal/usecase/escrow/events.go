package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/inflink/inflink-escrow-service/internal/domain"
	publisher "github.com/inflink/inflink-escrow-service/internal/infrastructure/kafka"
	"github.com/inflink/inflink-escrow-service/internal/infrastructure/logger"
)

// reason carries the dispute reason the transition acted on. It is
// passed explicitly because leaving disputed clears the field on the
// transaction while the audit row still needs the why.
func (uc *DefaultEscrowUsecase) publishEscrowEvent(escrow *domain.EscrowTransaction, event, reason string) {
	if uc.Publisher == nil {
		return
	}
	go func(e publisher.EscrowEvent) {
		if err := uc.Publisher.PublishEscrow(e); err != nil {
			slog.Error("failed to publish EscrowEvent", "event", e.Event, "escrow_id", e.EscrowID, "error", err.Error())
		}
	}(publisher.EscrowEvent{
		EscrowID:      escrow.ID,
		ContractID:    escrow.ContractID,
		BrandID:       escrow.BrandID,
		InfluencerID:  escrow.InfluencerID,
		Amount:        escrow.Amount,
		Status:        string(escrow.Status),
		DisputeReason: reason,
		Event:         event,
	})
}

func (uc *DefaultEscrowUsecase) logEscrowStatus(escrow *domain.EscrowTransaction, from domain.EscrowStatus, reason string) {
	if uc.EventLog == nil {
		return
	}
	event := logger.EscrowStatusEvent{
		EscrowID:   escrow.ID,
		ContractID: escrow.ContractID,
		FromStatus: string(from),
		ToStatus:   string(escrow.Status),
		Reason:     reason,
		Timestamp:  time.Now(),
	}
	if err := uc.EventLog.LogEscrowStatus(context.Background(), event); err != nil {
		slog.Error("failed to log escrow status event", "escrow_id", escrow.ID, "error", err.Error())
	}
}

func (uc *DefaultEscrowUsecase) recordError(operation, reason string) {
	if uc.Metrics != nil {
		uc.Metrics.RecordOperationError(operation, reason)
	}
}
