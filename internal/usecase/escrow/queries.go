package usecase

import "github.com/inflink/inflink-escrow-service/internal/domain"

func (uc *DefaultEscrowUsecase) GetEscrowByID(escrowID string) (*domain.EscrowTransaction, error) {
	return uc.EscrowRepo.GetEscrowByID(escrowID)
}

func (uc *DefaultEscrowUsecase) GetEscrowsByParty(partyID string) ([]*domain.EscrowTransaction, error) {
	return uc.EscrowRepo.GetEscrowsByParty(partyID)
}

func (uc *DefaultEscrowUsecase) GetProgress(escrowID string) (*domain.MilestoneProgress, error) {
	escrow, err := uc.EscrowRepo.GetEscrowByID(escrowID)
	if err != nil {
		return nil, err
	}
	progress := escrow.Progress()
	return &progress, nil
}
