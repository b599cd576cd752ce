package repository

import (
	"errors"
	"fmt"

	"github.com/inflink/inflink-escrow-service/internal/domain"
	"github.com/inflink/inflink-escrow-service/internal/infrastructure/postgres/mappers"
	"github.com/inflink/inflink-escrow-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultEscrowRepository struct {
	db *gorm.DB
}

func NewDefaultEscrowRepository(db *gorm.DB) *DefaultEscrowRepository {
	return &DefaultEscrowRepository{db: db}
}

// CreateEscrow inserts the transaction row and all milestone rows in a
// single database transaction.
func (r *DefaultEscrowRepository) CreateEscrow(tx *domain.EscrowTransaction) error {
	escrowModel := mappers.ToGORMEscrow(tx)
	return r.db.Transaction(func(dbtx *gorm.DB) error {
		return dbtx.Create(escrowModel).Error
	})
}

func (r *DefaultEscrowRepository) UpdateEscrow(tx *domain.EscrowTransaction) error {
	updates := map[string]interface{}{
		"status":         string(tx.Status),
		"dispute_reason": tx.DisputeReason,
		"release_date":   tx.ReleaseDate,
		"updated_at":     tx.UpdatedAt,
	}
	result := r.db.Model(&models.EscrowModel{}).Where("id = ?", tx.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: escrow %s", domain.ErrNotFound, tx.ID)
	}
	return nil
}

func (r *DefaultEscrowRepository) UpdateMilestone(milestone *domain.Milestone) error {
	updates := map[string]interface{}{
		"status":   string(milestone.Status),
		"evidence": milestone.Evidence,
	}
	result := r.db.Model(&models.MilestoneModel{}).
		Where("id = ? AND escrow_id = ?", milestone.ID, milestone.EscrowID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: milestone %s", domain.ErrNotFound, milestone.ID)
	}
	return nil
}

func (r *DefaultEscrowRepository) GetEscrowByID(escrowID string) (*domain.EscrowTransaction, error) {
	var escrowModel models.EscrowModel
	if err := r.db.Model(&models.EscrowModel{}).
		Preload("Milestones").
		Where("id = ?", escrowID).
		First(&escrowModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: escrow %s", domain.ErrNotFound, escrowID)
		}
		return nil, err
	}

	return mappers.ToDomainEscrow(&escrowModel), nil
}

func (r *DefaultEscrowRepository) GetActiveEscrowByContractID(contractID string) (*domain.EscrowTransaction, error) {
	var escrowModel models.EscrowModel
	if err := r.db.Model(&models.EscrowModel{}).
		Preload("Milestones").
		Where("contract_id = ?", contractID).
		Where("status NOT IN ?", []string{
			string(domain.EscrowReleased),
			string(domain.EscrowRefunded),
			string(domain.EscrowPaid),
		}).
		First(&escrowModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no active escrow for contract %s", domain.ErrNotFound, contractID)
		}
		return nil, err
	}

	return mappers.ToDomainEscrow(&escrowModel), nil
}

func (r *DefaultEscrowRepository) GetEscrowsByParty(partyID string) ([]*domain.EscrowTransaction, error) {
	var escrowModels []models.EscrowModel
	if err := r.db.Model(&models.EscrowModel{}).
		Preload("Milestones").
		Where("brand_id = ? OR influencer_id = ?", partyID, partyID).
		Order("created_at ASC").
		Find(&escrowModels).Error; err != nil {
		return nil, err
	}

	escrows := make([]*domain.EscrowTransaction, len(escrowModels))
	for i := range escrowModels {
		escrows[i] = mappers.ToDomainEscrow(&escrowModels[i])
	}
	return escrows, nil
}
