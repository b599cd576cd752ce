package repository

import (
	"errors"
	"fmt"

	"github.com/inflink/inflink-escrow-service/internal/domain"
	"github.com/inflink/inflink-escrow-service/internal/infrastructure/postgres/mappers"
	"github.com/inflink/inflink-escrow-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultContractRepository struct {
	db *gorm.DB
}

func NewDefaultContractRepository(db *gorm.DB) *DefaultContractRepository {
	return &DefaultContractRepository{db: db}
}

func (r *DefaultContractRepository) CreateContract(contract *domain.Contract) error {
	contractModel := mappers.ToGORMContract(contract)
	if err := r.db.Create(contractModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultContractRepository) UpdateContractStatus(contractID string, status domain.ContractStatus) error {
	result := r.db.Model(&models.ContractModel{}).Where("id = ?", contractID).Update("status", string(status))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: contract %s", domain.ErrNotFound, contractID)
	}
	return nil
}

func (r *DefaultContractRepository) GetContractByID(contractID string) (*domain.Contract, error) {
	var contractModel models.ContractModel
	if err := r.db.Model(&models.ContractModel{}).Where("id = ?", contractID).First(&contractModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: contract %s", domain.ErrNotFound, contractID)
		}
		return nil, err
	}

	return mappers.ToDomainContract(&contractModel), nil
}

func (r *DefaultContractRepository) GetContractsByParty(partyID string) ([]*domain.Contract, error) {
	var contractModels []models.ContractModel
	if err := r.db.Model(&models.ContractModel{}).
		Where("brand_id = ? OR influencer_id = ?", partyID, partyID).
		Order("created_at ASC").
		Find(&contractModels).Error; err != nil {
		return nil, err
	}

	contracts := make([]*domain.Contract, len(contractModels))
	for i := range contractModels {
		contracts[i] = mappers.ToDomainContract(&contractModels[i])
	}
	return contracts, nil
}
