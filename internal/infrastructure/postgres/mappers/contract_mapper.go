package mappers

import (
	"github.com/inflink/inflink-escrow-service/internal/domain"
	"github.com/inflink/inflink-escrow-service/internal/infrastructure/postgres/models"
)

func ToDomainContract(model *models.ContractModel) *domain.Contract {
	return &domain.Contract{
		ID:           model.ID,
		CampaignID:   model.CampaignID,
		BrandID:      model.BrandID,
		InfluencerID: model.InfluencerID,
		CampaignName: model.CampaignName,
		StartDate:    model.StartDate,
		EndDate:      model.EndDate,
		Compensation: model.Compensation,
		Deliverables: model.Deliverables,
		Status:       domain.ContractStatus(model.Status),
		CreatedAt:    model.CreatedAt,
	}
}

func ToGORMContract(contract *domain.Contract) *models.ContractModel {
	return &models.ContractModel{
		ID:           contract.ID,
		CampaignID:   contract.CampaignID,
		BrandID:      contract.BrandID,
		InfluencerID: contract.InfluencerID,
		CampaignName: contract.CampaignName,
		StartDate:    contract.StartDate,
		EndDate:      contract.EndDate,
		Compensation: contract.Compensation,
		Deliverables: contract.Deliverables,
		Status:       string(contract.Status),
		CreatedAt:    contract.CreatedAt,
	}
}
