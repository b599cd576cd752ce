package mappers

import (
	"sort"

	"github.com/inflink/inflink-escrow-service/internal/domain"
	"github.com/inflink/inflink-escrow-service/internal/infrastructure/postgres/models"
)

func ToDomainEscrow(model *models.EscrowModel) *domain.EscrowTransaction {
	milestones := make([]*domain.Milestone, len(model.Milestones))
	for i := range model.Milestones {
		milestones[i] = ToDomainMilestone(&model.Milestones[i])
	}
	// Milestone order is significant; the column is authoritative.
	sort.Slice(milestones, func(i, j int) bool {
		return milestones[i].Position < milestones[j].Position
	})

	return &domain.EscrowTransaction{
		ID:            model.ID,
		CampaignID:    model.CampaignID,
		ContractID:    model.ContractID,
		InfluencerID:  model.InfluencerID,
		BrandID:       model.BrandID,
		Amount:        model.Amount,
		Status:        domain.EscrowStatus(model.Status),
		Milestones:    milestones,
		DisputeReason: model.DisputeReason,
		ReleaseDate:   model.ReleaseDate,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}
}

func ToGORMEscrow(escrow *domain.EscrowTransaction) *models.EscrowModel {
	milestones := make([]models.MilestoneModel, len(escrow.Milestones))
	for i, m := range escrow.Milestones {
		milestones[i] = *ToGORMMilestone(m)
	}

	return &models.EscrowModel{
		ID:            escrow.ID,
		CampaignID:    escrow.CampaignID,
		ContractID:    escrow.ContractID,
		InfluencerID:  escrow.InfluencerID,
		BrandID:       escrow.BrandID,
		Amount:        escrow.Amount,
		Status:        string(escrow.Status),
		Milestones:    milestones,
		DisputeReason: escrow.DisputeReason,
		ReleaseDate:   escrow.ReleaseDate,
		CreatedAt:     escrow.CreatedAt,
		UpdatedAt:     escrow.UpdatedAt,
	}
}

func ToDomainMilestone(model *models.MilestoneModel) *domain.Milestone {
	return &domain.Milestone{
		ID:          model.ID,
		EscrowID:    model.EscrowID,
		Description: model.Description,
		DueDate:     model.DueDate,
		Status:      domain.MilestoneStatus(model.Status),
		Evidence:    model.Evidence,
		Position:    model.Position,
	}
}

func ToGORMMilestone(milestone *domain.Milestone) *models.MilestoneModel {
	return &models.MilestoneModel{
		ID:          milestone.ID,
		EscrowID:    milestone.EscrowID,
		Description: milestone.Description,
		DueDate:     milestone.DueDate,
		Status:      string(milestone.Status),
		Evidence:    milestone.Evidence,
		Position:    milestone.Position,
	}
}
