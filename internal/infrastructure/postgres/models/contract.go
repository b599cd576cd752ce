package models

import "time"

type ContractModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	CampaignID   string `gorm:"index"`
	BrandID      string `gorm:"index:idx_contract_brand"`
	InfluencerID string `gorm:"index:idx_contract_influencer"`
	CampaignName string
	StartDate    time.Time
	EndDate      time.Time
	Compensation string
	Deliverables string
	Status       string `gorm:"index"`
	CreatedAt    time.Time
}
