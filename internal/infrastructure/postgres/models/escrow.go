package models

import "time"

type EscrowModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	CampaignID    string `gorm:"index"`
	ContractID    string `gorm:"type:uuid;index:idx_escrow_contract"`
	InfluencerID  string `gorm:"index:idx_escrow_influencer"`
	BrandID       string `gorm:"index:idx_escrow_brand"`
	Amount        float64
	Status        string           `gorm:"index:idx_escrow_status"`
	Milestones    []MilestoneModel `gorm:"foreignKey:EscrowID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	DisputeReason string
	ReleaseDate   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Contract      ContractModel `gorm:"foreignKey:ContractID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

type MilestoneModel struct {
	ID          string `gorm:"primaryKey"`
	EscrowID    string `gorm:"type:uuid;index"`
	Description string
	DueDate     time.Time
	Status      string
	Evidence    string
	Position    int
}
