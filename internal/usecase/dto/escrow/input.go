package escrowdto

import "time"

type CreateEscrowInput struct {
	ContractID string
	Amount     float64
	Milestones []MilestoneSpecInput
}

type MilestoneSpecInput struct {
	Description string
	DueDate     time.Time
}

type AdvanceEscrowInput struct {
	EscrowID      string
	TargetStatus  string
	DisputeReason string
}
