package domain

import "time"

type MilestoneStatus string

const (
	MilestonePending    MilestoneStatus = "pending"
	MilestoneInProgress MilestoneStatus = "in_progress"
	MilestoneCompleted  MilestoneStatus = "completed"
	MilestoneApproved   MilestoneStatus = "approved"
	MilestoneRejected   MilestoneStatus = "rejected"
)

type MilestoneDecision string

const (
	MilestoneApprove MilestoneDecision = "approve"
	MilestoneReject  MilestoneDecision = "reject"
)

// Milestone is one deliverable checkpoint inside an escrow transaction.
// Position preserves the deliverable sequencing from the contract.
// Evidence is attached by the influencer no earlier than completed.
type Milestone struct {
	ID          string
	EscrowID    string
	Description string
	DueDate     time.Time
	Status      MilestoneStatus
	Evidence    string
	Position    int
}

var milestoneTransitions = map[MilestoneStatus][]MilestoneStatus{
	MilestonePending:    {MilestoneInProgress, MilestoneCompleted},
	MilestoneInProgress: {MilestoneCompleted},
	MilestoneCompleted:  {MilestoneApproved, MilestoneRejected},
}

func (s MilestoneStatus) CanTransitionTo(target MilestoneStatus) bool {
	for _, allowed := range milestoneTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s MilestoneStatus) IsTerminal() bool {
	return s == MilestoneApproved || s == MilestoneRejected
}

// MilestoneSpec describes one milestone to create with an escrow
// transaction, before it has an identifier.
type MilestoneSpec struct {
	Description string
	DueDate     time.Time
}
