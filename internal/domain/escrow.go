package domain

import "time"

type EscrowStatus string

const (
	EscrowPending    EscrowStatus = "pending"
	EscrowInProgress EscrowStatus = "in_progress"
	EscrowCompleted  EscrowStatus = "completed"
	EscrowReleased   EscrowStatus = "released"
	EscrowRefunded   EscrowStatus = "refunded"
	EscrowDisputed   EscrowStatus = "disputed"
	EscrowPaid       EscrowStatus = "paid"
)

// EscrowTransaction holds the funds for exactly one accepted contract
// and releases them against the milestone list it exclusively owns.
// DisputeReason is set iff Status is disputed; ReleaseDate is set once
// the transaction enters released or paid.
type EscrowTransaction struct {
	ID            string
	CampaignID    string
	ContractID    string
	InfluencerID  string
	BrandID       string
	Amount        float64
	Status        EscrowStatus
	Milestones    []*Milestone
	DisputeReason string
	ReleaseDate   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

var escrowTransitions = map[EscrowStatus][]EscrowStatus{
	EscrowPending:    {EscrowInProgress},
	EscrowInProgress: {EscrowCompleted, EscrowDisputed},
	EscrowCompleted:  {EscrowReleased, EscrowPaid},
	EscrowDisputed:   {EscrowInProgress, EscrowRefunded},
}

func (s EscrowStatus) CanTransitionTo(target EscrowStatus) bool {
	for _, allowed := range escrowTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the transaction's active life is over.
// A contract may be funded again only once its transaction is terminal.
func (s EscrowStatus) IsTerminal() bool {
	return s == EscrowReleased || s == EscrowRefunded || s == EscrowPaid
}

func (t *EscrowTransaction) FindMilestone(milestoneID string) *Milestone {
	for _, m := range t.Milestones {
		if m.ID == milestoneID {
			return m
		}
	}
	return nil
}

// MilestoneProgress counts the transaction's milestones by status.
type MilestoneProgress struct {
	Total      int
	Pending    int
	InProgress int
	Completed  int
	Approved   int
	Rejected   int
}

// Reviewed reports whether every milestone reached approved or rejected.
func (p MilestoneProgress) Reviewed() bool {
	return p.Total > 0 && p.Approved+p.Rejected == p.Total
}

func (t *EscrowTransaction) Progress() MilestoneProgress {
	progress := MilestoneProgress{Total: len(t.Milestones)}
	for _, m := range t.Milestones {
		switch m.Status {
		case MilestonePending:
			progress.Pending++
		case MilestoneInProgress:
			progress.InProgress++
		case MilestoneCompleted:
			progress.Completed++
		case MilestoneApproved:
			progress.Approved++
		case MilestoneRejected:
			progress.Rejected++
		}
	}
	return progress
}

type EscrowRepository interface {
	// CreateEscrow persists the transaction and its milestones atomically.
	CreateEscrow(tx *EscrowTransaction) error
	UpdateEscrow(tx *EscrowTransaction) error
	UpdateMilestone(milestone *Milestone) error
	GetEscrowByID(escrowID string) (*EscrowTransaction, error)
	GetActiveEscrowByContractID(contractID string) (*EscrowTransaction, error)
	GetEscrowsByParty(partyID string) ([]*EscrowTransaction, error)
}
