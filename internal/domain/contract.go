package domain

import "time"

type ContractStatus string

const (
	ContractPending   ContractStatus = "pending"
	ContractAccepted  ContractStatus = "accepted"
	ContractRejected  ContractStatus = "rejected"
	ContractCompleted ContractStatus = "completed"
)

type ContractDecision string

const (
	DecisionAccept ContractDecision = "accept"
	DecisionReject ContractDecision = "reject"
)

// Contract is a negotiated agreement between a brand and an influencer
// for a single campaign. Contracts are never deleted; rejected and
// completed are terminal.
type Contract struct {
	ID           string
	CampaignID   string
	BrandID      string
	InfluencerID string
	CampaignName string
	StartDate    time.Time
	EndDate      time.Time
	Compensation string
	Deliverables string
	Status       ContractStatus
	CreatedAt    time.Time
}

var contractTransitions = map[ContractStatus][]ContractStatus{
	ContractPending:  {ContractAccepted, ContractRejected},
	ContractAccepted: {ContractCompleted},
}

func (s ContractStatus) CanTransitionTo(target ContractStatus) bool {
	for _, allowed := range contractTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

type ContractRepository interface {
	CreateContract(contract *Contract) error
	UpdateContractStatus(contractID string, status ContractStatus) error
	GetContractByID(contractID string) (*Contract, error)
	GetContractsByParty(partyID string) ([]*Contract, error)
}
