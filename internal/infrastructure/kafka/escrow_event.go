package kafka

type EscrowEvent struct {
	EscrowID      string  `json:"escrow_id"`
	ContractID    string  `json:"contract_id"`
	BrandID       string  `json:"brand_id"`
	InfluencerID  string  `json:"influencer_id"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	DisputeReason string  `json:"dispute_reason,omitempty"`
	Event         string  `json:"event"`
}
