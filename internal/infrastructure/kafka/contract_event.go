package kafka

type ContractEvent struct {
	ContractID   string `json:"contract_id"`
	CampaignID   string `json:"campaign_id"`
	BrandID      string `json:"brand_id"`
	InfluencerID string `json:"influencer_id"`
	Status       string `json:"status"`
	Event        string `json:"event"`
}
