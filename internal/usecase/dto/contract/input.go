package contractdto

import "time"

type ProposeContractInput struct {
	CampaignID   string
	BrandID      string
	InfluencerID string
	CampaignName string
	StartDate    time.Time
	EndDate      time.Time
	Compensation string
	Deliverables string
}
