package campaigndto

import (
	"time"

	"github.com/sukirti-panigrahi/Comeo/internal/domain"
)

type CampaignOutput struct {
	ID           string     `json:"id"`
	OwnerID      string     `json:"owner_id"`
	Headline     string     `json:"headline"`
	Preview      string     `json:"preview"`
	Description  string     `json:"description"`
	SumGoal      int64      `json:"sum_goal"`
	Duration     int        `json:"duration"`
	CollectedSum int64      `json:"collected_sum"`
	State        string     `json:"state"`
	FundingType  string     `json:"funding_type"`
	DateStart    *time.Time `json:"date_start,omitempty"`
	DateFinish   *time.Time `json:"date_finish,omitempty"`
	DaysToFinish *int       `json:"days_to_finish,omitempty"`
	ViewsCount   int64      `json:"views_count"`
	CreatedAt    time.Time  `json:"created_at"`
}

type CampaignDetailsOutput struct {
	CampaignOutput
	BackersCount int64 `json:"backers_count"`
}

func ToCampaignOutput(campaign *domain.Campaign) *CampaignOutput {
	out := &CampaignOutput{
		ID:           campaign.ID,
		OwnerID:      campaign.OwnerID,
		Headline:     campaign.Headline,
		Preview:      campaign.Preview,
		Description:  campaign.Description,
		SumGoal:      campaign.SumGoal,
		Duration:     campaign.Duration,
		CollectedSum: campaign.CollectedSum,
		State:        string(campaign.State),
		FundingType:  string(campaign.FundingType),
		DateStart:    campaign.DateStart,
		DateFinish:   campaign.DateFinish,
		ViewsCount:   campaign.ViewsCount,
		CreatedAt:    campaign.CreatedAt,
	}
	if days, ok := campaign.DaysToFinish(time.Now()); ok {
		out.DaysToFinish = &days
	}
	return out
}
