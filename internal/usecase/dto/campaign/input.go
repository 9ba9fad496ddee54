package campaigndto

type CreateCampaignInput struct {
	OwnerID     string
	OwnerName   string
	OwnerIBAN   string
	Headline    string
	Preview     string
	Description string
	SumGoal     int64
	Duration    int
	FundingType string
}

type UpdateCampaignInput struct {
	CampaignID  string
	ActorID     string
	Headline    string
	Preview     string
	Description string
	SumGoal     int64
	Duration    int
	FundingType string
}
