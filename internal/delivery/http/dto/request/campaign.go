package request

type CreateCampaign struct {
	OwnerID     string `json:"owner_id"`
	OwnerName   string `json:"owner_name"`
	OwnerIBAN   string `json:"owner_iban"`
	Headline    string `json:"headline"`
	Preview     string `json:"preview"`
	Description string `json:"description"`
	SumGoal     int64  `json:"sum_goal"`
	Duration    int    `json:"duration"`
	FundingType string `json:"funding_type"`
}

type UpdateCampaign struct {
	Headline    string `json:"headline"`
	Preview     string `json:"preview"`
	Description string `json:"description"`
	SumGoal     int64  `json:"sum_goal"`
	Duration    int    `json:"duration"`
	FundingType string `json:"funding_type"`
}
