package publisher

type CampaignEvent struct {
	CampaignID   string `json:"campaign_id"`
	OwnerID      string `json:"owner_id"`
	State        string `json:"state"`
	CollectedSum int64  `json:"collected_sum"`
	SumGoal      int64  `json:"sum_goal"`
}

type DonationEvent struct {
	TransactionID string `json:"transaction_id"`
	CampaignID    string `json:"campaign_id"`
	PayerID       string `json:"payer_id"`
	Amount        int64  `json:"amount"`
	Method        string `json:"method"`
	Status        string `json:"status"`
}
