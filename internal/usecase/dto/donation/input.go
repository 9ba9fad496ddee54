package donationdto

// PayerInfo carries the personal data of an unregistered donor, collected to
// preserve a donation history record.
type PayerInfo struct {
	Email     string
	FirstName string
	LastName  string
}

type DonateInput struct {
	CampaignID string
	PayerID    string
	Payer      *PayerInfo
	Amount     int64
	Method     string
	IsPublic   bool
}
