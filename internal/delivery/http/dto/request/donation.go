package request

type DonatePayer struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type Donate struct {
	PayerID  string       `json:"payer_id"`
	Payer    *DonatePayer `json:"payer"`
	Amount   int64        `json:"amount"`
	Method   string       `json:"method"`
	IsPublic bool         `json:"is_public"`
}

type PSPWebhook struct {
	TransactionID string `json:"transaction_id"`
	OrderID       string `json:"order_id"`
}
