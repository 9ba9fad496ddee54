package donationdto

import (
	"time"

	"github.com/sukirti-panigrahi/Comeo/internal/domain"
)

type DonateOutput struct {
	TransactionID string `json:"transaction_id"`
	PayerID       string `json:"payer_id"`
	OrderURL      string `json:"order_url"`
}

type TransactionOutput struct {
	ID            string     `json:"id"`
	CampaignID    string     `json:"campaign_id"`
	PayerID       string     `json:"payer_id"`
	Amount        int64      `json:"amount"`
	Method        string     `json:"method"`
	ExternalID    string     `json:"external_id,omitempty"`
	Confirmed     bool       `json:"confirmed"`
	DateConfirmed *time.Time `json:"date_confirmed,omitempty"`
	IsPublic      bool       `json:"is_public"`
	CreatedAt     time.Time  `json:"created_at"`
}

func ToTransactionOutput(trx *domain.Transaction) *TransactionOutput {
	return &TransactionOutput{
		ID:            trx.ID,
		CampaignID:    trx.CampaignID,
		PayerID:       trx.PayerID,
		Amount:        trx.Amount,
		Method:        string(trx.Method),
		ExternalID:    trx.ExternalID,
		Confirmed:     trx.Confirmed,
		DateConfirmed: trx.DateConfirmed,
		IsPublic:      trx.IsPublic,
		CreatedAt:     trx.CreatedAt,
	}
}
