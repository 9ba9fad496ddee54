package domain

import "context"

type CreateOrderInput struct {
	AmountMinor   int64
	Description   string
	CampaignID    string
	SubmerchantID string
}

type CreateOrderOutput struct {
	OrderID  string
	OrderURL string
}

// PSPGateway is the payment service provider port. Implementations must
// report transport failures, non-2xx responses and malformed payloads as
// ErrExternalService rather than returning empty order data.
type PSPGateway interface {
	CreateOrder(ctx context.Context, in *CreateOrderInput) (*CreateOrderOutput, error)
	CreateSubmerchant(ctx context.Context, name, iban string) (string, error)
}
