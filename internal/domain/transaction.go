package domain

import (
	"fmt"
	"time"
)

type PaymentMethod string

const (
	MethodCard     PaymentMethod = "METHOD_CARD"
	MethodTerminal PaymentMethod = "METHOD_TERMINAL"
)

type Transaction struct {
	ID            string
	CampaignID    string
	PayerID       string
	Amount        int64
	Method        PaymentMethod
	ExternalID    string
	Confirmed     bool
	DateConfirmed *time.Time
	IsPublic      bool
	CreatedAt     time.Time
}

func (t *Transaction) Validate() error {
	if t.Amount <= 0 {
		return fmt.Errorf("%w: donation amount must be positive", ErrValidation)
	}
	switch t.Method {
	case MethodCard, MethodTerminal:
	default:
		return fmt.Errorf("%w: unknown payment method %q", ErrValidation, t.Method)
	}
	return nil
}

// MarkConfirmed flips the transaction to confirmed exactly once.
func (t *Transaction) MarkConfirmed(now time.Time) error {
	if t.Confirmed {
		return ErrAlreadyConfirmed
	}
	t.Confirmed = true
	t.DateConfirmed = &now
	return nil
}
