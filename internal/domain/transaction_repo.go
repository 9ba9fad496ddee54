package domain

import "context"

type TransactionRepository interface {
	CreateTransaction(ctx context.Context, trx *Transaction) error
	GetTransactionByID(ctx context.Context, transactionID string) (*Transaction, error)
	SetExternalID(ctx context.Context, transactionID, externalID string) error
	ListByCampaignID(ctx context.Context, campaignID string) ([]*Transaction, error)
	CountConfirmedByCampaign(ctx context.Context, campaignID string) (int64, error)

	// ProcessConfirmation locks the transaction and its campaign rows,
	// applies fn and persists both in a single database transaction.
	// The credit, the goal check and the confirmed flag must commit as one
	// unit; fn returning an error rolls everything back.
	ProcessConfirmation(ctx context.Context, transactionID string, fn func(trx *Transaction, campaign *Campaign) error) error
}
