package domain

import "context"

type UserRepository interface {
	CreateUser(ctx context.Context, payer *Payer) error
	GetUserByID(ctx context.Context, userID string) (*Payer, error)
}
