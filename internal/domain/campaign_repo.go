package domain

import (
	"context"
	"time"
)

type CampaignRepository interface {
	CreateCampaign(ctx context.Context, campaign *Campaign) error
	GetCampaignByID(ctx context.Context, campaignID string) (*Campaign, error)
	UpdateCampaign(ctx context.Context, campaign *Campaign) error
	DeleteCampaign(ctx context.Context, campaignID string) error
	ListPublicCampaigns(ctx context.Context, page, limit int) ([]*Campaign, int64, error)
	FindPublicCampaigns(ctx context.Context) ([]*Campaign, error)
	FindDueCampaigns(ctx context.Context, now time.Time) ([]*Campaign, error)
	IncrementViews(ctx context.Context, campaignID string) error

	// ProcessCampaignUpdate loads the campaign under a row lock, applies fn
	// and persists lifecycle fields in a single database transaction.
	// Goal-completion and deadline finalization both go through here so that
	// concurrent confirmations and the scheduler serialize on the row.
	ProcessCampaignUpdate(ctx context.Context, campaignID string, fn func(campaign *Campaign) error) error
}
