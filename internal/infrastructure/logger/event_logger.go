package logger

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Donation flow audit trail, persisted next to the business tables so failed
// flows stay diagnosable after the fact.

type DonationCreatedEvent struct {
	ID            uint `gorm:"primaryKey"`
	TransactionID string
	CampaignID    string
	PayerID       string
	Amount        int64
	Method        string
	ExternalID    string
	Timestamp     time.Time
}

type DonationFailedEvent struct {
	ID         uint `gorm:"primaryKey"`
	CampaignID string
	PayerID    string
	Amount     int64
	Reason     string
	Timestamp  time.Time
}

type DonationEventLogger interface {
	LogDonationCreated(ctx context.Context, event DonationCreatedEvent) error
	LogDonationFailed(ctx context.Context, event DonationFailedEvent) error
}

type PGDonationEventLogger struct {
	db *gorm.DB
}

func NewPGDonationEventLogger(db *gorm.DB) *PGDonationEventLogger {
	db.AutoMigrate(&DonationCreatedEvent{}, &DonationFailedEvent{})
	return &PGDonationEventLogger{db: db}
}

func (l *PGDonationEventLogger) LogDonationCreated(ctx context.Context, event DonationCreatedEvent) error {
	return l.db.WithContext(ctx).Create(&event).Error
}

func (l *PGDonationEventLogger) LogDonationFailed(ctx context.Context, event DonationFailedEvent) error {
	return l.db.WithContext(ctx).Create(&event).Error
}
