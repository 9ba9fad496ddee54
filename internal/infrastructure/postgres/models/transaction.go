package models

import (
	"time"

	"github.com/sukirti-panigrahi/Comeo/internal/domain"
)

type TransactionModel struct {
	ID            string        `gorm:"primaryKey;type:uuid"`
	CampaignID    string        `gorm:"type:uuid;index:idx_trx_campaign"`
	Campaign      CampaignModel `gorm:"foreignKey:CampaignID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	PayerID       string        `gorm:"type:uuid;index"`
	Payer         UserModel     `gorm:"foreignKey:PayerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	Amount        int64         `gorm:"not null"`
	Method        domain.PaymentMethod
	ExternalID    string     `gorm:"index"`
	Confirmed     bool       `gorm:"index:idx_trx_campaign"`
	DateConfirmed *time.Time
	IsPublic      bool
	CreatedAt     time.Time
}
