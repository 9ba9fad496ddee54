package models

import (
	"time"

	"github.com/sukirti-panigrahi/Comeo/internal/domain"
)

type CampaignModel struct {
	ID               string               `gorm:"primaryKey;type:uuid"`
	OwnerID          string               `gorm:"type:uuid;index"`
	Headline         string               `gorm:"not null"`
	Preview          string
	Description      string               `gorm:"type:text"`
	SumGoal          int64                `gorm:"not null"`
	Duration         int                  `gorm:"not null"`
	CollectedSum     int64                `gorm:"default:0"`
	State            domain.CampaignState `gorm:"index:idx_state_finish"`
	FundingType      domain.FundingType
	PSPSubmerchantID string
	DateStart        *time.Time
	DateFinish       *time.Time `gorm:"index:idx_state_finish"`
	ViewsCount       int64      `gorm:"default:0"`
	CreatedAt        time.Time  `gorm:"index:idx_campaign_created_at"`
	UpdatedAt        time.Time
	Editors          []UserModel `gorm:"many2many:campaign_editors;"`
}
