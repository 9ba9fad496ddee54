package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sukirti-panigrahi/Comeo/internal/domain"
	"github.com/sukirti-panigrahi/Comeo/internal/infrastructure/postgres/mappers"
	"github.com/sukirti-panigrahi/Comeo/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultCampaignRepository struct {
	DB *gorm.DB
}

func NewDefaultCampaignRepository(db *gorm.DB) *DefaultCampaignRepository {
	return &DefaultCampaignRepository{DB: db}
}

func (r *DefaultCampaignRepository) CreateCampaign(ctx context.Context, campaign *domain.Campaign) error {
	campaignModel := mappers.ToGORMCampaign(campaign)
	// editors reference existing users, only the join rows are created
	if err := r.DB.WithContext(ctx).Omit("Editors.*").Create(campaignModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultCampaignRepository) GetCampaignByID(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	var campaignModel models.CampaignModel
	if err := r.DB.WithContext(ctx).Preload("Editors").First(&campaignModel, "id = ?", campaignID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: campaign %s", domain.ErrNotFound, campaignID)
		}
		return nil, err
	}

	return mappers.ToDomainCampaign(&campaignModel), nil
}

func (r *DefaultCampaignRepository) UpdateCampaign(ctx context.Context, campaign *domain.Campaign) error {
	campaignModel := mappers.ToGORMCampaign(campaign)
	if err := r.DB.WithContext(ctx).Omit("Editors").Save(campaignModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultCampaignRepository) DeleteCampaign(ctx context.Context, campaignID string) error {
	result := r.DB.WithContext(ctx).Delete(&models.CampaignModel{}, "id = ?", campaignID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: campaign %s", domain.ErrNotFound, campaignID)
	}
	return nil
}

func (r *DefaultCampaignRepository) ListPublicCampaigns(ctx context.Context, page, limit int) ([]*domain.Campaign, int64, error) {
	var campaignModels []models.CampaignModel
	var total int64

	baseQuery := r.DB.WithContext(ctx).
		Model(&models.CampaignModel{}).
		Where("state <> ?", domain.StateDraft)

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count campaigns: %w", err)
	}

	offset := (page - 1) * limit
	if err := baseQuery.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&campaignModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find campaigns: %w", err)
	}

	campaigns := make([]*domain.Campaign, len(campaignModels))
	for i, campaignModel := range campaignModels {
		campaigns[i] = mappers.ToDomainCampaign(&campaignModel)
	}

	return campaigns, total, nil
}

func (r *DefaultCampaignRepository) FindPublicCampaigns(ctx context.Context) ([]*domain.Campaign, error) {
	var campaignModels []models.CampaignModel
	if err := r.DB.WithContext(ctx).
		Where("state = ?", domain.StatePublic).
		Find(&campaignModels).Error; err != nil {
		return nil, err
	}

	campaigns := make([]*domain.Campaign, len(campaignModels))
	for i, campaignModel := range campaignModels {
		campaigns[i] = mappers.ToDomainCampaign(&campaignModel)
	}

	return campaigns, nil
}

func (r *DefaultCampaignRepository) FindDueCampaigns(ctx context.Context, now time.Time) ([]*domain.Campaign, error) {
	var campaignModels []models.CampaignModel
	if err := r.DB.WithContext(ctx).
		Where("state = ?", domain.StatePublic).
		Where("date_finish <= ?", now).
		Find(&campaignModels).Error; err != nil {
		return nil, err
	}

	campaigns := make([]*domain.Campaign, len(campaignModels))
	for i, campaignModel := range campaignModels {
		campaigns[i] = mappers.ToDomainCampaign(&campaignModel)
	}

	return campaigns, nil
}

func (r *DefaultCampaignRepository) IncrementViews(ctx context.Context, campaignID string) error {
	return r.DB.WithContext(ctx).
		Model(&models.CampaignModel{}).
		Where("id = ?", campaignID).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error
}

// ProcessCampaignUpdate serializes lifecycle mutations on the campaign row.
// The row is locked FOR UPDATE for the duration of fn, so concurrent donation
// confirmations and the deadline finalizer cannot observe a stale sum or
// double-transition the state.
func (r *DefaultCampaignRepository) ProcessCampaignUpdate(ctx context.Context, campaignID string, fn func(campaign *domain.Campaign) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var campaignModel models.CampaignModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&campaignModel, "id = ?", campaignID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: campaign %s", domain.ErrNotFound, campaignID)
			}
			return err
		}

		campaign := mappers.ToDomainCampaign(&campaignModel)
		if err := fn(campaign); err != nil {
			return err
		}

		return tx.Model(&models.CampaignModel{}).
			Where("id = ?", campaign.ID).
			Updates(map[string]interface{}{
				"collected_sum": campaign.CollectedSum,
				"state":         campaign.State,
				"date_start":    campaign.DateStart,
				"date_finish":   campaign.DateFinish,
			}).Error
	})
}
