package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sukirti-panigrahi/Comeo/internal/domain"
	"github.com/sukirti-panigrahi/Comeo/internal/infrastructure/postgres/mappers"
	"github.com/sukirti-panigrahi/Comeo/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultTransactionRepository struct {
	DB *gorm.DB
}

func NewDefaultTransactionRepository(db *gorm.DB) *DefaultTransactionRepository {
	return &DefaultTransactionRepository{DB: db}
}

func (r *DefaultTransactionRepository) CreateTransaction(ctx context.Context, trx *domain.Transaction) error {
	trxModel := mappers.ToGORMTransaction(trx)
	if err := r.DB.WithContext(ctx).Create(trxModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultTransactionRepository) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	var trxModel models.TransactionModel
	if err := r.DB.WithContext(ctx).First(&trxModel, "id = ?", transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: transaction %s", domain.ErrNotFound, transactionID)
		}
		return nil, err
	}

	return mappers.ToDomainTransaction(&trxModel), nil
}

func (r *DefaultTransactionRepository) SetExternalID(ctx context.Context, transactionID, externalID string) error {
	return r.DB.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Where("id = ?", transactionID).
		Update("external_id", externalID).Error
}

func (r *DefaultTransactionRepository) ListByCampaignID(ctx context.Context, campaignID string) ([]*domain.Transaction, error) {
	var trxModels []models.TransactionModel
	if err := r.DB.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("created_at DESC").
		Find(&trxModels).Error; err != nil {
		return nil, err
	}

	trxs := make([]*domain.Transaction, len(trxModels))
	for i, trxModel := range trxModels {
		trxs[i] = mappers.ToDomainTransaction(&trxModel)
	}

	return trxs, nil
}

func (r *DefaultTransactionRepository) CountConfirmedByCampaign(ctx context.Context, campaignID string) (int64, error) {
	var total int64
	if err := r.DB.WithContext(ctx).
		Model(&models.TransactionModel{}).
		Where("campaign_id = ? AND confirmed = ?", campaignID, true).
		Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// ProcessConfirmation is the critical section of the confirmation protocol.
// Transaction and campaign rows are locked FOR UPDATE in that order, fn runs
// on the locked snapshots, and both rows are persisted in one database
// transaction. A second confirmation for the same transaction blocks on the
// row lock and then sees confirmed=true, so it cannot double-credit.
func (r *DefaultTransactionRepository) ProcessConfirmation(ctx context.Context, transactionID string, fn func(trx *domain.Transaction, campaign *domain.Campaign) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var trxModel models.TransactionModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&trxModel, "id = ?", transactionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: transaction %s", domain.ErrNotFound, transactionID)
			}
			return err
		}

		var campaignModel models.CampaignModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&campaignModel, "id = ?", trxModel.CampaignID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: campaign %s", domain.ErrNotFound, trxModel.CampaignID)
			}
			return err
		}

		trx := mappers.ToDomainTransaction(&trxModel)
		campaign := mappers.ToDomainCampaign(&campaignModel)

		if err := fn(trx, campaign); err != nil {
			return err
		}

		if err := tx.Model(&models.TransactionModel{}).
			Where("id = ?", trx.ID).
			Updates(map[string]interface{}{
				"confirmed":      trx.Confirmed,
				"date_confirmed": trx.DateConfirmed,
			}).Error; err != nil {
			return err
		}

		return tx.Model(&models.CampaignModel{}).
			Where("id = ?", campaign.ID).
			Updates(map[string]interface{}{
				"collected_sum": campaign.CollectedSum,
				"state":         campaign.State,
			}).Error
	})
}
