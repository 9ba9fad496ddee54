package mappers

import (
	"github.com/sukirti-panigrahi/Comeo/internal/domain"
	"github.com/sukirti-panigrahi/Comeo/internal/infrastructure/postgres/models"
)

func ToDomainTransaction(model *models.TransactionModel) *domain.Transaction {
	return &domain.Transaction{
		ID:            model.ID,
		CampaignID:    model.CampaignID,
		PayerID:       model.PayerID,
		Amount:        model.Amount,
		Method:        model.Method,
		ExternalID:    model.ExternalID,
		Confirmed:     model.Confirmed,
		DateConfirmed: model.DateConfirmed,
		IsPublic:      model.IsPublic,
		CreatedAt:     model.CreatedAt,
	}
}

func ToGORMTransaction(trx *domain.Transaction) *models.TransactionModel {
	return &models.TransactionModel{
		ID:            trx.ID,
		CampaignID:    trx.CampaignID,
		PayerID:       trx.PayerID,
		Amount:        trx.Amount,
		Method:        trx.Method,
		ExternalID:    trx.ExternalID,
		Confirmed:     trx.Confirmed,
		DateConfirmed: trx.DateConfirmed,
		IsPublic:      trx.IsPublic,
		CreatedAt:     trx.CreatedAt,
	}
}
