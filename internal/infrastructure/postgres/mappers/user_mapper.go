package mappers

import (
	"github.com/sukirti-panigrahi/Comeo/internal/domain"
	"github.com/sukirti-panigrahi/Comeo/internal/infrastructure/postgres/models"
)

func ToDomainPayer(model *models.UserModel) *domain.Payer {
	return &domain.Payer{
		ID:              model.ID,
		Email:           model.Email,
		FirstName:       model.FirstName,
		LastName:        model.LastName,
		CredentialToken: model.CredentialToken,
		Registered:      model.Registered,
		CreatedAt:       model.CreatedAt,
	}
}

func ToGORMUser(payer *domain.Payer) *models.UserModel {
	return &models.UserModel{
		ID:              payer.ID,
		Email:           payer.Email,
		FirstName:       payer.FirstName,
		LastName:        payer.LastName,
		CredentialToken: payer.CredentialToken,
		Registered:      payer.Registered,
		CreatedAt:       payer.CreatedAt,
	}
}
