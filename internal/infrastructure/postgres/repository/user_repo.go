package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sukirti-panigrahi/Comeo/internal/domain"
	"github.com/sukirti-panigrahi/Comeo/internal/infrastructure/postgres/mappers"
	"github.com/sukirti-panigrahi/Comeo/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	DB *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{DB: db}
}

func (r *DefaultUserRepository) CreateUser(ctx context.Context, payer *domain.Payer) error {
	userModel := mappers.ToGORMUser(payer)
	if err := r.DB.WithContext(ctx).Create(userModel).Error; err != nil {
		return err
	}
	return nil
}

func (r *DefaultUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.Payer, error) {
	var userModel models.UserModel
	if err := r.DB.WithContext(ctx).First(&userModel, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, userID)
		}
		return nil, err
	}

	return mappers.ToDomainPayer(&userModel), nil
}
