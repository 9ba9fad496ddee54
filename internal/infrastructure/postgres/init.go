package postgres

import (
	"log"

	"github.com/sukirti-panigrahi/Comeo/internal/config"
	"github.com/sukirti-panigrahi/Comeo/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.ComeoConfig) *gorm.DB {
	dsn := cfg.CampaignDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.UserModel{}, &models.CampaignModel{}, &models.TransactionModel{})

	return db
}
