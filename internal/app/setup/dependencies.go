package setup

import (
	"fmt"

	"github.com/sukirti-panigrahi/Comeo/internal/config"
	"github.com/sukirti-panigrahi/Comeo/internal/domain"
	publisher "github.com/sukirti-panigrahi/Comeo/internal/infrastructure/kafka"
	"github.com/sukirti-panigrahi/Comeo/internal/infrastructure/logger"
	"github.com/sukirti-panigrahi/Comeo/internal/infrastructure/migrate"
	"github.com/sukirti-panigrahi/Comeo/internal/infrastructure/postgres"
	"github.com/sukirti-panigrahi/Comeo/internal/infrastructure/postgres/repository"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config       *config.ComeoConfig
	DB           *gorm.DB
	Publisher    *publisher.DefaultKafkaPublisher
	EventLogger  logger.DonationEventLogger
	Repositories *Repositories
}

type Repositories struct {
	CampaignRepo domain.CampaignRepository
	TxRepo       domain.TransactionRepository
	UserRepo     domain.UserRepository
}

func InitializeDependencies() (*Dependencies, error) {
	cfg := config.MustLoad()

	db := postgres.MustInitDB(cfg)

	if cfg.CampaignDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.CampaignDB.MigrationsPath); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.Kafka.Host, cfg.Kafka.Port)}
	kafkaPublisher := publisher.NewDefaultKafkaPublisher(brokers)

	repos := &Repositories{
		CampaignRepo: repository.NewDefaultCampaignRepository(db),
		TxRepo:       repository.NewDefaultTransactionRepository(db),
		UserRepo:     repository.NewDefaultUserRepository(db),
	}

	return &Dependencies{
		Config:       cfg,
		DB:           db,
		Publisher:    kafkaPublisher,
		EventLogger:  logger.NewPGDonationEventLogger(db),
		Repositories: repos,
	}, nil
}
