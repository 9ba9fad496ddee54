package usecase

import (
	"context"

	"github.com/sukirti-panigrahi/Comeo/internal/domain"
	publisher "github.com/sukirti-panigrahi/Comeo/internal/infrastructure/kafka"
	"github.com/sukirti-panigrahi/Comeo/internal/infrastructure/logger"
	"github.com/sukirti-panigrahi/Comeo/internal/infrastructure/metrics"
	donationdto "github.com/sukirti-panigrahi/Comeo/internal/usecase/dto/donation"
)

type DonationUsecase interface {
	Donate(ctx context.Context, input *donationdto.DonateInput) (*donationdto.DonateOutput, error)
	ConfirmDonation(ctx context.Context, transactionID string) error
	ListCampaignDonations(ctx context.Context, campaignID string) ([]*donationdto.TransactionOutput, error)
}

type DefaultDonationUsecase struct {
	TxRepo       domain.TransactionRepository
	CampaignRepo domain.CampaignRepository
	UserRepo     domain.UserRepository
	Gateway      domain.PSPGateway
	Publisher    *publisher.DefaultKafkaPublisher
	Metrics      *metrics.CampaignMetrics
	EventLogger  logger.DonationEventLogger
	FinishHook   domain.FinishHook
	// AutoConfirm confirms transactions right after order creation instead of
	// waiting for the PSP webhook. Testing mode only.
	AutoConfirm bool
}

func NewDefaultDonationUsecase(
	txRepo domain.TransactionRepository,
	campaignRepo domain.CampaignRepository,
	userRepo domain.UserRepository,
	gateway domain.PSPGateway,
	kafkaPublisher *publisher.DefaultKafkaPublisher,
	campaignMetrics *metrics.CampaignMetrics,
	eventLogger logger.DonationEventLogger,
	autoConfirm bool) *DefaultDonationUsecase {

	return &DefaultDonationUsecase{
		TxRepo:       txRepo,
		CampaignRepo: campaignRepo,
		UserRepo:     userRepo,
		Gateway:      gateway,
		Publisher:    kafkaPublisher,
		Metrics:      campaignMetrics,
		EventLogger:  eventLogger,
		AutoConfirm:  autoConfirm,
	}
}
