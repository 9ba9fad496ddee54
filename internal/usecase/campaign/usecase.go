package usecase

import (
	"context"

	"github.com/sukirti-panigrahi/Comeo/internal/domain"
	publisher "github.com/sukirti-panigrahi/Comeo/internal/infrastructure/kafka"
	"github.com/sukirti-panigrahi/Comeo/internal/infrastructure/metrics"
	campaigndto "github.com/sukirti-panigrahi/Comeo/internal/usecase/dto/campaign"
)

type CampaignUsecase interface {
	CreateCampaign(ctx context.Context, input *campaigndto.CreateCampaignInput) (*campaigndto.CampaignOutput, error)
	UpdateCampaign(ctx context.Context, input *campaigndto.UpdateCampaignInput) (*campaigndto.CampaignOutput, error)
	DeleteCampaign(ctx context.Context, campaignID, actorID string) error
	PublishCampaign(ctx context.Context, campaignID, actorID string) (*campaigndto.CampaignOutput, error)

	ForceFinishCampaign(ctx context.Context, campaignID string) error
	FinishDueCampaigns(ctx context.Context) error
	RearmFinishTimers(ctx context.Context) error

	GetCampaignDetails(ctx context.Context, campaignID string) (*campaigndto.CampaignDetailsOutput, error)
	ListPublicCampaigns(ctx context.Context, page, limit int) ([]*campaigndto.CampaignOutput, int64, error)
}

type DefaultCampaignUsecase struct {
	CampaignRepo    domain.CampaignRepository
	TxRepo          domain.TransactionRepository
	Gateway         domain.PSPGateway
	Scheduler       domain.FinishScheduler
	Publisher       *publisher.DefaultKafkaPublisher
	Metrics         *metrics.CampaignMetrics
	FinishHook      domain.FinishHook
	SubmerchantMode bool
}

func NewDefaultCampaignUsecase(
	campaignRepo domain.CampaignRepository,
	txRepo domain.TransactionRepository,
	gateway domain.PSPGateway,
	finishScheduler domain.FinishScheduler,
	kafkaPublisher *publisher.DefaultKafkaPublisher,
	campaignMetrics *metrics.CampaignMetrics,
	submerchantMode bool) *DefaultCampaignUsecase {

	return &DefaultCampaignUsecase{
		CampaignRepo:    campaignRepo,
		TxRepo:          txRepo,
		Gateway:         gateway,
		Scheduler:       finishScheduler,
		Publisher:       kafkaPublisher,
		Metrics:         campaignMetrics,
		SubmerchantMode: submerchantMode,
	}
}
