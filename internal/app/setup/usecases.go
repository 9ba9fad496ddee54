package setup

import (
	"context"
	"log/slog"

	"github.com/sukirti-panigrahi/Comeo/internal/infrastructure/metrics"
	"github.com/sukirti-panigrahi/Comeo/internal/infrastructure/psp"
	"github.com/sukirti-panigrahi/Comeo/internal/infrastructure/scheduler"
	campaignusecase "github.com/sukirti-panigrahi/Comeo/internal/usecase/campaign"
	donationusecase "github.com/sukirti-panigrahi/Comeo/internal/usecase/donation"
)

type Usecases struct {
	Campaign  campaignusecase.CampaignUsecase
	Donation  donationusecase.DonationUsecase
	Scheduler *scheduler.TimerScheduler
	Metrics   *metrics.CampaignMetrics
}

func InitializeUsecases(deps *Dependencies) *Usecases {
	campaignMetrics := metrics.NewCampaignMetrics()
	gateway := psp.NewGingerClient(deps.Config.PSP).WithMetrics(campaignMetrics)
	finishScheduler := scheduler.NewTimerScheduler()

	campaignUC := campaignusecase.NewDefaultCampaignUsecase(
		deps.Repositories.CampaignRepo,
		deps.Repositories.TxRepo,
		gateway,
		finishScheduler,
		deps.Publisher,
		campaignMetrics,
		deps.Config.PSP.SubmerchantMode,
	)

	donationUC := donationusecase.NewDefaultDonationUsecase(
		deps.Repositories.TxRepo,
		deps.Repositories.CampaignRepo,
		deps.Repositories.UserRepo,
		gateway,
		deps.Publisher,
		campaignMetrics,
		deps.EventLogger,
		deps.Config.PSP.AutoConfirm,
	)

	finishScheduler.SetHandler(func(campaignID string) {
		if err := campaignUC.ForceFinishCampaign(context.Background(), campaignID); err != nil {
			slog.Error("scheduled force-finish failed", "campaign_id", campaignID, "error", err.Error())
		}
	})

	return &Usecases{
		Campaign:  campaignUC,
		Donation:  donationUC,
		Scheduler: finishScheduler,
		Metrics:   campaignMetrics,
	}
}
