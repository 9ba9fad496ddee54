package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/sukirti-panigrahi/Comeo/internal/domain"
	publisher "github.com/sukirti-panigrahi/Comeo/internal/infrastructure/kafka"
)

// ForceFinishCampaign is the deadline path, invoked by the finish scheduler
// and by the background sweep. Delivery is at-least-once: a campaign that
// already reached a terminal state (goal completion or an earlier firing)
// is left untouched.
func (uc *DefaultCampaignUsecase) ForceFinishCampaign(ctx context.Context, campaignID string) error {
	var finished *domain.Campaign
	err := uc.CampaignRepo.ProcessCampaignUpdate(ctx, campaignID, func(c *domain.Campaign) error {
		if c.ForceFinish() {
			finished = c
		}
		return nil
	})
	if err != nil {
		return err
	}

	if finished == nil {
		// already terminal, nothing to do
		return nil
	}

	if finished.State == domain.StateFinishedSuccessfully && uc.FinishHook != nil {
		uc.FinishHook(finished)
	}

	if uc.Metrics != nil {
		outcome := "unsuccessful"
		if finished.State == domain.StateFinishedSuccessfully {
			outcome = "successful"
		}
		uc.Metrics.CampaignsFinishedTotal.WithLabelValues(outcome, "deadline").Inc()
	}

	if uc.Publisher != nil {
		go func(event publisher.CampaignEvent) {
			if err := uc.Publisher.PublishCampaignEvent(event); err != nil {
				slog.Error("failed to publish kafka CampaignEvent", "stage", "finishing", "error", err.Error())
			}
		}(publisher.CampaignEvent{
			CampaignID:   finished.ID,
			OwnerID:      finished.OwnerID,
			State:        string(finished.State),
			CollectedSum: finished.CollectedSum,
			SumGoal:      finished.SumGoal,
		})
	}

	return nil
}

// FinishDueCampaigns sweeps public campaigns past their finish date. Covers
// timers lost to a restart and doubles as the at-least-once delivery path.
func (uc *DefaultCampaignUsecase) FinishDueCampaigns(ctx context.Context) error {
	dueCampaigns, err := uc.CampaignRepo.FindDueCampaigns(ctx, time.Now())
	if err != nil {
		return err
	}

	for _, campaign := range dueCampaigns {
		if err := uc.ForceFinishCampaign(ctx, campaign.ID); err != nil {
			slog.Error("failed to force-finish due campaign", "campaign_id", campaign.ID, "error", err.Error())
		}
	}

	return nil
}

// RearmFinishTimers schedules force-finish callbacks for all public campaigns.
// Called at startup to restore timers after a restart.
func (uc *DefaultCampaignUsecase) RearmFinishTimers(ctx context.Context) error {
	publicCampaigns, err := uc.CampaignRepo.FindPublicCampaigns(ctx)
	if err != nil {
		return err
	}

	for _, campaign := range publicCampaigns {
		if campaign.DateFinish != nil {
			uc.Scheduler.ScheduleAt(*campaign.DateFinish, campaign.ID)
		}
	}

	return nil
}
