package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/sukirti-panigrahi/Comeo/internal/domain"
	publisher "github.com/sukirti-panigrahi/Comeo/internal/infrastructure/kafka"
	campaigndto "github.com/sukirti-panigrahi/Comeo/internal/usecase/dto/campaign"
)

// PublishCampaign moves a draft campaign to PUBLIC, fixes the funding window
// and arms the force-finish callback at the finish date. Publishing happens
// exactly once: a second call fails the draft precondition under the row lock.
func (uc *DefaultCampaignUsecase) PublishCampaign(ctx context.Context, campaignID, actorID string) (*campaigndto.CampaignOutput, error) {
	campaign, err := uc.CampaignRepo.GetCampaignByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if !campaign.IsEditor(actorID) {
		return nil, domain.ErrForbidden
	}

	var published *domain.Campaign
	err = uc.CampaignRepo.ProcessCampaignUpdate(ctx, campaignID, func(c *domain.Campaign) error {
		if err := c.Publish(time.Now()); err != nil {
			return err
		}
		published = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	// armed only after the publish committed
	uc.Scheduler.ScheduleAt(*published.DateFinish, published.ID)

	if uc.Metrics != nil {
		uc.Metrics.CampaignsPublishedTotal.Inc()
	}

	if uc.Publisher != nil {
		go func(event publisher.CampaignEvent) {
			if err := uc.Publisher.PublishCampaignEvent(event); err != nil {
				slog.Error("failed to publish kafka CampaignEvent", "stage", "publishing", "error", err.Error())
			}
		}(publisher.CampaignEvent{
			CampaignID:   published.ID,
			OwnerID:      published.OwnerID,
			State:        string(published.State),
			CollectedSum: published.CollectedSum,
			SumGoal:      published.SumGoal,
		})
	}

	return campaigndto.ToCampaignOutput(published), nil
}
