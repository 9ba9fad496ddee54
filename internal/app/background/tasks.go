package background

import (
	"context"
	"log"
	"time"

	campaignusecase "github.com/sukirti-panigrahi/Comeo/internal/usecase/campaign"
)

type BackgroundTasks struct {
	CampaignUsecase campaignusecase.CampaignUsecase
	SweepInterval   time.Duration
}

func NewBackgroundTasks(campaignUC campaignusecase.CampaignUsecase, sweepInterval time.Duration) *BackgroundTasks {
	if sweepInterval <= 0 {
		sweepInterval = 30 * time.Second
	}
	return &BackgroundTasks{
		CampaignUsecase: campaignUC,
		SweepInterval:   sweepInterval,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startFinishSweep(ctx)
}

// startFinishSweep finalizes public campaigns past their deadline. Together
// with the in-process timers this gives at-least-once finalization: timers
// fire at the exact finish date, the sweep picks up anything lost to a
// restart.
func (bt *BackgroundTasks) startFinishSweep(ctx context.Context) {
	ticker := time.NewTicker(bt.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.CampaignUsecase.FinishDueCampaigns(ctx); err != nil {
				log.Printf("Finish sweep error: %v\n", err)
			}
		}
	}
}
