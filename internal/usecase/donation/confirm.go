package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sukirti-panigrahi/Comeo/internal/domain"
	publisher "github.com/sukirti-panigrahi/Comeo/internal/infrastructure/kafka"
)

// ConfirmDonation is the single integration point the PSP webhook invokes
// when an external payment clears. The credit, the goal check and the
// confirmed flag commit as one locked unit; a duplicate delivery observes
// confirmed=true inside the lock and becomes a no-op instead of
// double-crediting.
func (uc *DefaultDonationUsecase) ConfirmDonation(ctx context.Context, transactionID string) error {
	var (
		confirmedTrx     *domain.Transaction
		confirmedCamp    *domain.Campaign
		campaignFinished bool
	)

	err := uc.TxRepo.ProcessConfirmation(ctx, transactionID, func(trx *domain.Transaction, campaign *domain.Campaign) error {
		if trx.Confirmed {
			return domain.ErrAlreadyConfirmed
		}
		if err := campaign.Credit(trx.Amount); err != nil {
			return err
		}
		campaignFinished = campaign.CheckGoalCompletion()
		if err := trx.MarkConfirmed(time.Now()); err != nil {
			return err
		}
		confirmedTrx = trx
		confirmedCamp = campaign
		return nil
	})
	if errors.Is(err, domain.ErrAlreadyConfirmed) {
		// at-least-once webhook delivery, nothing left to do
		return nil
	}
	if err != nil {
		return err
	}

	if campaignFinished && uc.FinishHook != nil {
		uc.FinishHook(confirmedCamp)
	}

	if uc.Metrics != nil {
		method := string(confirmedTrx.Method)
		uc.Metrics.DonationsConfirmedTotal.WithLabelValues(method).Inc()
		uc.Metrics.DonationsConfirmedAmountTotal.WithLabelValues(method).Add(float64(confirmedTrx.Amount))
		if campaignFinished {
			uc.Metrics.CampaignsFinishedTotal.WithLabelValues("successful", "goal").Inc()
		}
	}

	if uc.Publisher != nil {
		go func(event publisher.DonationEvent) {
			if err := uc.Publisher.PublishDonationEvent(event); err != nil {
				slog.Error("failed to publish kafka DonationEvent", "stage", "confirming", "error", err.Error())
			}
		}(publisher.DonationEvent{
			TransactionID: confirmedTrx.ID,
			CampaignID:    confirmedTrx.CampaignID,
			PayerID:       confirmedTrx.PayerID,
			Amount:        confirmedTrx.Amount,
			Method:        string(confirmedTrx.Method),
			Status:        "confirmed",
		})

		if campaignFinished {
			go func(event publisher.CampaignEvent) {
				if err := uc.Publisher.PublishCampaignEvent(event); err != nil {
					slog.Error("failed to publish kafka CampaignEvent", "stage", "goal-completion", "error", err.Error())
				}
			}(publisher.CampaignEvent{
				CampaignID:   confirmedCamp.ID,
				OwnerID:      confirmedCamp.OwnerID,
				State:        string(confirmedCamp.State),
				CollectedSum: confirmedCamp.CollectedSum,
				SumGoal:      confirmedCamp.SumGoal,
			})
		}
	}

	return nil
}
