package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
	"github.com/sukirti-panigrahi/Comeo/internal/domain"
	publisher "github.com/sukirti-panigrahi/Comeo/internal/infrastructure/kafka"
	"github.com/sukirti-panigrahi/Comeo/internal/infrastructure/logger"
	donationdto "github.com/sukirti-panigrahi/Comeo/internal/usecase/dto/donation"
)

// Donate creates a pending transaction for a public campaign and a matching
// external payment order, returning the PSP redirect URL. The transaction is
// not confirmed here: confirmation arrives through the PSP webhook, except in
// auto-confirm testing mode.
func (uc *DefaultDonationUsecase) Donate(ctx context.Context, input *donationdto.DonateInput) (*donationdto.DonateOutput, error) {
	campaign, err := uc.CampaignRepo.GetCampaignByID(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}

	if campaign.State == domain.StateDraft {
		// unpublished campaigns are invisible to donors
		return nil, fmt.Errorf("%w: campaign %s", domain.ErrNotFound, campaign.ID)
	}
	if campaign.IsFinished() {
		return nil, fmt.Errorf("%w: campaign %s is finished", domain.ErrInvalidState, campaign.ID)
	}

	payer, err := uc.resolvePayer(ctx, input)
	if err != nil {
		return nil, err
	}

	trx := &domain.Transaction{
		ID:         uuid.New().String(),
		CampaignID: campaign.ID,
		PayerID:    payer.ID,
		Amount:     input.Amount,
		Method:     domain.PaymentMethod(input.Method),
		IsPublic:   input.IsPublic,
		CreatedAt:  time.Now(),
	}
	if err := trx.Validate(); err != nil {
		return nil, err
	}

	if err := uc.TxRepo.CreateTransaction(ctx, trx); err != nil {
		return nil, err
	}

	order, err := uc.Gateway.CreateOrder(ctx, &domain.CreateOrderInput{
		AmountMinor:   trx.Amount * 100,
		Description:   fmt.Sprintf("Payment for %s", campaign.Headline),
		CampaignID:    campaign.ID,
		SubmerchantID: campaign.PSPSubmerchantID,
	})
	if err != nil {
		// the transaction stays unconfirmed and the campaign sum untouched
		if uc.Metrics != nil {
			uc.Metrics.DonationErrorsTotal.WithLabelValues("order_creation").Inc()
		}
		if uc.EventLogger != nil {
			uc.EventLogger.LogDonationFailed(ctx, logger.DonationFailedEvent{
				CampaignID: campaign.ID,
				PayerID:    payer.ID,
				Amount:     trx.Amount,
				Reason:     err.Error(),
				Timestamp:  time.Now(),
			})
		}
		return nil, err
	}

	if err := uc.TxRepo.SetExternalID(ctx, trx.ID, order.OrderID); err != nil {
		return nil, err
	}
	trx.ExternalID = order.OrderID

	if uc.Metrics != nil {
		uc.Metrics.DonationsCreatedTotal.WithLabelValues(string(trx.Method)).Inc()
	}
	if uc.EventLogger != nil {
		uc.EventLogger.LogDonationCreated(ctx, logger.DonationCreatedEvent{
			TransactionID: trx.ID,
			CampaignID:    campaign.ID,
			PayerID:       payer.ID,
			Amount:        trx.Amount,
			Method:        string(trx.Method),
			ExternalID:    trx.ExternalID,
			Timestamp:     time.Now(),
		})
	}
	if uc.Publisher != nil {
		go func(event publisher.DonationEvent) {
			if err := uc.Publisher.PublishDonationEvent(event); err != nil {
				slog.Error("failed to publish kafka DonationEvent", "stage", "creating", "error", err.Error())
			}
		}(publisher.DonationEvent{
			TransactionID: trx.ID,
			CampaignID:    campaign.ID,
			PayerID:       payer.ID,
			Amount:        trx.Amount,
			Method:        string(trx.Method),
			Status:        "created",
		})
	}

	if uc.AutoConfirm {
		if err := uc.ConfirmDonation(ctx, trx.ID); err != nil {
			return nil, err
		}
	}

	return &donationdto.DonateOutput{
		TransactionID: trx.ID,
		PayerID:       payer.ID,
		OrderURL:      order.OrderURL,
	}, nil
}

// resolvePayer returns the registered payer or creates an account for an
// anonymous donor. The account carries an unusable credential token: the
// donation history is preserved but the account cannot independently log in.
func (uc *DefaultDonationUsecase) resolvePayer(ctx context.Context, input *donationdto.DonateInput) (*domain.Payer, error) {
	if input.PayerID != "" {
		return uc.UserRepo.GetUserByID(ctx, input.PayerID)
	}

	if input.Payer == nil || input.Payer.Email == "" {
		return nil, fmt.Errorf("%w: payer info is required for anonymous donations", domain.ErrValidation)
	}

	tokenGenerator, err := nanoid.Standard(21)
	if err != nil {
		return nil, err
	}

	payer := &domain.Payer{
		ID:              uuid.New().String(),
		Email:           input.Payer.Email,
		FirstName:       input.Payer.FirstName,
		LastName:        input.Payer.LastName,
		CredentialToken: "!" + tokenGenerator(),
		Registered:      false,
		CreatedAt:       time.Now(),
	}

	if err := uc.UserRepo.CreateUser(ctx, payer); err != nil {
		return nil, err
	}

	return payer, nil
}

func (uc *DefaultDonationUsecase) ListCampaignDonations(ctx context.Context, campaignID string) ([]*donationdto.TransactionOutput, error) {
	trxs, err := uc.TxRepo.ListByCampaignID(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	outputs := make([]*donationdto.TransactionOutput, 0, len(trxs))
	for _, trx := range trxs {
		if !trx.IsPublic {
			continue
		}
		outputs = append(outputs, donationdto.ToTransactionOutput(trx))
	}

	return outputs, nil
}
