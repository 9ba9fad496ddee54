package usecase

import (
	"context"

	"github.com/sukirti-panigrahi/Comeo/internal/domain"
	campaigndto "github.com/sukirti-panigrahi/Comeo/internal/usecase/dto/campaign"
)

// GetCampaignDetails is the public campaign page. Drafts are hidden from the
// public and reported as not found. Every view bumps the view counter.
func (uc *DefaultCampaignUsecase) GetCampaignDetails(ctx context.Context, campaignID string) (*campaigndto.CampaignDetailsOutput, error) {
	campaign, err := uc.CampaignRepo.GetCampaignByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	if campaign.State == domain.StateDraft {
		return nil, domain.ErrNotFound
	}

	if err := uc.CampaignRepo.IncrementViews(ctx, campaignID); err == nil {
		campaign.ViewsCount++
	}

	backersCount, err := uc.TxRepo.CountConfirmedByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	return &campaigndto.CampaignDetailsOutput{
		CampaignOutput: *campaigndto.ToCampaignOutput(campaign),
		BackersCount:   backersCount,
	}, nil
}

func (uc *DefaultCampaignUsecase) ListPublicCampaigns(ctx context.Context, page, limit int) ([]*campaigndto.CampaignOutput, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	campaigns, total, err := uc.CampaignRepo.ListPublicCampaigns(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	outputs := make([]*campaigndto.CampaignOutput, len(campaigns))
	for i, campaign := range campaigns {
		outputs[i] = campaigndto.ToCampaignOutput(campaign)
	}

	return outputs, total, nil
}
