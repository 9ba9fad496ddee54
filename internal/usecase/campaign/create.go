package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sukirti-panigrahi/Comeo/internal/domain"
	campaigndto "github.com/sukirti-panigrahi/Comeo/internal/usecase/dto/campaign"
)

func (uc *DefaultCampaignUsecase) CreateCampaign(ctx context.Context, input *campaigndto.CreateCampaignInput) (*campaigndto.CampaignOutput, error) {
	fundingType := domain.FundingType(input.FundingType)
	if fundingType == "" {
		fundingType = domain.FundUnconditional
	}

	campaign := &domain.Campaign{
		ID:          uuid.New().String(),
		OwnerID:     input.OwnerID,
		EditorIDs:   []string{input.OwnerID},
		Headline:    input.Headline,
		Preview:     input.Preview,
		Description: input.Description,
		SumGoal:     input.SumGoal,
		Duration:    input.Duration,
		State:       domain.StateDraft,
		FundingType: fundingType,
		CreatedAt:   time.Now(),
	}

	if err := campaign.Validate(); err != nil {
		return nil, err
	}

	// In submerchant mode every campaign owner gets a sub-account under the
	// platform merchant for fund routing. Without it the marketplace key is
	// used and no PSP call happens at creation time.
	if uc.SubmerchantMode {
		submerchantID, err := uc.Gateway.CreateSubmerchant(ctx, input.OwnerName, input.OwnerIBAN)
		if err != nil {
			return nil, err
		}
		campaign.PSPSubmerchantID = submerchantID
	}

	if err := uc.CampaignRepo.CreateCampaign(ctx, campaign); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.CampaignsCreatedTotal.WithLabelValues(string(campaign.FundingType)).Inc()
	}

	return campaigndto.ToCampaignOutput(campaign), nil
}

func (uc *DefaultCampaignUsecase) UpdateCampaign(ctx context.Context, input *campaigndto.UpdateCampaignInput) (*campaigndto.CampaignOutput, error) {
	campaign, err := uc.CampaignRepo.GetCampaignByID(ctx, input.CampaignID)
	if err != nil {
		return nil, err
	}

	if !campaign.IsEditor(input.ActorID) {
		return nil, domain.ErrForbidden
	}
	if campaign.State != domain.StateDraft {
		return nil, domain.ErrInvalidState
	}

	campaign.Headline = input.Headline
	campaign.Preview = input.Preview
	campaign.Description = input.Description
	campaign.SumGoal = input.SumGoal
	campaign.Duration = input.Duration
	if input.FundingType != "" {
		campaign.FundingType = domain.FundingType(input.FundingType)
	}

	if err := campaign.Validate(); err != nil {
		return nil, err
	}

	if err := uc.CampaignRepo.UpdateCampaign(ctx, campaign); err != nil {
		return nil, err
	}

	return campaigndto.ToCampaignOutput(campaign), nil
}

func (uc *DefaultCampaignUsecase) DeleteCampaign(ctx context.Context, campaignID, actorID string) error {
	campaign, err := uc.CampaignRepo.GetCampaignByID(ctx, campaignID)
	if err != nil {
		return err
	}

	if campaign.OwnerID != actorID {
		return domain.ErrForbidden
	}
	if campaign.State != domain.StateDraft {
		return domain.ErrInvalidState
	}

	return uc.CampaignRepo.DeleteCampaign(ctx, campaignID)
}
