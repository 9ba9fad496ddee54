package mappers

import (
	"github.com/sukirti-panigrahi/Comeo/internal/domain"
	"github.com/sukirti-panigrahi/Comeo/internal/infrastructure/postgres/models"
)

func ToDomainCampaign(model *models.CampaignModel) *domain.Campaign {
	editorIDs := make([]string, len(model.Editors))
	for i, editor := range model.Editors {
		editorIDs[i] = editor.ID
	}
	return &domain.Campaign{
		ID:               model.ID,
		OwnerID:          model.OwnerID,
		EditorIDs:        editorIDs,
		Headline:         model.Headline,
		Preview:          model.Preview,
		Description:      model.Description,
		SumGoal:          model.SumGoal,
		Duration:         model.Duration,
		CollectedSum:     model.CollectedSum,
		State:            model.State,
		FundingType:      model.FundingType,
		PSPSubmerchantID: model.PSPSubmerchantID,
		DateStart:        model.DateStart,
		DateFinish:       model.DateFinish,
		ViewsCount:       model.ViewsCount,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}

func ToGORMCampaign(campaign *domain.Campaign) *models.CampaignModel {
	editors := make([]models.UserModel, len(campaign.EditorIDs))
	for i, editorID := range campaign.EditorIDs {
		editors[i] = models.UserModel{ID: editorID}
	}
	return &models.CampaignModel{
		ID:               campaign.ID,
		OwnerID:          campaign.OwnerID,
		Headline:         campaign.Headline,
		Preview:          campaign.Preview,
		Description:      campaign.Description,
		SumGoal:          campaign.SumGoal,
		Duration:         campaign.Duration,
		CollectedSum:     campaign.CollectedSum,
		State:            campaign.State,
		FundingType:      campaign.FundingType,
		PSPSubmerchantID: campaign.PSPSubmerchantID,
		DateStart:        campaign.DateStart,
		DateFinish:       campaign.DateFinish,
		ViewsCount:       campaign.ViewsCount,
		CreatedAt:        campaign.CreatedAt,
		UpdatedAt:        campaign.UpdatedAt,
		Editors:          editors,
	}
}
