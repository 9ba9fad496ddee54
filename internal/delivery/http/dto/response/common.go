package response

import campaigndto "github.com/sukirti-panigrahi/Comeo/internal/usecase/dto/campaign"

type ErrorResponse struct {
	Error string `json:"error"`
}

type CampaignList struct {
	Campaigns []*campaigndto.CampaignOutput `json:"campaigns"`
	Total     int64                         `json:"total"`
}
