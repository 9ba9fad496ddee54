package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/sukirti-panigrahi/Comeo/internal/delivery/http/dto/request"
	"github.com/sukirti-panigrahi/Comeo/internal/delivery/http/dto/response"
	"github.com/sukirti-panigrahi/Comeo/internal/domain"
	campaignusecase "github.com/sukirti-panigrahi/Comeo/internal/usecase/campaign"
	campaigndto "github.com/sukirti-panigrahi/Comeo/internal/usecase/dto/campaign"
)

type CampaignHandler struct {
	uc campaignusecase.CampaignUsecase
}

func NewCampaignHandler(uc campaignusecase.CampaignUsecase) *CampaignHandler {
	return &CampaignHandler{uc: uc}
}

func (h *CampaignHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /campaigns", h.Create)
	mux.HandleFunc("GET /campaigns", h.List)
	mux.HandleFunc("GET /campaigns/{id}", h.Details)
	mux.HandleFunc("PUT /campaigns/{id}", h.Update)
	mux.HandleFunc("DELETE /campaigns/{id}", h.Delete)
	mux.HandleFunc("POST /campaigns/{id}/publish", h.Publish)
}

func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCampaign
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation))
		return
	}

	ownerID := req.OwnerID
	if ownerID == "" {
		ownerID = actorID(r)
	}

	output, err := h.uc.CreateCampaign(r.Context(), &campaigndto.CreateCampaignInput{
		OwnerID:     ownerID,
		OwnerName:   req.OwnerName,
		OwnerIBAN:   req.OwnerIBAN,
		Headline:    req.Headline,
		Preview:     req.Preview,
		Description: req.Description,
		SumGoal:     req.SumGoal,
		Duration:    req.Duration,
		FundingType: req.FundingType,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, output)
}

func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	campaigns, total, err := h.uc.ListPublicCampaigns(r.Context(), page, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response.CampaignList{Campaigns: campaigns, Total: total})
}

func (h *CampaignHandler) Details(w http.ResponseWriter, r *http.Request) {
	output, err := h.uc.GetCampaignDetails(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *CampaignHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateCampaign
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation))
		return
	}

	output, err := h.uc.UpdateCampaign(r.Context(), &campaigndto.UpdateCampaignInput{
		CampaignID:  r.PathValue("id"),
		ActorID:     actorID(r),
		Headline:    req.Headline,
		Preview:     req.Preview,
		Description: req.Description,
		SumGoal:     req.SumGoal,
		Duration:    req.Duration,
		FundingType: req.FundingType,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

func (h *CampaignHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.uc.DeleteCampaign(r.Context(), r.PathValue("id"), actorID(r)); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CampaignHandler) Publish(w http.ResponseWriter, r *http.Request) {
	output, err := h.uc.PublishCampaign(r.Context(), r.PathValue("id"), actorID(r))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
