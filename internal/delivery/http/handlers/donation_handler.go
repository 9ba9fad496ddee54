package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sukirti-panigrahi/Comeo/internal/delivery/http/dto/request"
	"github.com/sukirti-panigrahi/Comeo/internal/domain"
	donationusecase "github.com/sukirti-panigrahi/Comeo/internal/usecase/donation"
	donationdto "github.com/sukirti-panigrahi/Comeo/internal/usecase/dto/donation"
)

type DonationHandler struct {
	uc donationusecase.DonationUsecase
}

func NewDonationHandler(uc donationusecase.DonationUsecase) *DonationHandler {
	return &DonationHandler{uc: uc}
}

func (h *DonationHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /campaigns/{id}/donate", h.Donate)
	mux.HandleFunc("GET /campaigns/{id}/donations", h.ListDonations)
	mux.HandleFunc("POST /psp/webhook", h.Webhook)
	mux.HandleFunc("GET /psp/return", h.Return)
}

func (h *DonationHandler) Donate(w http.ResponseWriter, r *http.Request) {
	var req request.Donate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation))
		return
	}

	payerID := req.PayerID
	if payerID == "" {
		payerID = actorID(r)
	}

	input := &donationdto.DonateInput{
		CampaignID: r.PathValue("id"),
		PayerID:    payerID,
		Amount:     req.Amount,
		Method:     req.Method,
		IsPublic:   req.IsPublic,
	}
	if req.Payer != nil {
		input.Payer = &donationdto.PayerInfo{
			Email:     req.Payer.Email,
			FirstName: req.Payer.FirstName,
			LastName:  req.Payer.LastName,
		}
	}

	output, err := h.uc.Donate(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, output)
}

func (h *DonationHandler) ListDonations(w http.ResponseWriter, r *http.Request) {
	outputs, err := h.uc.ListCampaignDonations(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, outputs)
}

// Webhook is invoked by the PSP when an external payment clears. Safe under
// at-least-once delivery: duplicate confirmations are no-ops.
func (h *DonationHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	var req request.PSPWebhook
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation))
		return
	}
	if req.TransactionID == "" {
		writeError(w, fmt.Errorf("%w: transaction_id is required", domain.ErrValidation))
		return
	}

	if err := h.uc.ConfirmDonation(r.Context(), req.TransactionID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Return handles the donor coming back from the PSP payment page. The PSP
// does not sign this redirect, so no payment state is derived from it; the
// donor is simply routed back to the campaign page.
func (h *DonationHandler) Return(w http.ResponseWriter, r *http.Request) {
	campaignID := r.URL.Query().Get("campaign_id")
	if campaignID == "" {
		writeError(w, fmt.Errorf("%w: campaign_id is required", domain.ErrValidation))
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/campaigns/%s", campaignID), http.StatusFound)
}
