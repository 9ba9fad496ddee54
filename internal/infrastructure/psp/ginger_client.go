package psp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sukirti-panigrahi/Comeo/internal/config"
	"github.com/sukirti-panigrahi/Comeo/internal/domain"
	"github.com/sukirti-panigrahi/Comeo/internal/infrastructure/metrics"
)

// GingerClient talks to a Ginger Payments style order API. Authentication is
// HTTP basic with the API key as username and an empty password. Submerchant
// routing versus a single marketplace key is a configuration choice, not a
// separate code path: when SubmerchantMode is off the submerchant_id extra is
// simply never sent.
type GingerClient struct {
	cfg     config.PSPConfig
	client  *http.Client
	metrics *metrics.CampaignMetrics
}

func NewGingerClient(cfg config.PSPConfig) *GingerClient {
	return &GingerClient{
		cfg: cfg,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (g *GingerClient) WithMetrics(m *metrics.CampaignMetrics) *GingerClient {
	g.metrics = m
	return g
}

type orderRequest struct {
	Currency    string            `json:"currency"`
	Amount      int64             `json:"amount"`
	ReturnURL   string            `json:"return_url"`
	Description string            `json:"description"`
	Extra       map[string]string `json:"extra,omitempty"`
}

type orderResponse struct {
	ID       string `json:"id"`
	OrderURL string `json:"order_url"`
}

type submerchantRequest struct {
	Name        string      `json:"name"`
	BankAccount bankAccount `json:"bank_account"`
}

type bankAccount struct {
	IBAN string `json:"iban"`
}

type submerchantResponse struct {
	ID string `json:"id"`
}

// CreateOrder creates an external payment order and returns its id and the
// redirect URL for the donor. The return URL embeds the campaign id so the
// return-redirect handler can route the donor back to the campaign page.
func (g *GingerClient) CreateOrder(ctx context.Context, in *domain.CreateOrderInput) (*domain.CreateOrderOutput, error) {
	body := orderRequest{
		Currency:    g.cfg.Currency,
		Amount:      in.AmountMinor,
		ReturnURL:   fmt.Sprintf(g.cfg.ReturnURLTemplate, in.CampaignID),
		Description: in.Description,
	}
	if g.cfg.SubmerchantMode && in.SubmerchantID != "" {
		body.Extra = map[string]string{"submerchant_id": in.SubmerchantID}
	}

	var payload orderResponse
	if err := g.post(ctx, "orders", g.cfg.APIBaseURL+"/v1/orders/", body, &payload); err != nil {
		return nil, err
	}

	if payload.OrderURL == "" {
		return nil, fmt.Errorf("%w: psp order response missing order_url", domain.ErrExternalService)
	}

	return &domain.CreateOrderOutput{
		OrderID:  payload.ID,
		OrderURL: payload.OrderURL,
	}, nil
}

// CreateSubmerchant registers a sub-account under the platform merchant for
// fund routing. Used at campaign creation time in submerchant mode.
func (g *GingerClient) CreateSubmerchant(ctx context.Context, name, iban string) (string, error) {
	endpoint := fmt.Sprintf("%s/v1/merchants/%s/submerchants/", g.cfg.APIBaseURL, g.cfg.MerchantID)
	body := submerchantRequest{
		Name:        name,
		BankAccount: bankAccount{IBAN: iban},
	}

	var payload submerchantResponse
	if err := g.post(ctx, "submerchants", endpoint, body, &payload); err != nil {
		return "", err
	}

	if payload.ID == "" {
		return "", fmt.Errorf("%w: psp submerchant response missing id", domain.ErrExternalService)
	}

	return payload.ID, nil
}

func (g *GingerClient) post(ctx context.Context, name, endpoint string, body, out interface{}) error {
	if err := g.doPost(ctx, name, endpoint, body, out); err != nil {
		if g.metrics != nil {
			g.metrics.PSPErrorsTotal.WithLabelValues(name).Inc()
		}
		return err
	}
	return nil
}

func (g *GingerClient) doPost(ctx context.Context, name, endpoint string, body, out interface{}) error {
	requestBodyBytes, err := json.Marshal(body)
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")
	request.SetBasicAuth(g.cfg.APIKey, "")

	started := time.Now()
	response, err := g.client.Do(request)
	if g.metrics != nil {
		g.metrics.PSPRequestDuration.WithLabelValues(name).Observe(time.Since(started).Seconds())
	}
	if err != nil {
		return fmt.Errorf("%w: psp request failed: %v", domain.ErrExternalService, err)
	}
	defer response.Body.Close()

	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("%w: reading psp response: %v", domain.ErrExternalService, err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("%w: psp returned status %d", domain.ErrExternalService, response.StatusCode)
	}

	if err := json.Unmarshal(responseBodyBytes, out); err != nil {
		return fmt.Errorf("%w: malformed psp response: %v", domain.ErrExternalService, err)
	}

	return nil
}
