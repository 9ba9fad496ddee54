package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CampaignMetrics aggregates the prometheus collectors of the donation flow.
type CampaignMetrics struct {
	CampaignsCreatedTotal   prometheus.CounterVec
	CampaignsPublishedTotal prometheus.Counter
	CampaignsFinishedTotal  prometheus.CounterVec

	DonationsCreatedTotal         prometheus.CounterVec
	DonationsConfirmedTotal       prometheus.CounterVec
	DonationsConfirmedAmountTotal prometheus.CounterVec
	DonationErrorsTotal           prometheus.CounterVec

	PSPRequestDuration prometheus.HistogramVec
	PSPErrorsTotal     prometheus.CounterVec
}

func NewCampaignMetrics() *CampaignMetrics {
	return &CampaignMetrics{
		CampaignsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaigns_created_total",
				Help: "Total number of created campaigns",
			},
			[]string{"funding_type"},
		),

		CampaignsPublishedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "campaigns_published_total",
				Help: "Total number of published campaigns",
			},
		),

		CampaignsFinishedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "campaigns_finished_total",
				Help: "Total number of finished campaigns by outcome and trigger",
			},
			[]string{"outcome", "trigger"},
		),

		DonationsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "donations_created_total",
				Help: "Total number of created donation transactions",
			},
			[]string{"method"},
		),

		DonationsConfirmedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "donations_confirmed_total",
				Help: "Total number of confirmed donation transactions",
			},
			[]string{"method"},
		),

		DonationsConfirmedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "donations_confirmed_amount_total",
				Help: "Total confirmed donation amount",
			},
			[]string{"method"},
		),

		DonationErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "donation_errors_total",
				Help: "Total number of donation flow errors",
			},
			[]string{"stage"},
		),

		PSPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "psp_request_duration_seconds",
				Help:    "PSP API request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),

		PSPErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "psp_errors_total",
				Help: "Total number of failed PSP API requests",
			},
			[]string{"endpoint"},
		),
	}
}
