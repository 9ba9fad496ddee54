package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sukirti-panigrahi/Comeo/internal/app/background"
	"github.com/sukirti-panigrahi/Comeo/internal/app/setup"
	"github.com/sukirti-panigrahi/Comeo/internal/delivery/http/handlers"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	deps, err := setup.InitializeDependencies()
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}

	ucs := setup.InitializeUsecases(deps)

	// restore finish timers for campaigns published before the restart
	if err := ucs.Campaign.RearmFinishTimers(context.Background()); err != nil {
		log.Fatalf("failed to rearm finish timers: %v", err)
	}

	tasks := background.NewBackgroundTasks(ucs.Campaign, deps.Config.Scheduler.SweepInterval)
	tasks.StartAll(context.Background())

	campaignHandler := handlers.NewCampaignHandler(ucs.Campaign)
	donationHandler := handlers.NewDonationHandler(ucs.Donation)

	mux := http.NewServeMux()
	campaignHandler.RegisterRoutes(mux)
	donationHandler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	addr := fmt.Sprintf("%s:%s", deps.Config.HTTPServer.Host, deps.Config.HTTPServer.Port)
	log.Printf("campaign service started on %s\n", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
