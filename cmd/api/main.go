package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/octobees/voice-concierge/internal/config"
	"github.com/octobees/voice-concierge/internal/handler"
	"github.com/octobees/voice-concierge/internal/lookup"
	"github.com/octobees/voice-concierge/internal/metrics"
	middlewarepkg "github.com/octobees/voice-concierge/internal/middleware"
	"github.com/octobees/voice-concierge/internal/places"
	"github.com/octobees/voice-concierge/internal/router"
	"github.com/octobees/voice-concierge/internal/scraper"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	var finder lookup.Finder
	switch cfg.LookupProvider {
	case config.ProviderScrape:
		finder = scraper.New(cfg.ScrapeBaseURL)
	default:
		if cfg.PlacesAPIKey == "" {
			log.Printf("WARNING: GOOGLE_PLACES_API_KEY not set; lookups will be denied upstream")
		}
		httpClient := &http.Client{Timeout: cfg.LookupTimeout}
		finder = places.NewClient(httpClient, cfg.PlacesBaseURL, cfg.PlacesAPIKey)
	}

	if cfg.WebhookSecret == "" {
		log.Printf("WARNING: RETELL_WEBHOOK_SECRET not set; signature verification is disabled")
	}

	m := metrics.New()
	webhookHandler := handler.NewWebhookHandler(finder, m, cfg.PhoneRegion)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, router.Handlers{Webhook: webhookHandler})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()
	log.Printf("listening on port %s with %s lookup provider", cfg.Port, cfg.LookupProvider)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
