package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/octobees/voice-concierge/internal/config"
	"github.com/octobees/voice-concierge/internal/handler"
	middlewarepkg "github.com/octobees/voice-concierge/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Webhook *handler.WebhookHandler
}

// Register wires all HTTP routes for the service.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"service": "voice-concierge",
			"status":  "active",
			"endpoints": map[string]string{
				"/webhook": "POST - voice agent webhook endpoint",
				"/health":  "GET - health check endpoint",
			},
		})
	})
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "healthy", "service": "voice-concierge"})
	})
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	webhook := e.Group("/webhook",
		middlewarepkg.VerifySignature(cfg.WebhookSecret),
		middlewarepkg.WebhookRateLimiter(cfg.RateLimitWebhook),
	)
	webhook.POST("", handlers.Webhook.Dispatch)
	webhook.POST("/search_restaurants", handlers.Webhook.SearchRestaurants)
	webhook.POST("/get_restaurant_details", handlers.Webhook.GetRestaurantDetails)
	webhook.POST("/check_availability", handlers.Webhook.CheckAvailability)
}
