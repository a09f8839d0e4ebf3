package server

import (
	"os"
	"strings"
	"time"

	"github.com/fullarch/financing-api/internal/constants"
	"github.com/fullarch/financing-api/internal/handlers"
	"github.com/fullarch/financing-api/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Config carries the server's runtime configuration
type Config struct {
	Stage          string
	AllowedOrigins []string
}

// Handlers bundles the route handlers the router dispatches to
type Handlers struct {
	Health    *handlers.HealthHandler
	Financing *handlers.FinancingHandler
}

// NewRouter builds the gin engine with the full middleware chain and routes.
func NewRouter(cfg Config, h Handlers) *gin.Engine {
	if cfg.Stage == constants.StageProd {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.EnhancedLoggingMiddleware(cfg.Stage != constants.StageProd))

	rateLimiter := middleware.NewRateLimiter(20, 40)
	router.Use(rateLimiter.Middleware())

	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	router.GET("/", h.Health.Live)
	router.GET("/health", h.Health.Health)

	api := router.Group("/api")
	{
		api.POST("/create-plan", h.Financing.CreatePlan)
		api.POST("/create-invoice-schedule", h.Financing.CreateInvoiceSchedule)
	}

	return router
}

// corsConfig allows the form front end, which is served from another origin,
// to call the API directly from the browser.
func corsConfig(allowedOrigins []string) cors.Config {
	config := cors.DefaultConfig()
	if len(allowedOrigins) > 0 {
		config.AllowOrigins = allowedOrigins
	} else {
		config.AllowAllOrigins = true
	}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.CorrelationIDHeader}
	config.MaxAge = 12 * time.Hour
	return config
}

// AllowedOriginsFromEnv parses the comma-separated ALLOWED_ORIGINS variable.
// An empty value means all origins are allowed.
func AllowedOriginsFromEnv() []string {
	raw := os.Getenv("ALLOWED_ORIGINS")
	if raw == "" {
		return nil
	}

	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
