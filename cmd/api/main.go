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

	awsclient "github.com/fullarch/financing-api/internal/client/aws"
	stripeclient "github.com/fullarch/financing-api/internal/client/payment/stripe"
	"github.com/fullarch/financing-api/internal/constants"
	"github.com/fullarch/financing-api/internal/handlers"
	"github.com/fullarch/financing-api/internal/logger"
	"github.com/fullarch/financing-api/internal/server"
	"github.com/fullarch/financing-api/internal/services"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables from .env file for local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err) // Use basic log before logger init
	}

	// --- Determine and Validate Stage ---
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = constants.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !constants.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, constants.StageProd, constants.StageDev, constants.StageLocal)
	}

	// --- Initialize Logger (AFTER stage validation) ---
	logger.InitLogger(stage)
	logger.Info("Starting financing API", zap.String("stage", stage))

	ctx := context.Background()

	// --- Resolve the Stripe secret key ---
	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	stripeKey, err := secretsClient.GetSecretString(ctx, "STRIPE_SECRET_KEY_ARN", "STRIPE_SECRET_KEY")
	if err != nil {
		// A missing key would only fail at first use otherwise; refuse to
		// start instead.
		logger.Fatal("Stripe secret key is not configured", zap.Error(err))
	}

	// --- Construct the single long-lived processor client ---
	processor, err := stripeclient.New(stripeKey, logger.Log)
	if err != nil {
		logger.Fatal("Failed to initialize Stripe client", zap.Error(err))
	}

	calculator := services.NewPlanCalculator()
	financingService := services.NewFinancingService(processor, calculator, logger.Log)

	router := server.NewRouter(
		server.Config{
			Stage:          stage,
			AllowedOrigins: server.AllowedOriginsFromEnv(),
		},
		server.Handlers{
			Health:    handlers.NewHealthHandler(),
			Financing: handlers.NewFinancingHandler(financingService),
		},
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		logger.Info("Listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
