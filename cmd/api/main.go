package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carbon-credits/internal/api"
	"carbon-credits/internal/api/middleware"
	"carbon-credits/internal/data"
	"carbon-credits/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	production := os.Getenv("API_ENV") == "production"
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logger.SetGlobalLogger(logger.New(logger.Config{
		Level:  logLevel,
		Pretty: !production,
	}))

	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	ttl := data.DefaultDatasetTTL
	if ttlStr := os.Getenv("DATASET_TTL"); ttlStr != "" {
		parsed, err := time.ParseDuration(ttlStr)
		if err != nil {
			log.Fatal().Err(err).Str("DATASET_TTL", ttlStr).Msg("invalid dataset ttl")
		}
		ttl = parsed
	}

	if production {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cache := data.NewDatasetCache(ttl)
	go cache.RunCleanup(ctx, 5*time.Minute)

	router := api.NewRouter(api.RouterConfig{
		Cache:          cache,
		AllowedOrigins: middleware.ParseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
		RequestLogging: true,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Dur("dataset_ttl", ttl).Msg("Starting API server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server stopped")
}
