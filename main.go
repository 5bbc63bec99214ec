// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ujwal-s-r/travel-agent-deployed/config"
	"github.com/ujwal-s-r/travel-agent-deployed/handlers"
	"github.com/ujwal-s-r/travel-agent-deployed/middleware"
	"github.com/ujwal-s-r/travel-agent-deployed/routes"
	"github.com/ujwal-s-r/travel-agent-deployed/services/geocode"
	"github.com/ujwal-s-r/travel-agent-deployed/services/intent"
	"github.com/ujwal-s-r/travel-agent-deployed/services/places"
	"github.com/ujwal-s-r/travel-agent-deployed/services/trip"
	"github.com/ujwal-s-r/travel-agent-deployed/services/weather"
	"github.com/ujwal-s-r/travel-agent-deployed/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// Capability clients.
	var geocoder geocode.Geocoder = geocode.NewNominatimGeocoder(
		config.AppConfig.NominatimURL,
		config.AppConfig.UserAgent,
	)
	if cacheClient := utils.GetCacheClient(); cacheClient != nil {
		ttl := time.Duration(config.AppConfig.GeocodeCacheTTLMinutes) * time.Minute
		geocoder = geocode.NewCachedGeocoder(geocoder, cacheClient, ttl, logger)
	}
	weatherSvc := weather.NewOpenMeteoService(config.AppConfig.OpenMeteoURL)
	placesSvc := places.NewOverpassService(config.AppConfig.OverpassURL)

	// Place extraction: Gemini when a key is configured, keyword rules otherwise.
	var extractor intent.PlaceExtractor
	if config.AppConfig.GeminiAPIKey != "" {
		gemini, err := intent.NewGeminiExtractor(config.AppConfig.GeminiAPIKey)
		if err != nil {
			logger.Warn("main: Gemini extractor unavailable, using rule-based extraction only", zap.Error(err))
		} else {
			extractor = gemini
		}
	}
	classifier := intent.NewDefaultClassifier(extractor, logger)

	planner := &trip.DefaultPlanner{
		Classifier:        classifier,
		Geocoder:          geocoder,
		Weather:           weatherSvc,
		Places:            placesSvc,
		Logger:            logger,
		CapabilityTimeout: time.Duration(config.AppConfig.CapabilityTimeoutSeconds) * time.Second,
	}

	tripHandler := handlers.NewTripHandler(planner, logger)

	// Register routes.
	routes.RegisterRoutes(router, tripHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
