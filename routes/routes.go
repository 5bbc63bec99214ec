package routes

import (
	"time"

	"github.com/ujwal-s-r/travel-agent-deployed/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterTripRoutes registers the trip planning endpoints.
func RegisterTripRoutes(r *gin.Engine, tripHandler *handlers.TripHandler) {
	r.POST("/plan-trip", tripHandler.PlanTrip)
	r.GET("/api/info", handlers.InfoHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, tripHandler *handlers.TripHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterTripRoutes(r, tripHandler)
}
