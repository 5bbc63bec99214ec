// File: handlers/info.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const serviceVersion = "1.0.0"

// HealthHandler handles GET /health.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "Travel Agent",
		"version": serviceVersion,
	})
}

// InfoHandler handles GET /api/info with a self-description of the API.
func InfoHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "Travel Agent API",
		"version":     serviceVersion,
		"description": "Trip planning service providing weather and tourist attractions for a place",
		"endpoints": gin.H{
			"/plan-trip": gin.H{
				"method":      "POST",
				"description": "Get weather and attractions for a place",
				"input":       gin.H{"query": "string (e.g., 'Bangalore', 'I'm going to Paris, what's the weather?')"},
				"output":      "Weather info + tourist attractions",
			},
			"/health": gin.H{
				"method":      "GET",
				"description": "Health check endpoint",
			},
		},
		"example_request": gin.H{"query": "Bangalore"},
		"example_response": gin.H{
			"response":             "In Bangalore it's currently 24°C with a chance of 35% to rain. And these are the places you can go:\nLalbagh\nBangalore Palace",
			"success":              true,
			"place":                "Bangalore",
			"temperature":          24.0,
			"precipitation_chance": 35,
			"attractions":          []string{"Lalbagh", "Bangalore Palace"},
		},
	})
}
