package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration (geocode cache).
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	// Gemini API key for LLM place extraction. Empty disables the LLM
	// path; the keyword heuristic still runs.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Capability provider endpoints.
	NominatimURL string `mapstructure:"NOMINATIM_URL"`
	OpenMeteoURL string `mapstructure:"OPEN_METEO_URL"`
	OverpassURL  string `mapstructure:"OVERPASS_URL"`

	// User-Agent sent to Nominatim (required by their usage policy).
	UserAgent string `mapstructure:"USER_AGENT"`

	// Per-capability timeout for the weather/places fan-out, in seconds.
	CapabilityTimeoutSeconds int `mapstructure:"CAPABILITY_TIMEOUT_SECONDS"`

	// TTL for cached geocode results, in minutes.
	GeocodeCacheTTLMinutes int `mapstructure:"GEOCODE_CACHE_TTL_MINUTES"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("NOMINATIM_URL", "https://nominatim.openstreetmap.org")
	viper.SetDefault("OPEN_METEO_URL", "https://api.open-meteo.com")
	viper.SetDefault("OVERPASS_URL", "https://overpass-api.de/api/interpreter")
	viper.SetDefault("USER_AGENT", "TravelAgent/1.0")
	viper.SetDefault("CAPABILITY_TIMEOUT_SECONDS", 10)
	viper.SetDefault("GEOCODE_CACHE_TTL_MINUTES", 60)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
