package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// External rate provider
	RateAPIKey     string
	RateAPIBaseURL string
	RateAPITimeout time.Duration

	// Base URL used when building email verification links
	AppBaseURL string

	// Formatted rate for the auth endpoints limiter, e.g. "5-M"
	AuthRateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "currency-gateway-app")
	viper.SetDefault("CURRENCYBEACON_API_KEY", "")
	viper.SetDefault("CURRENCYBEACON_BASE_URL", "https://api.currencybeacon.com/v1")
	viper.SetDefault("CURRENCYBEACON_TIMEOUT", "10s")
	viper.SetDefault("APP_BASE_URL", "http://localhost:8080")
	viper.SetDefault("AUTH_RATE_LIMIT", "5-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.RateAPIKey = viper.GetString("CURRENCYBEACON_API_KEY")
	if cfg.RateAPIKey == "" {
		log.Println("Warning: CURRENCYBEACON_API_KEY environment variable not set.")
	}
	cfg.RateAPIBaseURL = viper.GetString("CURRENCYBEACON_BASE_URL")

	rateTimeoutStr := viper.GetString("CURRENCYBEACON_TIMEOUT")
	rateTimeout, err := time.ParseDuration(rateTimeoutStr)
	if err != nil {
		rateTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for CURRENCYBEACON_TIMEOUT ('%s'). Defaulting to %s.\n", rateTimeoutStr, rateTimeout)
	}
	cfg.RateAPITimeout = rateTimeout

	cfg.AppBaseURL = viper.GetString("APP_BASE_URL")
	cfg.AuthRateLimit = viper.GetString("AUTH_RATE_LIMIT")

	return cfg, nil
}
