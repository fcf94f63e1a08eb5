package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// FeeRate is the service-fee rate applied on top of a quote's
	// subtotal when the quote opts in.
	FeeRate decimal.Decimal

	// QuoteOverdueAge is how long a quote may sit in PENDING before the
	// overdue report picks it up.
	QuoteOverdueAge time.Duration

	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string

	// PosthogAPIKey enables the audit event sink when non-empty.
	PosthogAPIKey string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "backoffice-app")
	viper.SetDefault("FEE_RATE", "0.15")
	viper.SetDefault("QUOTE_OVERDUE_DAYS", 30)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

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

	feeRateStr := viper.GetString("FEE_RATE")
	feeRate, err := decimal.NewFromString(feeRateStr)
	if err != nil || feeRate.IsNegative() {
		feeRate = decimal.RequireFromString("0.15")
		log.Printf("Warning: Invalid value for FEE_RATE ('%s'). Defaulting to %s.\n", feeRateStr, feeRate)
	}
	cfg.FeeRate = feeRate

	overdueDays := viper.GetInt("QUOTE_OVERDUE_DAYS")
	if overdueDays <= 0 {
		overdueDays = 30
		log.Printf("Warning: Invalid value for QUOTE_OVERDUE_DAYS. Defaulting to %d.\n", overdueDays)
	}
	cfg.QuoteOverdueAge = time.Duration(overdueDays) * 24 * time.Hour

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.PosthogAPIKey = viper.GetString("POSTHOG_API_KEY")

	return cfg, nil
}
