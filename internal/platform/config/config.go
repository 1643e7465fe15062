package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	RateLookupRepository = "repository"
	RateLookupRemote     = "remote"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string
	SeedStaticData bool

	// JWTSecret guards mutations when set. Empty leaves them open.
	JWTSecret string

	// Live rate provider (freecurrencyapi compatible)
	FXAPIHost     string        `mapstructure:"FREECURRENCY_API_URL_HOST"`
	FXAPIKey      string        `mapstructure:"FREECURRENCY_API_KEY"`
	FXHTTPTimeout time.Duration `mapstructure:"FX_HTTP_TIMEOUT"`

	// RateLookupMode picks where the calculator reads conversion rates from.
	RateLookupMode       string `mapstructure:"RATE_LOOKUP_MODE"`
	LocalizationEndpoint string `mapstructure:"LOCALIZATION_ENDPOINT"`
	LandedCostFormula    string `mapstructure:"LANDED_COST_FORMULA"`

	RateLimit          string   `mapstructure:"RATE_LIMIT"`
	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("SEED_STATIC_DATA", true)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("FREECURRENCY_API_URL_HOST", "https://api.freecurrencyapi.com/v1/latest")
	viper.SetDefault("FREECURRENCY_API_KEY", "")
	viper.SetDefault("FX_HTTP_TIMEOUT", "10s")
	viper.SetDefault("RATE_LOOKUP_MODE", RateLookupRepository)
	viper.SetDefault("LOCALIZATION_ENDPOINT", "")
	viper.SetDefault("LANDED_COST_FORMULA", "single")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	fxTimeoutStr := viper.GetString("FX_HTTP_TIMEOUT")
	fxTimeout, err := time.ParseDuration(fxTimeoutStr)
	if err != nil || fxTimeout <= 0 {
		fxTimeout = 10 * time.Second
		log.Printf("Warning: Invalid value for FX_HTTP_TIMEOUT ('%s'). Defaulting to %s.\n", fxTimeoutStr, fxTimeout)
	}

	cfg.RateLookupMode = strings.ToLower(strings.TrimSpace(viper.GetString("RATE_LOOKUP_MODE")))
	cfg.LocalizationEndpoint = strings.TrimRight(viper.GetString("LOCALIZATION_ENDPOINT"), "/")
	switch cfg.RateLookupMode {
	case RateLookupRepository:
	case RateLookupRemote:
		if cfg.LocalizationEndpoint == "" {
			log.Println("Warning: RATE_LOOKUP_MODE is remote but LOCALIZATION_ENDPOINT is empty. Falling back to repository lookups.")
			cfg.RateLookupMode = RateLookupRepository
		}
	default:
		log.Printf("Warning: Invalid value for RATE_LOOKUP_MODE ('%s'). Defaulting to %s.\n", cfg.RateLookupMode, RateLookupRepository)
		cfg.RateLookupMode = RateLookupRepository
	}

	cfg.FXAPIKey = viper.GetString("FREECURRENCY_API_KEY")
	if cfg.FXAPIKey == "" {
		log.Println("Warning: FREECURRENCY_API_KEY not set. Live rate refresh will be rejected by the provider.")
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.SeedStaticData = viper.GetBool("SEED_STATIC_DATA")
	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	cfg.FXAPIHost = viper.GetString("FREECURRENCY_API_URL_HOST")
	cfg.FXHTTPTimeout = fxTimeout
	cfg.LandedCostFormula = strings.ToLower(strings.TrimSpace(viper.GetString("LANDED_COST_FORMULA")))
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
