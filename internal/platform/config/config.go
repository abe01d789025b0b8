package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	MigrationsPath     string
	JWTSecret          string
	JWTIssuer          string
	CORSAllowedOrigins []string
	RateLimit          string // limiter format, e.g. "100-M"

	// Notifications
	RedisURL            string // Empty selects the logging dispatcher
	NotificationChannel string

	// Renewal workflow
	CommissionRate        decimal.Decimal
	BulkAssignConcurrency int
	BulkAssignMaxItems    int
	RenewalWindow         time.Duration
	ExpiryGracePeriod     time.Duration

	// Scheduler cron expressions
	ScanCron       string
	ReactivateCron string
	ExpireCron     string
}

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", "greenpages")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("NOTIFICATION_CHANNEL", "greenpages:renewal-events")
	viper.SetDefault("COMMISSION_RATE", "0")
	viper.SetDefault("BULK_ASSIGN_CONCURRENCY", 8)
	viper.SetDefault("BULK_ASSIGN_MAX_ITEMS", 500)
	viper.SetDefault("RENEWAL_WINDOW", "720h")
	viper.SetDefault("EXPIRY_GRACE_PERIOD", "720h")
	viper.SetDefault("SCAN_CRON", "0 2 * * *")
	viper.SetDefault("REACTIVATE_CRON", "*/15 * * * *")
	viper.SetDefault("EXPIRE_CRON", "30 2 * * *")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:         viper.GetString("PGSQL_URL"),
		Port:                viper.GetString("PORT"),
		IsProduction:        viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:       viper.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:      viper.GetString("MIGRATIONS_PATH"),
		JWTSecret:           viper.GetString("JWT_SECRET"),
		JWTIssuer:           viper.GetString("JWT_ISSUER"),
		CORSAllowedOrigins:  splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimit:           viper.GetString("RATE_LIMIT"),
		RedisURL:            viper.GetString("REDIS_URL"),
		NotificationChannel: viper.GetString("NOTIFICATION_CHANNEL"),
		ScanCron:            viper.GetString("SCAN_CRON"),
		ReactivateCron:      viper.GetString("REACTIVATE_CRON"),
		ExpireCron:          viper.GetString("EXPIRE_CRON"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	rate, err := decimal.NewFromString(viper.GetString("COMMISSION_RATE"))
	if err != nil {
		return nil, fmt.Errorf("invalid COMMISSION_RATE: %w", err)
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("COMMISSION_RATE must be between 0 and 1, got %s", rate)
	}
	cfg.CommissionRate = rate

	cfg.BulkAssignConcurrency = viper.GetInt("BULK_ASSIGN_CONCURRENCY")
	if cfg.BulkAssignConcurrency < 1 {
		return nil, fmt.Errorf("BULK_ASSIGN_CONCURRENCY must be at least 1")
	}
	cfg.BulkAssignMaxItems = viper.GetInt("BULK_ASSIGN_MAX_ITEMS")
	if cfg.BulkAssignMaxItems < 1 {
		return nil, fmt.Errorf("BULK_ASSIGN_MAX_ITEMS must be at least 1")
	}

	if cfg.RenewalWindow, err = parsePositiveDuration("RENEWAL_WINDOW"); err != nil {
		return nil, err
	}
	if cfg.ExpiryGracePeriod, err = parsePositiveDuration("EXPIRY_GRACE_PERIOD"); err != nil {
		return nil, err
	}

	for key, spec := range map[string]string{
		"SCAN_CRON":       cfg.ScanCron,
		"REACTIVATE_CRON": cfg.ReactivateCron,
		"EXPIRE_CRON":     cfg.ExpireCron,
	} {
		if _, err := cron.ParseStandard(spec); err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", key, spec, err)
		}
	}

	return cfg, nil
}

func parsePositiveDuration(key string) (time.Duration, error) {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, raw)
	}
	return d, nil
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
