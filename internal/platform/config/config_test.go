package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/greenpages_backend/internal/platform/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.True(t, cfg.CommissionRate.IsZero())
	assert.Equal(t, 8, cfg.BulkAssignConcurrency)
	assert.Equal(t, 500, cfg.BulkAssignMaxItems)
	assert.Equal(t, 30*24*time.Hour, cfg.RenewalWindow)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("COMMISSION_RATE", "0.075")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://agents.example.com, https://finance.example.com")
	t.Setenv("RENEWAL_WINDOW", "336h")
	t.Setenv("BULK_ASSIGN_MAX_ITEMS", "50")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "0.075", cfg.CommissionRate.String())
	assert.Equal(t, []string{"https://agents.example.com", "https://finance.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 14*24*time.Hour, cfg.RenewalWindow)
	assert.Equal(t, 50, cfg.BulkAssignMaxItems)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"commission rate not a number", "COMMISSION_RATE", "ten percent"},
		{"commission rate above one", "COMMISSION_RATE", "1.5"},
		{"negative window", "RENEWAL_WINDOW", "-1h"},
		{"bad cron", "SCAN_CRON", "every night"},
		{"zero concurrency", "BULK_ASSIGN_CONCURRENCY", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := config.LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "")

	_, err := config.LoadConfig()
	assert.Error(t, err)
}
