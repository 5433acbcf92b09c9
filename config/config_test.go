package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("REGISTRATION_TIME_SLOTS", "")
	t.Setenv("TIMEZONE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Contains(t, cfg.DBUrl, "churchattendance")
	assert.Equal(t, []string{"9:00am", "11:00am"}, cfg.TimeSlots)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 2*time.Hour, cfg.DraftTTL)
	assert.Equal(t, "UTC", cfg.Location.String())
	assert.Equal(t, "noop", cfg.Email.Provider)
	assert.False(t, cfg.RequireEvent)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "9090")
	t.Setenv("REGISTRATION_TIME_SLOTS", " 8:00am , 10:30am,")
	t.Setenv("REGISTRATION_REQUIRE_EVENT", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("JWT_EXPIRY", "90m")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"8:00am", "10:30am"}, cfg.TimeSlots)
	assert.True(t, cfg.RequireEvent)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 90*time.Minute, cfg.JWTExpiry)
	assert.Equal(t, 2, cfg.RedisDB)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing secret in production", env: map[string]string{"JWT_SECRET": ""}},
		{name: "bad duration", env: map[string]string{"JWT_EXPIRY": "soon"}},
		{name: "zero timeout", env: map[string]string{"REQUEST_TIMEOUT": "0"}},
		{name: "negative draft ttl", env: map[string]string{"DRAFT_TTL": "-5m"}},
		{name: "bad redis db", env: map[string]string{"REDIS_DB": "one"}},
		{name: "bad bool", env: map[string]string{"REGISTRATION_REQUIRE_EVENT": "maybe"}},
		{name: "bad timezone", env: map[string]string{"TIMEZONE": "Mars/Olympus"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GO_ENV", "production")
			t.Setenv("JWT_SECRET", "s3cret")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel(" WARN "))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}
