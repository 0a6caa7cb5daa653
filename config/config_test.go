package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GIN_MODE", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.True(t, cfg.PredictionWindowEnforced)
	assert.Equal(t, 2*time.Hour, cfg.InProgressWindow)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "MySQL")
	t.Setenv("PREDICTION_WINDOW_ENFORCED", "false")
	t.Setenv("MATCH_IN_PROGRESS_WINDOW", "150m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://prode.example.com, http://localhost:3000")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.False(t, cfg.PredictionWindowEnforced)
	assert.Equal(t, 150*time.Minute, cfg.InProgressWindow)
	assert.Equal(t, []string{"https://prode.example.com", "http://localhost:3000"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfigRejectsUnknownDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigReleaseModeRequiresJWTSecret(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("DB_DRIVER", "postgres")

	t.Setenv("JWT_SECRET", "")
	_, err := LoadConfig()
	assert.Error(t, err, "release mode must not fall back to the development secret")

	t.Setenv("JWT_SECRET", "change-me")
	_, err = LoadConfig()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "too-short")
	_, err = LoadConfig()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "9f2c4e7a1b8d3f6a0c5e9b2d7f4a1c8e")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "release", cfg.GinMode)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBDriver:   "postgres",
		DBHost:     "db",
		DBPort:     "5432",
		DBUser:     "prode",
		DBPassword: "secret",
		DBName:     "prode",
		DBSSLMode:  "disable",
	}
	assert.Equal(t, "host=db user=prode password=secret dbname=prode port=5432 sslmode=disable TimeZone=UTC", cfg.DSN())

	cfg.DBDriver = "mysql"
	assert.Equal(t, "prode:secret@tcp(db:5432)/prode?charset=utf8mb4&parseTime=True&loc=UTC", cfg.DSN())

	cfg.DatabaseURL = "postgres://override"
	assert.Equal(t, "postgres://override", cfg.DSN())
}
