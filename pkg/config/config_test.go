package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, "ARS", cfg.MercadoPago.Currency)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
	assert.False(t, cfg.Auth.Required)
	assert.NotEmpty(t, cfg.CORS.AllowOrigins)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("DB_MAX_OPEN_CONNS", "5")
	t.Setenv("DB_QUERY_TIMEOUT", "2s")
	t.Setenv("AUTH_REQUIRED", "true")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://admin.example.com, http://localhost:5173")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Database.MaxOpenConns)
	assert.Equal(t, 2*time.Second, cfg.Database.QueryTimeout)
	assert.True(t, cfg.Auth.Required)
	assert.Equal(t, []string{"https://admin.example.com", "http://localhost:5173"}, cfg.CORS.AllowOrigins)
}

func TestGetDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.example.com",
		Port:     "5432",
		User:     "inmoweb",
		Password: "s3cret",
		Name:     "inmoweb_db",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.example.com port=5432 user=inmoweb password=s3cret dbname=inmoweb_db sslmode=require",
		cfg.GetDSN())
}
