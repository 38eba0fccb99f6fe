package config_test

import (
	"testing"

	"ai-chat-be/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "chats")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_PORT", "")
	t.Setenv("GEMINI_MODEL", "")

	cfg := config.Load()

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "*", cfg.App.CorsAllowedOrigins)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "gemini-1.5-flash-8b", cfg.Gemini.Model)
}

func TestValidate_AllRequiredPresent(t *testing.T) {
	setRequiredEnv(t)

	cfg := config.Load()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
}

func TestValidate_MissingKeys(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("DB_PASSWORD", "")

	cfg := config.Load()
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}
