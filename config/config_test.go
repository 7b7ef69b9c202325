package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "GOOGLE_API_KEY", "OPENAI_API_KEY", "APP_ACCESS_TOKEN",
		"LLM_PROVIDER", "LLM_MODEL", "LLM_REQUEST_TIMEOUT_SECONDS",
		"PORT", "MAX_UPLOAD_MB", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "g-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "secret123", cfg.AccessToken)
	assert.Equal(t, ProviderGemini, cfg.LLMProvider)
	assert.Equal(t, DefaultGeminiModel, cfg.LLMModel)
	assert.Equal(t, "5001", cfg.Port)
	assert.Equal(t, 60*time.Second, cfg.LLMRequestTimeout)
	assert.Equal(t, int64(32<<20), cfg.MaxUploadBytes)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_AccessTokenOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "g-key")
	t.Setenv("APP_ACCESS_TOKEN", "s3cr3t")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", cfg.AccessToken)
}

func TestLoad_ProviderValidation(t *testing.T) {
	t.Run("gemini without key", func(t *testing.T) {
		clearEnv(t)
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GOOGLE_API_KEY")
	})

	t.Run("openai without key", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LLM_PROVIDER", "openai")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	})

	t.Run("openai default model", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LLM_PROVIDER", "OpenAI")
		t.Setenv("OPENAI_API_KEY", "o-key")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, ProviderOpenAI, cfg.LLMProvider)
		assert.Equal(t, DefaultOpenAIModel, cfg.LLMModel)
	})

	t.Run("vader needs no key", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LLM_PROVIDER", "vader")
		t.Setenv("LLM_MODEL", "ignored")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Empty(t, cfg.LLMModel)
	})

	t.Run("unknown provider", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LLM_PROVIDER", "claude")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "claude")
	})
}

func TestLoad_InvalidNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "g-key")
	t.Setenv("LLM_REQUEST_TIMEOUT_SECONDS", "soon")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("LLM_REQUEST_TIMEOUT_SECONDS", "")
	t.Setenv("MAX_UPLOAD_MB", "0")
	_, err = Load()
	require.Error(t, err)
}

func TestRedacted(t *testing.T) {
	cfg := Config{GoogleAPIKey: "g", AccessToken: "t", Port: "5001"}
	red := cfg.Redacted()

	assert.Equal(t, "****", red.GoogleAPIKey)
	assert.Equal(t, "****", red.AccessToken)
	assert.Empty(t, red.OpenAIAPIKey)
	assert.Equal(t, "5001", red.Port)
	assert.Equal(t, "g", cfg.GoogleAPIKey)
}
