package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "https://api.groq.com/openai/v1", cfg.Groq.BaseURL)
	assert.Equal(t, 60*time.Second, cfg.Groq.Timeout)
	assert.Equal(t, "http://localhost:11434", cfg.Ollama.BaseURL)
	assert.Equal(t, 90*time.Second, cfg.Ollama.Timeout)
	assert.Equal(t, []string{"groq", "ollama", "local"}, cfg.Generation.Chain)
	assert.Equal(t, 3, cfg.Generation.MaxRetries)
	assert.Equal(t, 2*time.Second, cfg.Generation.RetryDelay)
	assert.Equal(t, 0.7, cfg.Generation.DefaultTemperature)
	assert.Equal(t, 256, cfg.Generation.DefaultMaxTokens)
	assert.Equal(t, 128, cfg.Retriever.EmbeddingDim)
	assert.Equal(t, 3, cfg.Retriever.TopK)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("PROVIDER_CHAIN", "ollama, local")
	t.Setenv("MAX_RETRIES", "5")
	t.Setenv("RETRY_DELAY", "1")
	t.Setenv("GROQ_API_KEY", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, []string{"ollama", "local"}, cfg.Generation.Chain)
	assert.Equal(t, 5, cfg.Generation.MaxRetries)
	assert.Equal(t, time.Second, cfg.Generation.RetryDelay)
	assert.Equal(t, "secret", cfg.Groq.APIKey)
}
