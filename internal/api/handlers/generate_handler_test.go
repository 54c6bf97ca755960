package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"promptly/internal/api"
	"promptly/internal/api/handlers"
	"promptly/internal/dto"
	"promptly/internal/service"
	"promptly/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestApp wires a full app whose provider chain is only the local
// template generator, so no sockets are dialed.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	logger := zap.NewNop()

	retrieverCfg := &config.RetrieverConfig{EmbeddingDim: 128, TopK: 3}
	generationCfg := &config.GenerationConfig{
		Chain:              []string{"local"},
		MaxRetries:         3,
		RetryDelay:         0,
		DefaultTemperature: 0.7,
		DefaultMaxTokens:   256,
	}

	generator := service.NewGenerationServiceWithProviders(
		[]service.Provider{service.NewLocalProvider(logger)}, logger)
	content := service.NewContentService(
		service.NewClassifierService(logger),
		service.NewRetrieverService(retrieverCfg, logger),
		service.NewPromptService(logger),
		generator,
		retrieverCfg,
		logger,
	)

	handler := handlers.NewGenerateHandler(content, generator, generationCfg, logger)
	return api.SetupRouter(handler, logger)
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest("POST", path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestGenerate_OK(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/generate", `{"text":"how to build morning routines","platform":"Instagram"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.GenerateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.NotEmpty(t, body.Content)
	assert.NotEmpty(t, body.Intent)
	assert.NotEmpty(t, body.Sentiment)
	assert.Len(t, body.Documents, 3)
	assert.True(t, body.FallbackUsed)
}

func TestGenerate_DefaultsApplied(t *testing.T) {
	app := newTestApp(t)

	// Only text supplied: platform, temperature and max_tokens default.
	resp := postJSON(t, app, "/generate", `{"text":"a topic"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.GenerateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.Content)
}

func TestGenerate_ValidationErrors(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name string
		body string
	}{
		{"empty text", `{"text":""}`},
		{"missing text", `{}`},
		{"temperature above range", `{"text":"x","temperature":1.5}`},
		{"temperature below range", `{"text":"x","temperature":-0.2}`},
		{"max_tokens too small", `{"text":"x","max_tokens":10}`},
		{"max_tokens too large", `{"text":"x","max_tokens":5000}`},
		{"malformed json", `{"text":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, app, "/generate", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestGenerate_ZeroTemperatureIsValid(t *testing.T) {
	app := newTestApp(t)

	resp := postJSON(t, app, "/generate", `{"text":"a topic","temperature":0}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealthEndpoints(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/", "/health"} {
		req, err := http.NewRequest("GET", path, nil)
		require.NoError(t, err)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), "status")
	}
}

func TestProviderStatusEndpoint(t *testing.T) {
	app := newTestApp(t)

	req, err := http.NewRequest("GET", "/providers/status", nil)
	require.NoError(t, err)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ProviderStatusResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
	assert.True(t, body.Providers["local"])
}
