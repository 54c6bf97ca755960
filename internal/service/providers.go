package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"strings"
	"syscall"
	"time"

	"promptly/pkg/config"

	"go.uber.org/zap"
)

// Provider error taxonomy. Adapters wrap these sentinels so the
// orchestrator and callers can branch with errors.Is.
var (
	// ErrProviderUnavailable means the provider could not be reached at
	// all (connection refused). Never retried.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrProviderRateLimited means the provider answered HTTP 429.
	ErrProviderRateLimited = errors.New("provider rate limited")
	// ErrProviderTimeout means an attempt exceeded its wall-clock budget.
	ErrProviderTimeout = errors.New("provider timeout")
	// ErrProviderProtocol means a non-2xx status or a malformed payload.
	ErrProviderProtocol = errors.New("provider protocol error")
)

// Provider is a single text-generation backend. Attempt wraps the
// provider's own retry/backoff policy and returns the generated content,
// or an empty string with a nil error when retries exhausted without a
// hard failure (e.g. persistent rate limiting).
type Provider interface {
	Name() string
	Attempt(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error)
}

const (
	providerGroq   = "groq"
	providerOllama = "ollama"
	providerLocal  = "local"

	// Remote adapters clamp the temperature to this floor before
	// transmission.
	minTemperature = 0.1
	topP           = 0.9
)

// retryPolicy is the shared linear-backoff schedule: attempt n waits
// delay*n before the next try.
type retryPolicy struct {
	maxRetries int
	delay      time.Duration
}

func (p retryPolicy) backoff(attempt int) {
	time.Sleep(p.delay * time.Duration(attempt))
}

func isTimeoutErr(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isConnRefused(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr) && opErr.Op == "dial"
}

// GroqProvider calls a chat-completion-style endpoint with bearer-token
// auth. It is the primary remote provider and carries the shorter timeout.
type GroqProvider struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
	retry   retryPolicy
	logger  *zap.Logger
}

func NewGroqProvider(cfg *config.GroqConfig, retry *config.GenerationConfig, logger *zap.Logger) *GroqProvider {
	return &GroqProvider{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		client:  &http.Client{Timeout: cfg.Timeout},
		retry:   retryPolicy{maxRetries: retry.MaxRetries, delay: retry.RetryDelay},
		logger:  logger,
	}
}

func (p *GroqProvider) Name() string { return providerGroq }

type groqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type groqRequest struct {
	Model       string        `json:"model"`
	Messages    []groqMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
	TopP        float64       `json:"top_p"`
	Stream      bool          `json:"stream"`
}

type groqResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Attempt tries the Groq completion endpoint up to maxRetries times with
// linear backoff. Rate limiting retries then falls through without an
// error; connection refusal is returned immediately.
func (p *GroqProvider) Attempt(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	if p.apiKey == "" {
		return "", fmt.Errorf("%w: groq api key not configured", ErrProviderUnavailable)
	}

	payload, err := json.Marshal(groqRequest{
		Model:       p.model,
		Messages:    []groqMessage{{Role: "user", Content: prompt}},
		Temperature: math.Max(temperature, minTemperature),
		MaxTokens:   maxTokens,
		TopP:        topP,
		Stream:      false,
	})
	if err != nil {
		return "", fmt.Errorf("marshaling groq request: %w", err)
	}

	for attempt := 1; attempt <= p.retry.maxRetries; attempt++ {
		content, err := p.call(ctx, payload)
		if err == nil {
			if content != "" {
				return content, nil
			}
			// Empty completion, retry without backoff.
			continue
		}
		if errors.Is(err, ErrProviderUnavailable) {
			return "", err
		}
		if errors.Is(err, ErrProviderRateLimited) {
			p.logger.Debug("Groq rate limited, backing off", zap.Int("attempt", attempt))
			p.retry.backoff(attempt)
			continue
		}
		if attempt == p.retry.maxRetries {
			return "", err
		}
		p.retry.backoff(attempt)
	}
	return "", nil
}

func (p *GroqProvider) call(ctx context.Context, payload []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", p.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating groq request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		switch {
		case isTimeoutErr(err):
			return "", fmt.Errorf("%w: groq api timeout", ErrProviderTimeout)
		case isConnRefused(err):
			return "", fmt.Errorf("%w: groq api unreachable", ErrProviderUnavailable)
		default:
			return "", fmt.Errorf("%w: groq request failed: %v", ErrProviderProtocol, err)
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", fmt.Errorf("%w: groq api returned 429", ErrProviderRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: groq api error: %d - %s", ErrProviderProtocol, resp.StatusCode, string(bodyBytes))
	}

	var result groqResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: decoding groq response: %v", ErrProviderProtocol, err)
	}
	if len(result.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(result.Choices[0].Message.Content), nil
}

// OllamaProvider calls an Ollama-style generate endpoint without auth. It
// is the secondary remote provider and carries the longer timeout; a
// missing local daemon is an expected, non-retried condition.
type OllamaProvider struct {
	baseURL string
	model   string
	client  *http.Client
	retry   retryPolicy
	logger  *zap.Logger
}

func NewOllamaProvider(cfg *config.OllamaConfig, retry *config.GenerationConfig, logger *zap.Logger) *OllamaProvider {
	return &OllamaProvider{
		baseURL: cfg.BaseURL,
		model:   cfg.Model,
		client:  &http.Client{Timeout: cfg.Timeout},
		retry:   retryPolicy{maxRetries: retry.MaxRetries, delay: retry.RetryDelay},
		logger:  logger,
	}
}

func (p *OllamaProvider) Name() string { return providerOllama }

type ollamaOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
	TopP        float64 `json:"top_p"`
}

type ollamaRequest struct {
	Model   string        `json:"model"`
	Prompt  string        `json:"prompt"`
	Stream  bool          `json:"stream"`
	Options ollamaOptions `json:"options"`
}

type ollamaResponse struct {
	Response string `json:"response"`
}

func (p *OllamaProvider) Attempt(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	payload, err := json.Marshal(ollamaRequest{
		Model:  p.model,
		Prompt: prompt,
		Stream: false,
		Options: ollamaOptions{
			Temperature: math.Max(temperature, minTemperature),
			NumPredict:  maxTokens,
			TopP:        topP,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshaling ollama request: %w", err)
	}

	for attempt := 1; attempt <= p.retry.maxRetries; attempt++ {
		content, err := p.call(ctx, payload)
		if err == nil {
			if content != "" {
				return content, nil
			}
			continue
		}
		if errors.Is(err, ErrProviderUnavailable) {
			return "", err
		}
		if errors.Is(err, ErrProviderRateLimited) {
			p.logger.Debug("Ollama rate limited, backing off", zap.Int("attempt", attempt))
			p.retry.backoff(attempt)
			continue
		}
		if attempt == p.retry.maxRetries {
			return "", err
		}
		p.retry.backoff(attempt)
	}
	return "", nil
}

func (p *OllamaProvider) call(ctx context.Context, payload []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", p.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating ollama request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		switch {
		case isTimeoutErr(err):
			return "", fmt.Errorf("%w: ollama api timeout", ErrProviderTimeout)
		case isConnRefused(err):
			return "", fmt.Errorf("%w: ollama server not running", ErrProviderUnavailable)
		default:
			return "", fmt.Errorf("%w: ollama request failed: %v", ErrProviderProtocol, err)
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", fmt.Errorf("%w: ollama api returned 429", ErrProviderRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: ollama api error: %d - %s", ErrProviderProtocol, resp.StatusCode, string(bodyBytes))
	}

	var result ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: decoding ollama response: %v", ErrProviderProtocol, err)
	}
	return strings.TrimSpace(result.Response), nil
}
