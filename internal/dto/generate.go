package dto

import "fmt"

const (
	MinMaxTokens = 50
	MaxMaxTokens = 1024
)

// GenerateRequest is the payload for content generation. Temperature and
// MaxTokens are pointers so that an absent field can be told apart from an
// explicit zero when defaults are applied.
type GenerateRequest struct {
	Text        string   `json:"text"`
	Platform    string   `json:"platform"`
	Temperature *float64 `json:"temperature"`
	MaxTokens   *int     `json:"max_tokens"`
}

// Normalize fills in defaults for omitted fields.
func (r *GenerateRequest) Normalize(defaultTemperature float64, defaultMaxTokens int) {
	if r.Platform == "" {
		r.Platform = "General"
	}
	if r.Temperature == nil {
		t := defaultTemperature
		r.Temperature = &t
	}
	if r.MaxTokens == nil {
		m := defaultMaxTokens
		r.MaxTokens = &m
	}
}

// Validate checks field constraints. Normalize must be called first.
func (r *GenerateRequest) Validate() error {
	if r.Text == "" {
		return fmt.Errorf("text must not be empty")
	}
	if r.Temperature == nil || *r.Temperature < 0 || *r.Temperature > 1 {
		return fmt.Errorf("temperature must be in [0, 1]")
	}
	if r.MaxTokens == nil || *r.MaxTokens < MinMaxTokens || *r.MaxTokens > MaxMaxTokens {
		return fmt.Errorf("max_tokens must be in [%d, %d]", MinMaxTokens, MaxMaxTokens)
	}
	return nil
}

// GenerateResponse is the generated content plus pipeline metadata.
type GenerateResponse struct {
	Content      string   `json:"content"`
	Intent       string   `json:"intent"`
	Sentiment    string   `json:"sentiment"`
	Documents    []string `json:"documents"`
	TimeTaken    float64  `json:"time_taken"`
	FallbackUsed bool     `json:"fallback_used"`
	Reason       string   `json:"reason,omitempty"`
}

// ProviderStatusResponse reports reachability of every configured provider.
type ProviderStatusResponse struct {
	Status           string          `json:"status"`
	Providers        map[string]bool `json:"providers"`
	PrimaryProvider  string          `json:"primary_provider"`
	FallbackProvider string          `json:"fallback_provider"`
	LocalFallback    string          `json:"local_fallback"`
}
