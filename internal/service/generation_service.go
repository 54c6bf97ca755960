package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"promptly/pkg/config"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const localFallbackReason = "Used local fallback after providers failed"

// GenerationOutcome is the terminal result of a chain run. FallbackUsed
// false implies Content is non-empty.
type GenerationOutcome struct {
	Content      string
	FallbackUsed bool
	Reason       string
}

// GenerationService runs the ordered provider chain. It returns on the
// first provider that yields non-empty content and never surfaces a hard
// failure: with the local provider in the chain the worst case is template
// content, without it the worst case is an empty outcome carrying the last
// error as the reason.
type GenerationService struct {
	providers []Provider
	logger    *zap.Logger
}

func NewGenerationService(cfg *config.Config, logger *zap.Logger) (*GenerationService, error) {
	providers := make([]Provider, 0, len(cfg.Generation.Chain))
	for _, name := range cfg.Generation.Chain {
		switch name {
		case providerGroq:
			providers = append(providers, NewGroqProvider(&cfg.Groq, &cfg.Generation, logger))
		case providerOllama:
			providers = append(providers, NewOllamaProvider(&cfg.Ollama, &cfg.Generation, logger))
		case providerLocal:
			providers = append(providers, NewLocalProvider(logger))
		default:
			return nil, fmt.Errorf("unknown provider in chain: %q", name)
		}
	}
	if len(providers) == 0 {
		return nil, fmt.Errorf("provider chain is empty")
	}
	return &GenerationService{providers: providers, logger: logger}, nil
}

// NewGenerationServiceWithProviders builds an orchestrator over an
// explicit provider list.
func NewGenerationServiceWithProviders(providers []Provider, logger *zap.Logger) *GenerationService {
	return &GenerationService{providers: providers, logger: logger}
}

// Generate walks the chain in order. Provider failures are logged and
// recorded as the last error, never propagated.
func (s *GenerationService) Generate(ctx context.Context, prompt string, temperature float64, maxTokens int) GenerationOutcome {
	var lastErr error

	for _, provider := range s.providers {
		content, err := provider.Attempt(ctx, prompt, temperature, maxTokens)
		if err != nil {
			lastErr = err
			s.logger.Warn("Provider failed",
				zap.String("provider", provider.Name()),
				zap.Error(err),
			)
			continue
		}
		content = strings.TrimSpace(content)
		if content == "" {
			continue
		}
		if provider.Name() == providerLocal {
			return GenerationOutcome{Content: content, FallbackUsed: true, Reason: localFallbackReason}
		}
		return GenerationOutcome{Content: content, FallbackUsed: false}
	}

	reason := "All providers failed."
	if lastErr != nil {
		reason = fmt.Sprintf("All providers failed. Last error: %v", lastErr)
	}
	return GenerationOutcome{Content: "", FallbackUsed: true, Reason: reason}
}

// ProviderStatus probes every remote provider in the chain with a minimal
// test prompt and reports reachability. Remote probes run concurrently;
// the local provider is always reachable. Status is computed on demand and
// never cached.
func (s *GenerationService) ProviderStatus(ctx context.Context) map[string]bool {
	status := map[string]bool{
		providerGroq:   false,
		providerOllama: false,
		providerLocal:  true,
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	for _, provider := range s.providers {
		if provider.Name() == providerLocal {
			continue
		}
		provider := provider
		g.Go(func() error {
			content, err := provider.Attempt(ctx, "Hello", 0.7, 10)
			reachable := err == nil && strings.TrimSpace(content) != ""
			mu.Lock()
			status[provider.Name()] = reachable
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return status
}
