package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"promptly/internal/dto"
	"promptly/internal/models"
	"promptly/pkg/config"

	"go.uber.org/zap"
)

// ContentService is the end-to-end generation pipeline: classify the
// topic, retrieve reference snippets, build the prompt, run the provider
// chain, and substitute deterministic fallback content whenever the chain
// degraded or produced nothing. It never returns an error: any panic in a
// pipeline stage degrades to an informational/neutral response with
// template content.
type ContentService struct {
	classifier *ClassifierService
	retriever  *RetrieverService
	prompts    *PromptService
	generator  *GenerationService
	topK       int
	logger     *zap.Logger
}

func NewContentService(
	classifier *ClassifierService,
	retriever *RetrieverService,
	prompts *PromptService,
	generator *GenerationService,
	cfg *config.RetrieverConfig,
	logger *zap.Logger,
) *ContentService {
	return &ContentService{
		classifier: classifier,
		retriever:  retriever,
		prompts:    prompts,
		generator:  generator,
		topK:       cfg.TopK,
		logger:     logger,
	}
}

// Generate runs the full pipeline for a normalized request.
func (s *ContentService) Generate(ctx context.Context, req *dto.GenerateRequest) (resp *dto.GenerateResponse) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("Generation pipeline panicked", zap.Any("panic", r))
			resp = s.emergencyResponse(req, start, r)
		}
	}()

	intent, sentiment := s.classifier.Analyze(req.Text)
	documents := s.retriever.Retrieve(req.Text, s.topK)
	prompt := s.prompts.BuildPrompt(req.Text, req.Platform, intent, sentiment, documents, *req.MaxTokens)

	outcome := s.generator.Generate(ctx, prompt, *req.Temperature, *req.MaxTokens)

	content := outcome.Content
	fallbackUsed := outcome.FallbackUsed
	if fallbackUsed || strings.TrimSpace(content) == "" {
		content = s.prompts.FallbackContent(req.Text, req.Platform, intent, sentiment)
		fallbackUsed = true
	}

	s.logger.Info("Content generated",
		zap.String("platform", req.Platform),
		zap.String("intent", string(intent)),
		zap.String("sentiment", string(sentiment)),
		zap.Bool("fallback_used", fallbackUsed),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &dto.GenerateResponse{
		Content:      content,
		Intent:       string(intent),
		Sentiment:    string(sentiment),
		Documents:    documents,
		TimeTaken:    roundSeconds(time.Since(start)),
		FallbackUsed: fallbackUsed,
		Reason:       outcome.Reason,
	}
}

func (s *ContentService) emergencyResponse(req *dto.GenerateRequest, start time.Time, cause any) *dto.GenerateResponse {
	intent, sentiment := models.IntentInformational, models.SentimentNeutral
	return &dto.GenerateResponse{
		Content:      s.prompts.FallbackContent(req.Text, req.Platform, intent, sentiment),
		Intent:       string(intent),
		Sentiment:    string(sentiment),
		Documents:    []string{},
		TimeTaken:    roundSeconds(time.Since(start)),
		FallbackUsed: true,
		Reason:       fmt.Sprintf("Internal error: %v", cause),
	}
}

// roundSeconds converts an elapsed duration to seconds rounded to two
// decimal places, matching the response contract.
func roundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}
