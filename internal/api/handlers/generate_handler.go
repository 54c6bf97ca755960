package handlers

import (
	"promptly/internal/dto"
	"promptly/internal/service"
	"promptly/pkg/config"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GenerateHandler struct {
	content   *service.ContentService
	generator *service.GenerationService
	defaults  config.GenerationConfig
	logger    *zap.Logger
}

func NewGenerateHandler(
	content *service.ContentService,
	generator *service.GenerationService,
	cfg *config.GenerationConfig,
	logger *zap.Logger,
) *GenerateHandler {
	return &GenerateHandler{
		content:   content,
		generator: generator,
		defaults:  *cfg,
		logger:    logger,
	}
}

// Generate handles POST /generate: validate the request, run the pipeline,
// and return the generated content with metadata. The pipeline itself never
// fails, so the only error responses here are validation errors.
func (h *GenerateHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	req.Normalize(h.defaults.DefaultTemperature, h.defaults.DefaultMaxTokens)
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	requestID := uuid.New().String()
	h.logger.Info("Generation request",
		zap.String("request_id", requestID),
		zap.String("platform", req.Platform),
		zap.Int("text_length", len(req.Text)),
	)

	resp := h.content.Generate(c.Context(), &req)
	return c.JSON(resp)
}

// Status handles GET /providers/status: probe each configured provider
// with a minimal test prompt and report reachability.
func (h *GenerateHandler) Status(c *fiber.Ctx) error {
	status := h.generator.ProviderStatus(c.Context())
	return c.JSON(dto.ProviderStatusResponse{
		Status:           "ok",
		Providers:        status,
		PrimaryProvider:  "groq",
		FallbackProvider: "ollama",
		LocalFallback:    "available",
	})
}
