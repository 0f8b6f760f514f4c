package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/chef-assistente/internal/config"
	"github.com/phrazzld/chef-assistente/internal/generation"
)

// validateConfig checks the settings the genai client cannot work without.
func validateConfig(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) error {
	if cfg.GeminiAPIKey == "" {
		logger.ErrorContext(ctx, "Missing Gemini API key", "error", "GeminiAPIKey is empty")
		return fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		logger.ErrorContext(ctx, "Missing model name", "error", "ModelName is empty")
		return fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	return nil
}
