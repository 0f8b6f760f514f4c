package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/chef-assistente/internal/config"
	"github.com/phrazzld/chef-assistente/internal/generation"
	"github.com/phrazzld/chef-assistente/internal/redact"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model the tool was built against.
const DefaultModel = config.DefaultModelName

// contentGenerator is the part of *genai.Models used by GeminiGenerator.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		cfg *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API.
type GeminiGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// models issues the GenerateContent requests
	models contentGenerator

	// model is the name of the Gemini model to use
	model string
}

var _ generation.Generator = (*GeminiGenerator)(nil)

// NewGenerator validates cfg and creates the genai client that every
// subsequent Generate call reuses.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if err := validateConfig(ctx, logger, cfg); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, redact.Error(err))
	}

	logger.InfoContext(ctx, "Gemini client created", "model", cfg.ModelName)

	return newGenerator(logger, cfg.ModelName, client.Models), nil
}

func newGenerator(logger *slog.Logger, model string, models contentGenerator) *GeminiGenerator {
	return &GeminiGenerator{
		logger: logger,
		models: models,
		model:  model,
	}
}

// Model returns the Gemini model identifier sent with every request.
func (g *GeminiGenerator) Model() string {
	return g.model
}

// Generate sends prompt to Gemini once and returns the text of the first
// candidate.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", generation.ErrEmptyPrompt
	}

	g.logger.InfoContext(ctx, "Making Gemini API call",
		"model", g.model,
		"prompt_length", len(prompt))

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		g.logger.ErrorContext(ctx, "Gemini API call failed",
			"model", g.model,
			"error", redact.Error(err))
		return "", fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
	}

	text, err := extractText(resp)
	if err != nil {
		g.logger.WarnContext(ctx, "Gemini returned no usable text",
			"model", g.model,
			"error", err)
		return "", err
	}

	g.logger.InfoContext(ctx, "Gemini API call successful",
		"model", g.model,
		"response_length", len(text))

	return text, nil
}

// extractText concatenates the non-thought text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked (%s)",
			generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrContentBlocked)
	}

	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}

	if strings.TrimSpace(sb.String()) == "" {
		return "", fmt.Errorf("%w: response contained no text", generation.ErrInvalidResponse)
	}

	return sb.String(), nil
}
