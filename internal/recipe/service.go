// Package recipe runs one ingredient submission through prompt building and
// generation and decides what the user gets to see.
package recipe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/chef-assistente/internal/generation"
	"github.com/phrazzld/chef-assistente/internal/prompt"
	"github.com/phrazzld/chef-assistente/internal/redact"
)

// ErrEmptyIngredients is returned when the submitted ingredient list is
// empty or whitespace only. No generation request is made in that case.
var ErrEmptyIngredients = errors.New("digite pelo menos 1 ingrediente")

// ValidationMessage is the inline message shown for ErrEmptyIngredients.
const ValidationMessage = "Digite pelo menos 1 ingrediente."

const generationErrorPrefix = "Ocorreu um erro ao chamar a API do Gemini: "

// Outcome is the result of a submission that reached the generator.
type Outcome struct {
	// Recipe holds the model's Markdown when generation succeeded.
	Recipe string

	// Err holds the generation failure, if any.
	Err error
}

// Succeeded reports whether the generator returned a recipe.
func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// Display returns the Markdown to render: the recipe, or a message carrying
// the redacted failure detail. It is never empty.
func (o Outcome) Display() string {
	if o.Err != nil {
		return generationErrorPrefix + redact.Error(o.Err)
	}
	return o.Recipe
}

// Service validates submissions and forwards them to a Generator.
type Service struct {
	generator generation.Generator
	logger    *slog.Logger
}

// NewService creates a Service around generator.
func NewService(generator generation.Generator, logger *slog.Logger) (*Service, error) {
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &Service{generator: generator, logger: logger}, nil
}

// Submit builds the prompt for ingredients and asks the generator for a
// recipe. Only validation failures are returned as errors; a generation
// failure is reported through Outcome.Err so the caller can still render it.
//
// The request is single-shot: it is detached from ctx cancellation and runs
// until the generator returns.
func (s *Service) Submit(ctx context.Context, ingredients string) (Outcome, error) {
	if strings.TrimSpace(ingredients) == "" {
		s.logger.DebugContext(ctx, "rejected empty ingredient list")
		return Outcome{}, ErrEmptyIngredients
	}

	p := prompt.Build(ingredients)

	s.logger.InfoContext(ctx, "generating recipe",
		"ingredients_length", len(ingredients),
		"prompt_length", len(p))

	text, err := s.generator.Generate(context.WithoutCancel(ctx), p)
	if err != nil {
		s.logger.ErrorContext(ctx, "recipe generation failed", "error", redact.Error(err))
		return Outcome{Err: err}, nil
	}

	if strings.TrimSpace(text) == "" {
		err := fmt.Errorf("%w: empty recipe", generation.ErrInvalidResponse)
		s.logger.WarnContext(ctx, "generator returned empty text")
		return Outcome{Err: err}, nil
	}

	return Outcome{Recipe: text}, nil
}
