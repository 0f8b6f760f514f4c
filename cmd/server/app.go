package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/chef-assistente/internal/api"
	"github.com/phrazzld/chef-assistente/internal/config"
	"github.com/phrazzld/chef-assistente/internal/generation"
	"github.com/phrazzld/chef-assistente/internal/platform/gemini"
	"github.com/phrazzld/chef-assistente/internal/recipe"
)

// application holds the shared dependencies built once at startup.
type application struct {
	config *config.Config
	logger *slog.Logger

	generator     generation.Generator
	recipeService *recipe.Service
	renderer      *api.MarkdownRenderer
}

// newApplication creates the Gemini generator from cfg and wires the rest
// of the application around it.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	generator, err := gemini.NewGenerator(
		ctx,
		logger.With("component", "llm_generator"),
		cfg.LLM,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized successfully")

	return newApplicationWithGenerator(cfg, logger, generator)
}

// newApplicationWithGenerator wires the application around an existing
// generator.
func newApplicationWithGenerator(
	cfg *config.Config,
	logger *slog.Logger,
	generator generation.Generator,
) (*application, error) {
	svc, err := recipe.NewService(generator, logger.With("component", "recipe_service"))
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe service: %w", err)
	}

	return &application{
		config:        cfg,
		logger:        logger,
		generator:     generator,
		recipeService: svc,
		renderer:      api.NewMarkdownRenderer(),
	}, nil
}

// Run builds the router and serves HTTP until ctx is cancelled or the
// process receives SIGINT/SIGTERM.
func (app *application) Run(ctx context.Context) error {
	router, err := app.setupRouter()
	if err != nil {
		return fmt.Errorf("failed to set up router: %w", err)
	}

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
