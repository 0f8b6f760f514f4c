// Package main implements the entry point for the Chef Assistente server,
// which turns a list of ingredients into a recipe written by Gemini.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/phrazzld/chef-assistente/internal/config"
	"github.com/phrazzld/chef-assistente/internal/platform/logger"
)

func main() {
	ctx := context.Background()

	app, err := initializeApp(ctx)
	if err != nil {
		if errors.Is(err, config.ErrMissingCredential) {
			fmt.Fprintln(os.Stderr, config.UserMessage)
		}
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		app.logger.Error("Application stopped with error", "error", err)
		os.Exit(1)
	}
}

// initializeApp loads configuration, sets up logging and wires the
// application. Configuration is resolved first so a missing credential
// stops startup before anything else is built.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName)
	slog.Debug("LLM configuration", "api_key_present", cfg.LLM.GeminiAPIKey != "")

	return newApplication(ctx, cfg, l)
}
