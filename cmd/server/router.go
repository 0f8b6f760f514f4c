package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/chef-assistente/internal/api"
	apiMiddleware "github.com/phrazzld/chef-assistente/internal/api/middleware"
)

// setupRouter creates the router with all routes and middleware.
func (app *application) setupRouter() (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	pageHandler, err := api.NewPageHandler(
		app.recipeService,
		app.renderer,
		app.logger.With("component", "page_handler"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create page handler: %w", err)
	}

	recipeHandler, err := api.NewRecipeHandler(
		app.recipeService,
		app.renderer,
		app.logger.With("component", "recipe_handler"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe handler: %w", err)
	}

	r.Get("/", pageHandler.ShowForm)
	r.Post("/", pageHandler.SubmitForm)
	r.Get("/health", api.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/recipes", recipeHandler.GenerateRecipe)
	})

	return r, nil
}
