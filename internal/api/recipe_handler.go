package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/chef-assistente/internal/api/shared"
	"github.com/phrazzld/chef-assistente/internal/recipe"
)

// GenerateRecipeRequest represents the request body for POST /api/recipes.
type GenerateRecipeRequest struct {
	Ingredients string `json:"ingredients" validate:"required"`
}

// RecipeResponse carries a generated recipe as Markdown and as rendered HTML.
type RecipeResponse struct {
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
}

// RecipeHandler handles the JSON recipe endpoint.
type RecipeHandler struct {
	service  RecipeSubmitter
	renderer *MarkdownRenderer
	logger   *slog.Logger
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(service RecipeSubmitter, renderer *MarkdownRenderer, logger *slog.Logger) (*RecipeHandler, error) {
	if service == nil {
		return nil, errors.New("service cannot be nil")
	}
	if renderer == nil {
		return nil, errors.New("renderer cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &RecipeHandler{
		service:  service,
		renderer: renderer,
		logger:   logger,
	}, nil
}

// GenerateRecipe handles POST /api/recipes requests.
func (h *RecipeHandler) GenerateRecipe(w http.ResponseWriter, r *http.Request) {
	var req GenerateRecipeRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, recipe.ValidationMessage)
		return
	}

	outcome, err := h.service.Submit(r.Context(), req.Ingredients)
	if errors.Is(err, recipe.ErrEmptyIngredients) {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, recipe.ValidationMessage)
		return
	}
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to generate recipe", err)
		return
	}

	if !outcome.Succeeded() {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadGateway, outcome.Display(), outcome.Err)
		return
	}

	html, err := h.renderer.Render(outcome.Recipe)
	if err != nil {
		// The Markdown is still useful on its own.
		h.logger.WarnContext(r.Context(), "failed to render recipe HTML", "error", err)
	}

	shared.RespondWithJSON(w, r, http.StatusOK, RecipeResponse{
		Markdown: outcome.Recipe,
		HTML:     string(html),
	})
}

// Health handles GET /health.
func Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}
