package api

import (
	"context"

	"github.com/phrazzld/chef-assistente/internal/recipe"
)

// RecipeSubmitter runs one ingredient submission. recipe.Service implements it.
type RecipeSubmitter interface {
	Submit(ctx context.Context, ingredients string) (recipe.Outcome, error)
}

var _ RecipeSubmitter = (*recipe.Service)(nil)
