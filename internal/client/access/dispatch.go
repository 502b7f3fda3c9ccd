package access

import (
	"context"
	"fmt"

	"github.com/ctabo91/dreamhost-cli/internal/client/api"
	"github.com/ctabo91/dreamhost-cli/internal/client/models"
)

// FetchRecipe executes a resolved fetch spec against the gateway client.
func FetchRecipe(ctx context.Context, c api.Client, spec FetchSpec) (*models.Recipe, error) {
	switch spec.Op {
	case OpPersonalRecipe:
		return c.PersonalRecipe(ctx, spec.Username, spec.Type, spec.ID)
	case OpCatalogRecipe:
		return c.Recipe(ctx, spec.Type, spec.ID)
	default:
		return nil, fmt.Errorf("fetch spec with unexpected op %q", spec.Op)
	}
}

// ApplyMutation executes a resolved mutation spec against the gateway client.
func ApplyMutation(ctx context.Context, c api.Client, spec MutationSpec, data models.RecipeData) (*models.Recipe, error) {
	switch spec.Op {
	case OpCreatePersonal:
		return c.CreatePersonalRecipe(ctx, spec.Username, spec.Type, data)
	case OpUpdatePersonal:
		return c.UpdatePersonalRecipe(ctx, spec.Username, spec.Type, spec.ID, data)
	default:
		return nil, fmt.Errorf("mutation spec with unexpected op %q", spec.Op)
	}
}
