package api

import (
	"context"

	"github.com/ctabo91/dreamhost-cli/internal/client/models"
)

// Filter narrows a catalog listing. Zero value lists everything.
type Filter struct {
	Name     string
	Category string
}

// Client is the operation surface of the DreamHost backend consumed by the
// session and presentation layers.
//
// Contract:
//   - Authenticate/Register return a bearer session token on success.
//   - SetToken attaches the token to all subsequent requests.
//   - Listing operations return an empty slice, not an error, when nothing
//     matches.
//   - All methods honor context cancellation.
type Client interface {
	SetToken(token string)

	Authenticate(ctx context.Context, creds models.Credentials) (string, error)
	Register(ctx context.Context, data models.SignupData) (string, error)

	User(ctx context.Context, username string) (*models.User, error)
	UpdateUser(ctx context.Context, username string, data models.ProfileData) (*models.User, error)

	Recipes(ctx context.Context, t models.RecipeType, filter Filter) ([]models.Recipe, error)
	Recipe(ctx context.Context, t models.RecipeType, id int64) (*models.Recipe, error)
	Categories(ctx context.Context, t models.RecipeType) ([]models.Category, error)

	PersonalRecipes(ctx context.Context, username string, t models.RecipeType) ([]models.Recipe, error)
	PersonalRecipe(ctx context.Context, username string, t models.RecipeType, id int64) (*models.Recipe, error)
	CreatePersonalRecipe(ctx context.Context, username string, t models.RecipeType, data models.RecipeData) (*models.Recipe, error)
	UpdatePersonalRecipe(ctx context.Context, username string, t models.RecipeType, id int64, data models.RecipeData) (*models.Recipe, error)

	AddFavorite(ctx context.Context, username string, t models.RecipeType, id int64) error
	RemoveFavorite(ctx context.Context, username string, t models.RecipeType, id int64) error
}
