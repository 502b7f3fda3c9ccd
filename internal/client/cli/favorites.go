package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ctabo91/dreamhost-cli/internal/client/access"
	"github.com/ctabo91/dreamhost-cli/internal/client/api"
	"github.com/ctabo91/dreamhost-cli/internal/client/models"
)

// ToggleFav flips a favorite on or off for a catalog recipe. The session
// manager owns the remote call and the local set; failures are logged there
// and the command stays quiet about them, matching the silent toggle in the
// web client.
func (a *App) ToggleFav(ctx context.Context, recipeType, id string) error {
	t, err := models.ParseRecipeType(recipeType)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
	recipeID, err := models.ParseRecipeID(id)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	target := access.ResolveFavoriteTarget(t, recipeID)
	before := a.session.HasFavorited(id, t)
	a.session.ToggleFavorite(ctx, strconv.FormatInt(target.ID, 10), target.Type)
	after := a.session.HasFavorited(id, t)

	// Membership only changes when the backend confirmed the toggle; an
	// unchanged set means the remote call failed.
	switch {
	case after && !before:
		fmt.Fprintf(a.out, "Added %s %d to favorites.\n", t, recipeID)
	case before && !after:
		fmt.Fprintf(a.out, "Removed %s %d from favorites.\n", t, recipeID)
	default:
		fmt.Fprintf(a.out, "Could not update favorites for %s %d.\n", t, recipeID)
	}
	return nil
}

// Favorites lists the logged-in user's favorited recipes, fetching each name
// from the catalog.
func (a *App) Favorites(ctx context.Context) error {
	printed := false
	for _, t := range []models.RecipeType{models.TypeMeals, models.TypeDrinks} {
		ids := a.favIDs(t)
		if len(ids) == 0 {
			continue
		}
		printed = true
		fmt.Fprintf(a.out, "Favorite %s:\n", t)
		for _, id := range ids {
			recipe, err := a.client.Recipe(ctx, t, id)
			if err != nil || recipe == nil {
				fmt.Fprintf(a.out, "  %6d  (unavailable)\n", id)
				if err != nil {
					a.printErrors(api.Messages(err))
				}
				continue
			}
			fmt.Fprintf(a.out, "  %6d  %s\n", recipe.ID, recipe.Name)
		}
	}
	if !printed {
		fmt.Fprintln(a.out, "You have no favorites yet.")
	}
	return nil
}

func (a *App) favIDs(t models.RecipeType) []int64 {
	if t == models.TypeMeals {
		return a.session.FavMealIDs()
	}
	return a.session.FavDrinkIDs()
}
