package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ctabo91/dreamhost-cli/internal/client/access"
	"github.com/ctabo91/dreamhost-cli/internal/client/api"
	"github.com/ctabo91/dreamhost-cli/internal/client/models"
)

// List browses the global catalog, optionally filtered by a name search.
func (a *App) List(ctx context.Context, recipeType string, search []string) error {
	t, err := models.ParseRecipeType(recipeType)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	filter := api.Filter{Name: strings.Join(search, " ")}
	recipes, err := a.client.Recipes(ctx, t, filter)
	if err != nil {
		a.printErrors(api.Messages(err))
		return nil
	}

	a.renderRecipeList(recipes, access.Global, t)
	return nil
}

// ByCategory browses the recipes of a single catalog category.
func (a *App) ByCategory(ctx context.Context, recipeType, category string) error {
	t, err := models.ParseRecipeType(recipeType)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	recipes, err := a.client.Recipes(ctx, t, api.Filter{Category: category})
	if err != nil {
		a.printErrors(api.Messages(err))
		return nil
	}

	a.renderRecipeList(recipes, access.Global, t)
	return nil
}

// Categories lists the catalog categories and how many recipes each holds.
func (a *App) Categories(ctx context.Context, recipeType string) error {
	t, err := models.ParseRecipeType(recipeType)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	categories, err := a.client.Categories(ctx, t)
	if err != nil {
		a.printErrors(api.Messages(err))
		return nil
	}
	if len(categories) == 0 {
		fmt.Fprintln(a.out, "No categories found.")
		return nil
	}

	for _, c := range categories {
		fmt.Fprintf(a.out, "  %-24s %d recipes\n", c.Name, c.Count)
	}
	return nil
}

// Show fetches and renders a single recipe. The access mode decides the data
// source: global recipes come from the shared catalog and can be favorited;
// personal recipes come from the user's own library and can be edited.
func (a *App) Show(ctx context.Context, mode, recipeType, id string) error {
	m, err := access.ParseMode(mode)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}
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

	spec := access.ResolveFetch(m, t, recipeID, a.session.Username())
	recipe, err := access.FetchRecipe(ctx, a.client, spec)
	if err != nil {
		a.printErrors(api.Messages(err))
		return nil
	}
	if recipe == nil {
		fmt.Fprintln(a.out, "Recipe not found.")
		return nil
	}

	a.renderRecipeDetails(recipe, m, t)
	return nil
}
