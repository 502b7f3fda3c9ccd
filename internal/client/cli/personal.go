package cli

import (
	"context"
	"fmt"

	"github.com/ctabo91/dreamhost-cli/internal/client/access"
	"github.com/ctabo91/dreamhost-cli/internal/client/api"
	"github.com/ctabo91/dreamhost-cli/internal/client/models"
	"github.com/ctabo91/dreamhost-cli/internal/client/validate"
)

// Mine lists the logged-in user's personal recipes of one type.
func (a *App) Mine(ctx context.Context, recipeType string) error {
	t, err := models.ParseRecipeType(recipeType)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	recipes, err := a.client.PersonalRecipes(ctx, a.session.Username(), t)
	if err != nil {
		a.printErrors(api.Messages(err))
		return nil
	}
	if len(recipes) == 0 {
		fmt.Fprintf(a.out, "You have no personal %s yet. Try: create %s\n", t, t)
		return nil
	}

	a.renderRecipeList(recipes, access.Personal, t)
	return nil
}

// Create walks the user through the personal-recipe form and submits it.
func (a *App) Create(ctx context.Context, recipeType string) error {
	t, err := models.ParseRecipeType(recipeType)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return nil
	}

	data, err := a.recipeForm(t, models.RecipeData{})
	if err != nil {
		return err
	}
	if msgs := validate.Struct(data); len(msgs) > 0 {
		a.printErrors(msgs)
		return nil
	}

	spec, ok := access.ResolveMutation(access.Personal, t, nil, a.session.Username())
	if !ok {
		fmt.Fprintln(a.out, "Only personal recipes can be created.")
		return nil
	}
	recipe, err := access.ApplyMutation(ctx, a.client, spec, data)
	if err != nil {
		a.printErrors(api.Messages(err))
		return nil
	}

	fmt.Fprintf(a.out, "Created %q (id %d).\n", recipe.Name, recipe.ID)
	return nil
}

// Update prefills the form from the stored personal recipe and submits the
// edited payload. Blank answers keep the current values.
func (a *App) Update(ctx context.Context, recipeType, id string) error {
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

	fetch := access.ResolveFetch(access.Personal, t, recipeID, a.session.Username())
	current, err := access.FetchRecipe(ctx, a.client, fetch)
	if err != nil {
		a.printErrors(api.Messages(err))
		return nil
	}
	if current == nil {
		fmt.Fprintln(a.out, "Recipe not found.")
		return nil
	}

	data, err := a.recipeForm(t, models.RecipeData{
		Name:         current.Name,
		Category:     current.Category,
		Area:         current.Area,
		DrinkType:    current.DrinkType,
		Glass:        current.Glass,
		Instructions: current.Instructions,
		Thumbnail:    current.Thumbnail,
		Ingredients:  current.Ingredients,
	})
	if err != nil {
		return err
	}
	if msgs := validate.Struct(data); len(msgs) > 0 {
		a.printErrors(msgs)
		return nil
	}

	spec, ok := access.ResolveMutation(access.Personal, t, &recipeID, a.session.Username())
	if !ok {
		fmt.Fprintln(a.out, "Only personal recipes can be updated.")
		return nil
	}
	recipe, err := access.ApplyMutation(ctx, a.client, spec, data)
	if err != nil {
		a.printErrors(api.Messages(err))
		return nil
	}

	fmt.Fprintf(a.out, "Updated %q.\n", recipe.Name)
	return nil
}

// recipeForm gathers the recipe fields interactively. The initial values are
// shown as defaults, so create passes a zero value and update the stored one.
func (a *App) recipeForm(t models.RecipeType, initial models.RecipeData) (models.RecipeData, error) {
	data := initial

	var err error
	if data.Name, err = GetTextWithDefault(a.reader, "Name", initial.Name, a.out); err != nil {
		return data, err
	}
	if data.Category, err = GetTextWithDefault(a.reader, "Category", initial.Category, a.out); err != nil {
		return data, err
	}
	switch t {
	case models.TypeMeals:
		if data.Area, err = GetTextWithDefault(a.reader, "Area", initial.Area, a.out); err != nil {
			return data, err
		}
	case models.TypeDrinks:
		if data.DrinkType, err = GetTextWithDefault(a.reader, "Type (e.g. Alcoholic)", initial.DrinkType, a.out); err != nil {
			return data, err
		}
		if data.Glass, err = GetTextWithDefault(a.reader, "Glass", initial.Glass, a.out); err != nil {
			return data, err
		}
	}
	if data.Thumbnail, err = GetTextWithDefault(a.reader, "Thumbnail URL", initial.Thumbnail, a.out); err != nil {
		return data, err
	}
	if data.Ingredients, err = GetIngredients(a.reader, initial.Ingredients, a.out); err != nil {
		return data, err
	}

	instructions, err := GetMultiline(a.reader, "Instructions (finish with an empty line)", a.out)
	if err != nil {
		return data, err
	}
	if instructions != "" {
		data.Instructions = instructions
	}
	return data, nil
}
