package cli

import (
	"fmt"
	"strconv"

	"github.com/ctabo91/dreamhost-cli/internal/client/access"
	"github.com/ctabo91/dreamhost-cli/internal/client/models"
)

func (a *App) renderRecipeList(recipes []models.Recipe, mode access.Mode, t models.RecipeType) {
	if len(recipes) == 0 {
		fmt.Fprintln(a.out, "Sorry, no results were found!")
		return
	}

	for _, r := range recipes {
		marker := " "
		if mode == access.Global && a.session.Ready() &&
			a.session.HasFavorited(strconv.FormatInt(r.ID, 10), t) {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %6d  %s\n", marker, r.ID, r.Name)
	}
}

func (a *App) renderRecipeDetails(r *models.Recipe, mode access.Mode, t models.RecipeType) {
	fmt.Fprintf(a.out, "\n%s\n", r.Name)

	switch t {
	case models.TypeMeals:
		fmt.Fprintf(a.out, "%s %s Dish\n", r.Area, r.Category)
	case models.TypeDrinks:
		line := r.Category
		if r.DrinkType != "" {
			line += " / " + r.DrinkType
		}
		fmt.Fprintln(a.out, line)
		if r.Glass != "" {
			fmt.Fprintf(a.out, "Serve in a %s\n", r.Glass)
		}
	}

	if mode == access.Global && a.session.Ready() {
		if a.session.HasFavorited(strconv.FormatInt(r.ID, 10), t) {
			fmt.Fprintln(a.out, "[favorited]")
		}
	}

	if len(r.Ingredients) > 0 {
		fmt.Fprintln(a.out, "\nIngredients:")
		for _, ing := range r.Ingredients {
			fmt.Fprintf(a.out, "  - %s\n", ing)
		}
	}

	steps := models.SplitInstructions(r.Instructions)
	if len(steps) > 0 {
		fmt.Fprintln(a.out, "\nInstructions:")
		for i, s := range steps {
			fmt.Fprintf(a.out, "  %d. %s\n", i+1, s)
		}
	}

	if mode == access.Personal {
		fmt.Fprintf(a.out, "\nEdit with: update %s %d\n", t, r.ID)
	}
	fmt.Fprintln(a.out)
}
