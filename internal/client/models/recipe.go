// Package models defines the recipe-domain types shared by the DreamHost
// client layers: users, recipes, categories, and the form payloads sent to
// the backend.
package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// RecipeType selects one of the two recipe universes the backend serves.
type RecipeType string

const (
	TypeMeals  RecipeType = "meals"
	TypeDrinks RecipeType = "drinks"
)

var ErrUnknownRecipeType = errors.New("unknown recipe type")

// ParseRecipeType converts user input ("meals", "drinks", case-insensitive)
// into a RecipeType.
func ParseRecipeType(s string) (RecipeType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(TypeMeals):
		return TypeMeals, nil
	case string(TypeDrinks):
		return TypeDrinks, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRecipeType, s)
}

// ParseRecipeID normalizes a recipe ID supplied as text (REPL arguments and
// route-style parameters are strings) to its numeric form.
func ParseRecipeID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid recipe id %q", s)
	}
	return id, nil
}

// Recipe is a single meal or drink. Area is populated for meals only;
// DrinkType and Glass for drinks only. A recipe belongs to exactly one
// universe (global catalog or one user's personal library) and never moves
// between them.
type Recipe struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Area         string   `json:"area,omitempty"`
	DrinkType    string   `json:"type,omitempty"`
	Glass        string   `json:"glass,omitempty"`
	Instructions string   `json:"instructions"`
	Thumbnail    string   `json:"thumbnail,omitempty"`
	Ingredients  []string `json:"ingredients"`
}

// Category is a catalog category together with the number of recipes in it.
type Category struct {
	Name  string `json:"category"`
	Count int64  `json:"count"`
}
