package validate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ctabo91/dreamhost-cli/internal/client/models"
)

func TestStruct_ValidSignup(t *testing.T) {
	msgs := Struct(models.SignupData{
		Username:  "alice",
		Password:  "hunter2",
		FirstName: "Alice",
		LastName:  "Liddell",
		Email:     "alice@example.com",
	})
	require.Nil(t, msgs)
}

func TestStruct_CollectsAllFailures(t *testing.T) {
	msgs := Struct(models.SignupData{
		Username: "alice",
		Password: "pw", // too short
		Email:    "not-an-email",
	})
	require.Contains(t, msgs, "password must be at least 5 characters")
	require.Contains(t, msgs, "firstName is required")
	require.Contains(t, msgs, "lastName is required")
	require.Contains(t, msgs, "email is not a valid email address")
}

func TestStruct_UsesWireFieldNames(t *testing.T) {
	msgs := Struct(models.ProfileData{LastName: "L", Email: "a@x.io", Password: "pw"})
	require.Equal(t, []string{"firstName is required"}, msgs)
}

func TestStruct_RecipeData(t *testing.T) {
	msgs := Struct(models.RecipeData{
		Name:         "Margarita",
		Category:     "Cocktail",
		Instructions: "Shake with ice.",
		Ingredients:  []string{"Tequila", "Lime juice"},
	})
	require.Nil(t, msgs)

	msgs = Struct(models.RecipeData{
		Name:      "Margarita",
		Category:  "Cocktail",
		Thumbnail: "not a url",
	})
	require.Contains(t, msgs, "instructions is required")
	require.Contains(t, msgs, "ingredients is required")
	require.Contains(t, msgs, "thumbnail is not a valid URL")
}
