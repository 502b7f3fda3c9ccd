package access

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ctabo91/dreamhost-cli/internal/client/models"
)

func TestParseMode(t *testing.T) {
	m, err := ParseMode(" Global ")
	require.NoError(t, err)
	require.Equal(t, Global, m)

	m, err = ParseMode("personal")
	require.NoError(t, err)
	require.Equal(t, Personal, m)

	_, err = ParseMode("shared")
	require.ErrorIs(t, err, ErrUnknownMode)
}

func TestResolveFetch_PersonalScopedToUser(t *testing.T) {
	spec := ResolveFetch(Personal, models.TypeDrinks, 3, "alice")
	require.Equal(t, FetchSpec{
		Op:       OpPersonalRecipe,
		Type:     models.TypeDrinks,
		ID:       3,
		Username: "alice",
	}, spec)
}

func TestResolveFetch_GlobalCarriesNoIdentity(t *testing.T) {
	spec := ResolveFetch(Global, models.TypeDrinks, 3, "alice")
	require.Equal(t, OpCatalogRecipe, spec.Op)
	require.Equal(t, models.TypeDrinks, spec.Type)
	require.Equal(t, int64(3), spec.ID)
	require.Empty(t, spec.Username, "catalog reads must not reference the user")
}

func TestResolveMutation_CreateWhenIDAbsent(t *testing.T) {
	spec, ok := ResolveMutation(Personal, models.TypeMeals, nil, "alice")
	require.True(t, ok)
	require.Equal(t, OpCreatePersonal, spec.Op)
	require.Equal(t, "alice", spec.Username)
}

func TestResolveMutation_UpdateWhenIDPresent(t *testing.T) {
	id := int64(9)
	spec, ok := ResolveMutation(Personal, models.TypeMeals, &id, "alice")
	require.True(t, ok)
	require.Equal(t, OpUpdatePersonal, spec.Op)
	require.Equal(t, int64(9), spec.ID)
}

func TestResolveMutation_GlobalRefused(t *testing.T) {
	id := int64(9)
	_, ok := ResolveMutation(Global, models.TypeMeals, &id, "alice")
	require.False(t, ok, "global recipes are read-only")

	_, ok = ResolveMutation(Global, models.TypeMeals, nil, "alice")
	require.False(t, ok)
}

func TestResolveFavoriteTarget_AlwaysGlobal(t *testing.T) {
	spec := ResolveFavoriteTarget(models.TypeDrinks, 11)
	require.Equal(t, FavoriteSpec{Op: OpFavorite, Type: models.TypeDrinks, ID: 11}, spec)
}
