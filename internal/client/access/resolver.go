// Package access maps an access mode and recipe type onto the backend
// operation family a view must call. Global recipes belong to the shared
// catalog and are read-only; personal recipes belong to one user and are
// fully mutable by their owner. The resolver is pure routing logic: no
// state, no failure modes.
package access

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ctabo91/dreamhost-cli/internal/client/models"
)

// Mode selects the recipe universe a view is working against.
type Mode string

const (
	Global   Mode = "global"
	Personal Mode = "personal"
)

var ErrUnknownMode = errors.New("unknown access mode")

// ParseMode converts route-style input ("global", "personal") into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Global):
		return Global, nil
	case string(Personal):
		return Personal, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Op names one backend operation family.
type Op string

const (
	OpCatalogRecipe  Op = "catalog-recipe"
	OpPersonalRecipe Op = "personal-recipe"
	OpCreatePersonal Op = "create-personal-recipe"
	OpUpdatePersonal Op = "update-personal-recipe"
	OpFavorite       Op = "favorite-catalog-recipe"
)

// FetchSpec identifies the read operation for a single recipe. Username is
// populated only for personal access; catalog reads carry no identity.
type FetchSpec struct {
	Op       Op
	Type     models.RecipeType
	ID       int64
	Username string
}

// ResolveFetch picks the fetch operation for the given access mode.
func ResolveFetch(mode Mode, t models.RecipeType, id int64, username string) FetchSpec {
	if mode == Personal {
		return FetchSpec{Op: OpPersonalRecipe, Type: t, ID: id, Username: username}
	}
	return FetchSpec{Op: OpCatalogRecipe, Type: t, ID: id}
}

// MutationSpec identifies a create or update of a personal recipe.
type MutationSpec struct {
	Op       Op
	Type     models.RecipeType
	ID       int64
	Username string
}

// ResolveMutation picks the write operation: a nil id means create, a
// present id means update. Only personal access supports mutations; for
// global mode ok is false and the caller must refuse.
func ResolveMutation(mode Mode, t models.RecipeType, id *int64, username string) (MutationSpec, bool) {
	if mode != Personal {
		return MutationSpec{}, false
	}
	if id == nil {
		return MutationSpec{Op: OpCreatePersonal, Type: t, Username: username}, true
	}
	return MutationSpec{Op: OpUpdatePersonal, Type: t, ID: *id, Username: username}, true
}

// FavoriteSpec identifies the catalog recipe a favorite toggle targets.
type FavoriteSpec struct {
	Op   Op
	Type models.RecipeType
	ID   int64
}

// ResolveFavoriteTarget always targets the global universe; personal recipes
// are never favoritable.
func ResolveFavoriteTarget(t models.RecipeType, id int64) FavoriteSpec {
	return FavoriteSpec{Op: OpFavorite, Type: t, ID: id}
}
