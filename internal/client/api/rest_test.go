package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctabo91/dreamhost-cli/internal/client/models"
	"github.com/ctabo91/dreamhost-cli/internal/logging"
)

// recorded captures the last request the test server saw.
type recorded struct {
	method string
	path   string
	query  string
	auth   string
	body   []byte
}

func newTestClient(t *testing.T, status int, response string) (*RestClient, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.query = r.URL.RawQuery
		rec.auth = r.Header.Get("Authorization")
		rec.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return NewRestClient(srv.URL, 0, logging.Nop()), rec
}

func TestAuthenticate_ReturnsToken(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, `{"token":"tok-123"}`)

	token, err := c.Authenticate(context.Background(), models.Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/auth/token", rec.path)

	var sent models.Credentials
	require.NoError(t, json.Unmarshal(rec.body, &sent))
	assert.Equal(t, "alice", sent.Username)
}

func TestAuthenticate_BadCredentials(t *testing.T) {
	c, _ := newTestClient(t, http.StatusUnauthorized,
		`{"error":{"message":"Invalid username/password","status":401}}`)

	_, err := c.Authenticate(context.Background(), models.Credentials{Username: "alice", Password: "nope"})
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, []string{"Invalid username/password"}, Messages(err))
}

func TestRegister_ValidationErrorList(t *testing.T) {
	c, rec := newTestClient(t, http.StatusBadRequest,
		`{"error":{"message":["username is required","email is not valid"],"status":400}}`)

	_, err := c.Register(context.Background(), models.SignupData{})
	require.Error(t, err)
	assert.Equal(t, "/auth/register", rec.path)
	assert.True(t, IsValidation(err))
	assert.Equal(t, []string{"username is required", "email is not valid"}, Messages(err))
}

func TestSetToken_AddsBearerHeader(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, `{"user":{"username":"alice"}}`)
	c.SetToken("tok-456")

	_, err := c.User(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-456", rec.auth)
	assert.Equal(t, "/users/alice", rec.path)

	// Clearing the token reverts to anonymous requests.
	c.SetToken("")
	_, err = c.User(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, rec.auth)
}

func TestRecipes_FilterAndEnvelope(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK,
		`{"meals":[{"id":1,"name":"Pad Thai"},{"id":2,"name":"Ramen"}]}`)

	recipes, err := c.Recipes(context.Background(), models.TypeMeals, Filter{Name: "noodle", Category: "Asian"})
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "Pad Thai", recipes[0].Name)
	assert.Equal(t, "/meals", rec.path)
	assert.Contains(t, rec.query, "name=noodle")
	assert.Contains(t, rec.query, "category=Asian")
}

func TestRecipes_NoMatchesIsEmptyNotError(t *testing.T) {
	c, _ := newTestClient(t, http.StatusOK, `{"drinks":[]}`)

	recipes, err := c.Recipes(context.Background(), models.TypeDrinks, Filter{Name: "zzz"})
	require.NoError(t, err)
	assert.NotNil(t, recipes)
	assert.Empty(t, recipes)
}

func TestRecipe_DrinkEnvelope(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK,
		`{"drink":{"id":11,"name":"Margarita","category":"Cocktail","type":"Alcoholic","glass":"Coupe"}}`)

	recipe, err := c.Recipe(context.Background(), models.TypeDrinks, 11)
	require.NoError(t, err)
	assert.Equal(t, "/drinks/11", rec.path)
	assert.Equal(t, "Margarita", recipe.Name)
	assert.Equal(t, "Alcoholic", recipe.DrinkType)
	assert.Equal(t, "Coupe", recipe.Glass)
}

func TestRecipe_NotFound(t *testing.T) {
	c, _ := newTestClient(t, http.StatusNotFound,
		`{"error":{"message":"No meal with id: 999","status":404}}`)

	_, err := c.Recipe(context.Background(), models.TypeMeals, 999)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestCategories(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK,
		`{"categories":[{"category":"Dessert","count":12},{"category":"Seafood","count":7}]}`)

	cats, err := c.Categories(context.Background(), models.TypeMeals)
	require.NoError(t, err)
	assert.Equal(t, "/meals/categories", rec.path)
	require.Len(t, cats, 2)
	assert.Equal(t, "Dessert", cats[0].Name)
	assert.Equal(t, int64(12), cats[0].Count)
}

func TestPersonalRecipeRoutes(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK,
		`{"personalRecipe":{"id":5,"name":"Family Curry"}}`)
	ctx := context.Background()

	_, err := c.PersonalRecipe(ctx, "alice", models.TypeMeals, 5)
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/users/alice/meals/personal/5", rec.path)

	_, err = c.CreatePersonalRecipe(ctx, "alice", models.TypeMeals, models.RecipeData{Name: "Family Curry"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/users/alice/meals/personal", rec.path)

	_, err = c.UpdatePersonalRecipe(ctx, "alice", models.TypeMeals, 5, models.RecipeData{Name: "Family Curry"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, rec.method)
	assert.Equal(t, "/users/alice/meals/personal/5", rec.path)
}

func TestFavoriteRoutes(t *testing.T) {
	c, rec := newTestClient(t, http.StatusOK, `{}`)
	ctx := context.Background()

	require.NoError(t, c.AddFavorite(ctx, "alice", models.TypeMeals, 7))
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/users/alice/meals/7/add", rec.path)

	require.NoError(t, c.RemoveFavorite(ctx, "alice", models.TypeDrinks, 3))
	assert.Equal(t, "/users/alice/drinks/3/remove", rec.path)
}

func TestMessages_NonAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // force a connection error

	c := NewRestClient(srv.URL, 0, logging.Nop())
	_, err := c.User(context.Background(), "alice")
	require.Error(t, err)
	msgs := Messages(err)
	require.Len(t, msgs, 1)
	assert.NotEmpty(t, msgs[0])
}

func TestCoerceMessages(t *testing.T) {
	assert.Equal(t, []string{"one"}, coerceMessages(json.RawMessage(`"one"`)))
	assert.Equal(t, []string{"a", "b"}, coerceMessages(json.RawMessage(`["a","b"]`)))
	assert.Nil(t, coerceMessages(json.RawMessage(`42`)))
}
