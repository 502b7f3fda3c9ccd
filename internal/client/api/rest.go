package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/ctabo91/dreamhost-cli/internal/client/models"
	"github.com/ctabo91/dreamhost-cli/internal/logging"
	"github.com/google/uuid"
)

const defaultBaseURL = "http://localhost:3001"

// RestClient is the HTTP/JSON implementation of Client.
type RestClient struct {
	baseURL    string
	httpClient *http.Client
	logger     logging.Logger

	mu    sync.RWMutex
	token string
}

var _ Client = (*RestClient)(nil)

// NewRestClient builds a client for the backend at baseURL. A zero timeout
// means requests are never timed out locally.
func NewRestClient(baseURL string, timeout time.Duration, logger logging.Logger) *RestClient {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	return &RestClient{
		baseURL:    base,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// SetToken attaches the bearer token to all subsequent requests. An empty
// token reverts the client to anonymous requests.
func (c *RestClient) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *RestClient) currentToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// errorEnvelope matches the backend's error body. Message arrives either as
// a single string or as an array of field-level messages.
type errorEnvelope struct {
	Error struct {
		Message json.RawMessage `json:"message"`
		Status  int             `json:"status"`
	} `json:"error"`
}

func coerceMessages(raw json.RawMessage) []string {
	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return many
	}
	var one string
	if err := json.Unmarshal(raw, &one); err == nil && one != "" {
		return []string{one}
	}
	return nil
}

func (c *RestClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + "/" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal %s %s: %w", method, path, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("create %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.currentToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	c.logger.Debug(ctx, "api call", "method", method, "path", path, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope errorEnvelope
		apiErr := &Error{Status: resp.StatusCode}
		if err := json.Unmarshal(data, &envelope); err == nil {
			apiErr.Messages = coerceMessages(envelope.Error.Message)
		}
		c.logger.Debug(ctx, "api error", "path", path, "status", resp.StatusCode, "request_id", requestID)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func (c *RestClient) Authenticate(ctx context.Context, creds models.Credentials) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "auth/token", nil, creds, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *RestClient) Register(ctx context.Context, data models.SignupData) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "auth/register", nil, data, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *RestClient) User(ctx context.Context, username string) (*models.User, error) {
	var out struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "users/"+url.PathEscape(username), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *RestClient) UpdateUser(ctx context.Context, username string, data models.ProfileData) (*models.User, error) {
	var out struct {
		User models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodPatch, "users/"+url.PathEscape(username), nil, data, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// recipesEnvelope covers both universes: the backend keys the list by the
// recipe type requested.
type recipesEnvelope struct {
	Meals  []models.Recipe `json:"meals"`
	Drinks []models.Recipe `json:"drinks"`
}

func (e *recipesEnvelope) list(t models.RecipeType) []models.Recipe {
	if t == models.TypeMeals {
		return e.Meals
	}
	return e.Drinks
}

type recipeEnvelope struct {
	Meal  *models.Recipe `json:"meal"`
	Drink *models.Recipe `json:"drink"`
}

func (e *recipeEnvelope) recipe(t models.RecipeType) *models.Recipe {
	if t == models.TypeMeals {
		return e.Meal
	}
	return e.Drink
}

func (c *RestClient) Recipes(ctx context.Context, t models.RecipeType, filter Filter) ([]models.Recipe, error) {
	query := url.Values{}
	if filter.Name != "" {
		query.Set("name", filter.Name)
	}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}

	var out recipesEnvelope
	if err := c.do(ctx, http.MethodGet, string(t), query, nil, &out); err != nil {
		return nil, err
	}
	recipes := out.list(t)
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	return recipes, nil
}

func (c *RestClient) Recipe(ctx context.Context, t models.RecipeType, id int64) (*models.Recipe, error) {
	var out recipeEnvelope
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", t, id), nil, nil, &out); err != nil {
		return nil, err
	}
	return out.recipe(t), nil
}

func (c *RestClient) Categories(ctx context.Context, t models.RecipeType) ([]models.Category, error) {
	var out struct {
		Categories []models.Category `json:"categories"`
	}
	if err := c.do(ctx, http.MethodGet, string(t)+"/categories", nil, nil, &out); err != nil {
		return nil, err
	}
	if out.Categories == nil {
		out.Categories = []models.Category{}
	}
	return out.Categories, nil
}

func personalPath(username string, t models.RecipeType) string {
	return fmt.Sprintf("users/%s/%s/personal", url.PathEscape(username), t)
}

func (c *RestClient) PersonalRecipes(ctx context.Context, username string, t models.RecipeType) ([]models.Recipe, error) {
	var out struct {
		PersonalRecipes []models.Recipe `json:"personalRecipes"`
	}
	if err := c.do(ctx, http.MethodGet, personalPath(username, t), nil, nil, &out); err != nil {
		return nil, err
	}
	if out.PersonalRecipes == nil {
		out.PersonalRecipes = []models.Recipe{}
	}
	return out.PersonalRecipes, nil
}

func (c *RestClient) PersonalRecipe(ctx context.Context, username string, t models.RecipeType, id int64) (*models.Recipe, error) {
	var out struct {
		PersonalRecipe *models.Recipe `json:"personalRecipe"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", personalPath(username, t), id), nil, nil, &out); err != nil {
		return nil, err
	}
	return out.PersonalRecipe, nil
}

func (c *RestClient) CreatePersonalRecipe(ctx context.Context, username string, t models.RecipeType, data models.RecipeData) (*models.Recipe, error) {
	var out struct {
		PersonalRecipe *models.Recipe `json:"personalRecipe"`
	}
	if err := c.do(ctx, http.MethodPost, personalPath(username, t), nil, data, &out); err != nil {
		return nil, err
	}
	return out.PersonalRecipe, nil
}

func (c *RestClient) UpdatePersonalRecipe(ctx context.Context, username string, t models.RecipeType, id int64, data models.RecipeData) (*models.Recipe, error) {
	var out struct {
		PersonalRecipe *models.Recipe `json:"personalRecipe"`
	}
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("%s/%d", personalPath(username, t), id), nil, data, &out); err != nil {
		return nil, err
	}
	return out.PersonalRecipe, nil
}

func favoritePath(username string, t models.RecipeType, id int64, action string) string {
	return fmt.Sprintf("users/%s/%s/%d/%s", url.PathEscape(username), t, id, action)
}

func (c *RestClient) AddFavorite(ctx context.Context, username string, t models.RecipeType, id int64) error {
	return c.do(ctx, http.MethodPost, favoritePath(username, t, id, "add"), nil, struct{}{}, nil)
}

func (c *RestClient) RemoveFavorite(ctx context.Context, username string, t models.RecipeType, id int64) error {
	return c.do(ctx, http.MethodPost, favoritePath(username, t, id, "remove"), nil, struct{}{}, nil)
}
