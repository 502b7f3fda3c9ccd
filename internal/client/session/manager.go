// Package session owns the client's authoritative view of who is logged in
// and what they have favorited, kept consistent with the backend across
// login, signup, logout and favorite toggles.
package session

import (
	"context"
	"sort"
	"sync"

	"github.com/ctabo91/dreamhost-cli/internal/client/api"
	"github.com/ctabo91/dreamhost-cli/internal/client/models"
	"github.com/ctabo91/dreamhost-cli/internal/client/repositories/tokens"
	"github.com/ctabo91/dreamhost-cli/internal/logging"
)

// Manager is the session state manager. It is an explicit, constructed
// object: views hold a reference and subscribe for change notifications
// rather than reading ambient globals.
//
// State rules:
//   - currentUser is replaced wholesale on login/logout/profile update,
//     never patched field by field.
//   - The favorite ID sets are the sole source of truth for membership
//     queries and are reseeded from the fetched user record on every
//     session resolution.
//   - Ready() is false only while a resolution pass is in flight; callers
//     must not render favorite-dependent state until it reports true.
type Manager struct {
	client api.Client
	store  tokens.Repository
	logger logging.Logger

	mu          sync.RWMutex
	token       string
	currentUser *models.User
	favMealIDs  map[int64]struct{}
	favDrinkIDs map[int64]struct{}
	ready       bool

	subMu     sync.Mutex
	subs      map[int]func()
	nextSubID int
}

func NewManager(client api.Client, store tokens.Repository, logger logging.Logger) *Manager {
	return &Manager{
		client:      client,
		store:       store,
		logger:      logger,
		favMealIDs:  make(map[int64]struct{}),
		favDrinkIDs: make(map[int64]struct{}),
		subs:        make(map[int]func()),
	}
}

// Subscribe registers fn to run after every state change. The returned
// function unsubscribes.
func (m *Manager) Subscribe(fn func()) func() {
	m.subMu.Lock()
	id := m.nextSubID
	m.nextSubID++
	m.subs[id] = fn
	m.subMu.Unlock()

	return func() {
		m.subMu.Lock()
		delete(m.subs, id)
		m.subMu.Unlock()
	}
}

func (m *Manager) notify() {
	m.subMu.Lock()
	fns := make([]func(), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.subMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Restore loads the persisted token and resolves the session from it.
// Run once at process start, before any favorite-dependent rendering.
func (m *Manager) Restore(ctx context.Context) {
	token, err := m.store.Token(ctx)
	if err != nil {
		m.logger.Error(ctx, "failed to load persisted token", "error", err)
		token = ""
	}
	m.setToken(ctx, token)
}

// Login authenticates against the backend. On success the returned token is
// persisted and the session resolved; on failure the error is returned
// unchanged and all prior state is left untouched.
func (m *Manager) Login(ctx context.Context, creds models.Credentials) error {
	token, err := m.client.Authenticate(ctx, creds)
	if err != nil {
		return err
	}
	m.establish(ctx, token)
	return nil
}

// Signup registers a new account. A successful signup establishes a session
// exactly like Login; no separate login step is required.
func (m *Manager) Signup(ctx context.Context, data models.SignupData) error {
	token, err := m.client.Register(ctx, data)
	if err != nil {
		return err
	}
	m.establish(ctx, token)
	return nil
}

func (m *Manager) establish(ctx context.Context, token string) {
	if err := m.store.Save(ctx, token); err != nil {
		// The in-memory session still works; it just won't survive a restart.
		m.logger.Error(ctx, "failed to persist token", "error", err)
	}
	m.setToken(ctx, token)
}

// Logout clears the token and all session state. It never fails and never
// contacts the backend; calling it while already logged out is a no-op.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.logger.Error(ctx, "failed to clear persisted token", "error", err)
	}
	m.setToken(ctx, "")
}

// setToken installs a new token value and triggers a resolution pass.
// Every token change, including to empty, flows through here.
func (m *Manager) setToken(ctx context.Context, token string) {
	m.mu.Lock()
	m.token = token
	m.ready = false
	m.mu.Unlock()

	m.client.SetToken(token)
	m.resolveSession(ctx)
}

// resolveSession turns the current token into a populated currentUser and
// reseeded favorite sets. It never surfaces an error: any decode or fetch
// failure degrades to the logged-out view. Readiness is flagged on exit no
// matter what happened.
func (m *Manager) resolveSession(ctx context.Context) {
	defer func() {
		m.mu.Lock()
		m.ready = true
		m.mu.Unlock()
		m.notify()
	}()

	m.mu.RLock()
	token := m.token
	m.mu.RUnlock()

	if token == "" {
		m.mu.Lock()
		m.currentUser = nil
		m.favMealIDs = make(map[int64]struct{})
		m.favDrinkIDs = make(map[int64]struct{})
		m.mu.Unlock()
		return
	}

	username, err := usernameFromToken(token)
	if err != nil {
		m.logger.Error(ctx, "cannot decode session token", "error", err)
		m.setLoggedOutUser()
		return
	}

	user, err := m.client.User(ctx, username)
	if err != nil {
		m.logger.Error(ctx, "problem loading user info", "username", username, "error", err)
		m.setLoggedOutUser()
		return
	}

	meals := make(map[int64]struct{}, len(user.FavMeals))
	for _, id := range user.FavMeals {
		meals[id] = struct{}{}
	}
	drinks := make(map[int64]struct{}, len(user.FavDrinks))
	for _, id := range user.FavDrinks {
		drinks[id] = struct{}{}
	}

	m.mu.Lock()
	m.currentUser = user
	m.favMealIDs = meals
	m.favDrinkIDs = drinks
	m.mu.Unlock()

	m.logger.Info(ctx, "session resolved", "username", user.Username,
		"fav_meals", len(meals), "fav_drinks", len(drinks))
}

func (m *Manager) setLoggedOutUser() {
	m.mu.Lock()
	m.currentUser = nil
	m.mu.Unlock()
}

// HasFavorited reports whether the recipe identified by the textual id is in
// the favorite set for the given type. IDs are normalized to numeric form;
// unparseable ids are simply not favorites.
func (m *Manager) HasFavorited(id string, t models.RecipeType) bool {
	n, err := models.ParseRecipeID(id)
	if err != nil {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.favSet(t)[n]
	return ok
}

// favSet must be called with mu held.
func (m *Manager) favSet(t models.RecipeType) map[int64]struct{} {
	if t == models.TypeMeals {
		return m.favMealIDs
	}
	return m.favDrinkIDs
}

// ToggleFavorite flips the favorite state of a global recipe. The remote
// add/remove call matching the current membership is issued first; the local
// set is mutated only after the backend confirms. Failures are logged and
// absorbed, leaving the local set consistent with what actually happened
// remotely. Concurrent toggles of the same id are not deduplicated.
func (m *Manager) ToggleFavorite(ctx context.Context, id string, t models.RecipeType) {
	n, err := models.ParseRecipeID(id)
	if err != nil {
		m.logger.Warn(ctx, "ignoring favorite toggle for bad id", "id", id)
		return
	}

	m.mu.RLock()
	user := m.currentUser
	_, has := m.favSet(t)[n]
	m.mu.RUnlock()

	if user == nil {
		m.logger.Warn(ctx, "favorite toggle while logged out", "id", n, "type", t)
		return
	}

	if has {
		err = m.client.RemoveFavorite(ctx, user.Username, t, n)
	} else {
		err = m.client.AddFavorite(ctx, user.Username, t, n)
	}
	if err != nil {
		m.logger.Error(ctx, "error favoriting/unfavoriting recipe",
			"id", n, "type", t, "error", err)
		return
	}

	m.mu.Lock()
	if has {
		delete(m.favSet(t), n)
	} else {
		m.favSet(t)[n] = struct{}{}
	}
	m.mu.Unlock()
	m.notify()
}

// UpdateProfile submits profile changes and, on success, replaces the
// current user record wholesale with the backend's response. Validation
// failures are returned to the caller for the form to render.
func (m *Manager) UpdateProfile(ctx context.Context, data models.ProfileData) error {
	m.mu.RLock()
	user := m.currentUser
	m.mu.RUnlock()
	if user == nil {
		return &api.Error{Status: 401, Messages: []string{"You must be logged in to update your profile"}}
	}

	updated, err := m.client.UpdateUser(ctx, user.Username, data)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.currentUser = updated
	m.mu.Unlock()
	m.notify()
	return nil
}

// Ready reports whether the initial (or most recent) session resolution has
// completed. Views render a neutral loading state while false.
func (m *Manager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ready
}

// CurrentUser returns a copy of the logged-in user record, or nil.
func (m *Manager) CurrentUser() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.currentUser == nil {
		return nil
	}
	u := *m.currentUser
	return &u
}

// Username returns the logged-in username, or "" when logged out.
func (m *Manager) Username() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.currentUser == nil {
		return ""
	}
	return m.currentUser.Username
}

// FavMealIDs returns the favorited meal IDs in ascending order.
func (m *Manager) FavMealIDs() []int64 {
	return m.favIDs(models.TypeMeals)
}

// FavDrinkIDs returns the favorited drink IDs in ascending order.
func (m *Manager) FavDrinkIDs() []int64 {
	return m.favIDs(models.TypeDrinks)
}

func (m *Manager) favIDs(t models.RecipeType) []int64 {
	m.mu.RLock()
	set := m.favSet(t)
	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	m.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
