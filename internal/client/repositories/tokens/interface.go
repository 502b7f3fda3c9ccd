// Package tokens persists the one piece of client-local state that survives
// restarts: the session token, kept under a fixed key in a local sqlite
// database and cleared on logout.
package tokens

import "context"

type Repository interface {
	// Token returns the persisted session token, or "" when logged out.
	Token(ctx context.Context) (string, error)
	// Save stores the token, replacing any previous one.
	Save(ctx context.Context, token string) error
	// Clear removes all persisted session state.
	Clear(ctx context.Context) error
}
