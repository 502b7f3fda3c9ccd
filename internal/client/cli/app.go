package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ctabo91/dreamhost-cli/internal/client/api"
	"github.com/ctabo91/dreamhost-cli/internal/client/config"
	"github.com/ctabo91/dreamhost-cli/internal/client/repositories/tokens"
	"github.com/ctabo91/dreamhost-cli/internal/client/session"
	"github.com/ctabo91/dreamhost-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the DreamHost CLI together: configuration, the REST gateway,
// the session manager, and the terminal I/O the command handlers share.
type App struct {
	config  *config.Config
	client  api.Client
	session *session.Manager
	logger  logging.Logger

	reader *bufio.Reader
	out    io.Writer

	status string
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := tokens.Open(ctx, c.StateFile)
	if err != nil {
		return nil, fmt.Errorf("error initializing state database: %w", err)
	}

	apiClient := api.NewRestClient(c.BaseURL, c.RequestTimeout, logger)
	sess := session.NewManager(apiClient, tokens.NewSQLiteRepository(db), logger)

	app := &App{
		config:  c,
		client:  apiClient,
		session: sess,
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
	// Keep the prompt status current without recomputing it on every read.
	sess.Subscribe(app.refreshStatus)
	return app, nil
}

// Run restores any persisted session and enters the REPL. It returns when
// the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	a.session.Restore(ctx)
	fmt.Fprintln(a.out, "Welcome to DreamHost CLI (type 'help' for commands)")
	// The command scanner and the form reader buffer os.Stdin independently;
	// input must arrive interactively, one line per prompt. Piping several
	// lines at once can let the scanner swallow lines a form expects.
	runREPL(ctx, a, func() string { return a.status }, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.CurrentUser() != nil
}

func (a *App) refreshStatus() {
	if !a.session.Ready() {
		a.status = "(loading)"
		return
	}
	if username := a.session.Username(); username != "" {
		a.status = "(" + username + ")"
		return
	}
	a.status = ""
}

// printErrors renders a message list beneath the command that produced it,
// the way the web client's alert banner does.
func (a *App) printErrors(msgs []string) {
	for _, msg := range msgs {
		fmt.Fprintf(a.out, "  ! %s\n", msg)
	}
}
