package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	List(ctx context.Context, recipeType string, search []string) error
	Categories(ctx context.Context, recipeType string) error
	ByCategory(ctx context.Context, recipeType, category string) error
	Show(ctx context.Context, mode, recipeType, id string) error
	ToggleFav(ctx context.Context, recipeType, id string) error
	Favorites(ctx context.Context) error
	Mine(ctx context.Context, recipeType string) error
	Create(ctx context.Context, recipeType string) error
	Update(ctx context.Context, recipeType, id string) error
}

const loggedInHelp = `Available commands:
  list <meals|drinks> [search words]     browse the catalog
  categories <meals|drinks>              list catalog categories
  category <meals|drinks> <name>         browse one category
  show <global|personal> <meals|drinks> <id>
  fav <meals|drinks> <id>                toggle a favorite
  favs                                   list your favorites
  mine <meals|drinks>                    your personal recipes
  create <meals|drinks>                  add a personal recipe
  update <meals|drinks> <id>             edit a personal recipe
  profile | edit-profile | logout | exit`

const loggedOutHelp = "Available commands: login, signup, exit"

// runREPL starts the DreamHost read–eval–print loop.
//
// It reads a line from the scanner, parses the first token as the command,
// and dispatches to methods on 'a'. Unknown commands are reported back to
// the user. Commands that need a session are refused while logged out, the
// way the web client redirects guarded routes to the login page. The loop
// exits on scanner EOF or when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// and log their own failures. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("dh> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(loggedInHelp)
			} else {
				printlnFn(loggedOutHelp)
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if !a.isLoggedIn() {
				printlnFn("Please log in first (login) or create an account (signup).")
				continue
			}
			dispatchLoggedIn(ctx, a, cmd, args)
		}
	}
}

func dispatchLoggedIn(ctx context.Context, a execIface, cmd string, args []string) {
	switch cmd {
	case "logout":
		_ = a.Logout(ctx)

	case "profile":
		_ = a.Profile(ctx)

	case "edit-profile":
		_ = a.EditProfile(ctx)

	case "l", "list":
		if len(args) < 1 {
			printlnFn("Usage: list <meals|drinks> [search words]")
			return
		}
		_ = a.List(ctx, args[0], args[1:])

	case "categories":
		if len(args) != 1 {
			printlnFn("Usage: categories <meals|drinks>")
			return
		}
		_ = a.Categories(ctx, args[0])

	case "category":
		if len(args) < 2 {
			printlnFn("Usage: category <meals|drinks> <name>")
			return
		}
		_ = a.ByCategory(ctx, args[0], strings.Join(args[1:], " "))

	case "show":
		if len(args) != 3 {
			printlnFn("Usage: show <global|personal> <meals|drinks> <id>")
			return
		}
		_ = a.Show(ctx, args[0], args[1], args[2])

	case "fav":
		if len(args) != 2 {
			printlnFn("Usage: fav <meals|drinks> <id>")
			return
		}
		_ = a.ToggleFav(ctx, args[0], args[1])

	case "favs":
		_ = a.Favorites(ctx)

	case "mine":
		if len(args) != 1 {
			printlnFn("Usage: mine <meals|drinks>")
			return
		}
		_ = a.Mine(ctx, args[0])

	case "create":
		if len(args) != 1 {
			printlnFn("Usage: create <meals|drinks>")
			return
		}
		_ = a.Create(ctx, args[0])

	case "update":
		if len(args) != 2 {
			printlnFn("Usage: update <meals|drinks> <id>")
			return
		}
		_ = a.Update(ctx, args[0], args[1])

	default:
		printlnFn("Unknown command:", cmd)
	}
}
