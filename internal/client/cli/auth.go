package cli

import (
	"context"
	"fmt"

	"github.com/ctabo91/dreamhost-cli/internal/client/api"
	"github.com/ctabo91/dreamhost-cli/internal/client/models"
	"github.com/ctabo91/dreamhost-cli/internal/client/validate"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and establishes a session. Remote auth
// failures are rendered beneath the form, not returned; only I/O errors
// reach the caller.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	creds := models.Credentials{Username: username, Password: password}
	if msgs := validate.Struct(creds); msgs != nil {
		a.printErrors(msgs)
		return nil
	}

	if err := a.session.Login(ctx, creds); err != nil {
		a.printErrors(api.Messages(err))
		return nil
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", a.session.Username())
	return nil
}

// Signup prompts for registration data and creates an account. A successful
// signup logs the user straight in.
func (a *App) Signup(ctx context.Context) error {
	data := models.SignupData{}

	var err error
	if data.Username, err = getSimpleText(a.reader, "Choose a username", a.out); err != nil {
		return err
	}
	if data.FirstName, err = getSimpleText(a.reader, "First name", a.out); err != nil {
		return err
	}
	if data.LastName, err = getSimpleText(a.reader, "Last name", a.out); err != nil {
		return err
	}
	if data.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if data.Password, err = getPassword(a.out); err != nil {
		return err
	}

	if msgs := validate.Struct(data); msgs != nil {
		a.printErrors(msgs)
		return nil
	}

	if err := a.session.Signup(ctx, data); err != nil {
		a.printErrors(api.Messages(err))
		return nil
	}

	fmt.Fprintf(a.out, "Welcome to DreamHost, %s!\n", a.session.Username())
	return nil
}

// Logout clears the session. It cannot fail.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
