package cli

import (
	"context"
	"fmt"

	"github.com/ctabo91/dreamhost-cli/internal/client/api"
	"github.com/ctabo91/dreamhost-cli/internal/client/models"
	"github.com/ctabo91/dreamhost-cli/internal/client/validate"
)

// Profile prints the logged-in user's record.
func (a *App) Profile(ctx context.Context) error {
	user := a.session.CurrentUser()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	fmt.Fprintf(a.out, "Username:   %s\n", user.Username)
	fmt.Fprintf(a.out, "Name:       %s %s\n", user.FirstName, user.LastName)
	fmt.Fprintf(a.out, "Email:      %s\n", user.Email)
	fmt.Fprintf(a.out, "Favorites:  %d meals, %d drinks\n",
		len(a.session.FavMealIDs()), len(a.session.FavDrinkIDs()))
	return nil
}

// EditProfile walks the profile form. Blank answers keep current values; the
// password is re-entered to confirm the change, as on the web profile page.
func (a *App) EditProfile(ctx context.Context) error {
	user := a.session.CurrentUser()
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	data := models.ProfileData{}
	var err error
	if data.FirstName, err = GetTextWithDefault(a.reader, "First name", user.FirstName, a.out); err != nil {
		return err
	}
	if data.LastName, err = GetTextWithDefault(a.reader, "Last name", user.LastName, a.out); err != nil {
		return err
	}
	if data.Email, err = GetTextWithDefault(a.reader, "Email", user.Email, a.out); err != nil {
		return err
	}
	if data.Password, err = getPassword(a.out); err != nil {
		return err
	}

	if msgs := validate.Struct(data); msgs != nil {
		a.printErrors(msgs)
		return nil
	}

	if err := a.session.UpdateProfile(ctx, data); err != nil {
		a.printErrors(api.Messages(err))
		return nil
	}

	fmt.Fprintln(a.out, "Updated successfully.")
	return nil
}
