package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/models"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/services"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for username, email, password and confirmation, creates
// the account and starts a session for it.
//
// Both password slices are wiped before returning.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	profile, err := a.accounts.Register(ctx, services.RegisterRequest{
		Username:        username,
		Email:           email,
		Password:        password,
		ConfirmPassword: confirm,
	})
	if err != nil {
		return err
	}

	a.printf("Account created. Welcome, %s!\n", profile.DisplayName)
	return a.begin(ctx, profile)
}

// Login prompts for a username or email and a password, then loads the
// user's data.
//
// The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Enter username or email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	profile, err := a.accounts.Login(ctx, identifier, password)
	if err != nil {
		return err
	}

	a.printf("Welcome back, %s!\n", profile.DisplayName)
	return a.begin(ctx, profile)
}

// Logout stops write-back and clears the session pointer. Changes made
// within the last debounce window are not written unless flush-on-logout
// is configured.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sync.End(ctx); err != nil {
		a.log.Error(ctx, "error ending session", "error", err)
	}
	if err := a.accounts.Logout(ctx); err != nil {
		return err
	}
	a.printf("Logged out.\n")
	return nil
}

// Restore starts a session for the user recorded in the session pointer.
// It is also the retry path after a failed load.
func (a *App) Restore(ctx context.Context) error {
	profile, err := a.accounts.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if profile == nil {
		return nil
	}
	if u := a.sync.User(); u != nil && u.ID == profile.ID {
		return nil
	}
	a.printf("Signed in as %s.\n", profile.Username)
	return a.begin(ctx, profile)
}

func (a *App) WhoAmI(ctx context.Context) error {
	u := a.sync.User()
	if u == nil {
		return common.ErrNotLoggedIn
	}
	a.printf("%s (%s)\n  email:  %s\n  avatar: %s\n", u.DisplayName, u.Username, u.Email, u.PhotoURL)

	st, err := a.state()
	if err != nil {
		return err
	}
	meta := st.Metadata()
	if !meta.UpdatedAt.IsZero() {
		a.printf("  loaded data saved %s\n", humanize.Time(meta.UpdatedAt))
	}
	if st.Dirty() {
		a.printf("  unsaved changes pending\n")
	}
	return nil
}

func (a *App) begin(ctx context.Context, profile *models.Profile) error {
	st, err := a.sync.Begin(ctx, profile)
	if err != nil {
		if errors.Is(err, common.ErrNotLoggedIn) {
			return err
		}
		return fmt.Errorf("could not load your data (type 'reload' to retry): %w", err)
	}
	return a.renderView(ctx, st.Metadata().CurrentView)
}
