package cli

import (
	"errors"

	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/common"
)

// userMessage maps service errors to the text shown at the prompt.
func userMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrValidation):
		return err.Error()
	case errors.Is(err, common.ErrInvalidCredentials):
		return "Invalid username/email or password."
	case errors.Is(err, common.ErrUsernameTaken):
		return "Username already taken."
	case errors.Is(err, common.ErrEmailTaken):
		return "Email already registered."
	case errors.Is(err, common.ErrNotLoggedIn), errors.Is(err, common.ErrNotLoaded):
		return "Please login first."
	case errors.Is(err, common.ErrNotFound):
		return "Not found: " + err.Error()
	default:
		return "Error: " + err.Error()
	}
}
