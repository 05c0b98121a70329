// Package services contains the tracker's application services. This file
// implements AccountService: local registration, login, logout and the
// persisted session pointer.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/models"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/repositories/repomanager"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/repositories/settings"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/common"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/cryptox"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/dbx"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/logging"
)

// SessionKey is the settings key holding the signed-in user's profile.
const SessionKey = "session.current_user"

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// User-facing validation messages.
var (
	ErrFieldsRequired      = common.ValidationError("All fields are required.")
	ErrInvalidEmail        = common.ValidationError("Invalid email format.")
	ErrPasswordTooShort    = common.ValidationError("Password must be at least 6 characters.")
	ErrPasswordMismatch    = common.ValidationError("Passwords do not match.")
	ErrLoginFieldsRequired = common.ValidationError("Please fill in all fields.")
)

// RegisterRequest carries the registration form.
type RegisterRequest struct {
	Username        string
	Email           string
	Password        []byte
	ConfirmPassword []byte
}

// AccountService defines the local account operations.
//
// Contract:
//   - Register: validate the form, reject taken usernames/emails, store the
//     user and sign them in.
//   - Login: match username or email case-insensitively and check the
//     password; any mismatch yields common.ErrInvalidCredentials.
//   - Logout: clear the session pointer.
//   - CurrentUser: the signed-in profile, or nil.
//   - SeedDefaultUsers: create the demo accounts that do not exist yet.
type AccountService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.Profile, error)
	Login(ctx context.Context, identifier string, password []byte) (*models.Profile, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.Profile, error)
	SeedDefaultUsers(ctx context.Context) error
}

// DefaultUser describes a demo account created by SeedDefaultUsers.
type DefaultUser struct {
	ID          string
	Username    string
	Email       string
	DisplayName string
	PhotoURL    string
	Password    string
}

// DefaultUsers are seeded when the demo account option is enabled.
var DefaultUsers = []DefaultUser{
	{
		ID:          "default-user-1",
		Username:    "aspirant",
		Email:       "aspirant@cafinal.com",
		DisplayName: "Aspirant CA",
		PhotoURL:    models.AvatarURL("CA_Aspirant"),
		Password:    "123456",
	},
}

type accountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
	newID       func() string
	now         func() time.Time
}

// NewAccountService constructs an AccountService over the local database.
func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger) AccountService {
	return &accountService{
		db:          db,
		repomanager: m,
		log:         log.With("component", "accounts"),
		newID:       uuid.NewString,
		now:         time.Now,
	}
}

func (s *accountService) Register(ctx context.Context, req RegisterRequest) (*models.Profile, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)
	if err := s.ensureFree(ctx, repo.FindByIdentifier, req.Username, common.ErrUsernameTaken); err != nil {
		return nil, err
	}
	if err := s.ensureFree(ctx, repo.FindByIdentifier, req.Email, common.ErrEmailTaken); err != nil {
		return nil, err
	}

	salt, verifier := cryptox.HashPassword(req.Password)
	user := &models.User{
		ID:          s.newID(),
		Username:    req.Username,
		Email:       req.Email,
		DisplayName: req.Username,
		PhotoURL:    models.AvatarURL(req.Username),
		Salt:        salt,
		Verifier:    verifier,
		CreatedAt:   s.now(),
	}

	profile := user.Profile()
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Users(tx).Put(ctx, user); err != nil {
			return err
		}
		return settings.SetJSON(ctx, s.repomanager.Settings(tx), SessionKey, profile)
	})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.log.Info(ctx, "user registered", "user_id", user.ID, "username", user.Username)
	return profile, nil
}

func (s *accountService) Login(ctx context.Context, identifier string, password []byte) (*models.Profile, error) {
	if identifier == "" || len(password) == 0 {
		return nil, ErrLoginFieldsRequired
	}

	user, err := s.repomanager.Users(s.db).FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error searching user: %w", err)
	}

	if !cryptox.CheckPassword(password, user.Salt, user.Verifier) {
		s.log.Warn(ctx, "failed login attempt", "identifier", identifier)
		return nil, common.ErrInvalidCredentials
	}

	profile := user.Profile()
	if err := settings.SetJSON(ctx, s.repomanager.Settings(s.db), SessionKey, profile); err != nil {
		return nil, fmt.Errorf("error saving session: %w", err)
	}

	s.log.Info(ctx, "user logged in", "user_id", user.ID)
	return profile, nil
}

func (s *accountService) Logout(ctx context.Context) error {
	if err := s.repomanager.Settings(s.db).Delete(ctx, SessionKey); err != nil {
		return fmt.Errorf("error clearing session: %w", err)
	}
	return nil
}

func (s *accountService) CurrentUser(ctx context.Context) (*models.Profile, error) {
	return settings.GetJSON[models.Profile](ctx, s.repomanager.Settings(s.db), SessionKey)
}

func (s *accountService) SeedDefaultUsers(ctx context.Context) error {
	repo := s.repomanager.Users(s.db)
	for _, d := range DefaultUsers {
		_, err := repo.FindByIdentifier(ctx, d.Username)
		if err == nil {
			continue
		}
		if !errors.Is(err, common.ErrNotFound) {
			return fmt.Errorf("error searching user: %w", err)
		}

		salt, verifier := cryptox.HashPassword([]byte(d.Password))
		user := &models.User{
			ID:          d.ID,
			Username:    d.Username,
			Email:       d.Email,
			DisplayName: d.DisplayName,
			PhotoURL:    d.PhotoURL,
			Salt:        salt,
			Verifier:    verifier,
			CreatedAt:   s.now(),
		}
		if err := repo.Put(ctx, user); err != nil {
			return fmt.Errorf("error seeding user %s: %w", d.Username, err)
		}
		s.log.Info(ctx, "default user seeded", "username", d.Username)
	}
	return nil
}

// --- helpers below ---

func (s *accountService) ensureFree(ctx context.Context, find func(context.Context, string) (*models.User, error), identifier string, taken error) error {
	_, err := find(ctx, identifier)
	if err == nil {
		return taken
	}
	if errors.Is(err, common.ErrNotFound) {
		return nil
	}
	return fmt.Errorf("error searching user: %w", err)
}

func validateRegistration(req RegisterRequest) error {
	if req.Username == "" || req.Email == "" || len(req.Password) == 0 || len(req.ConfirmPassword) == 0 {
		return ErrFieldsRequired
	}
	if !emailPattern.MatchString(req.Email) {
		return ErrInvalidEmail
	}
	if utf8.RuneCount(req.Password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if string(req.Password) != string(req.ConfirmPassword) {
		return ErrPasswordMismatch
	}
	return nil
}
