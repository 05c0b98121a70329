package users

import (
	"context"

	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/models"
)

// Repository stores registered accounts. Username and email lookups ignore case.
type Repository interface {
	// Put inserts the user or overwrites the row with the same ID.
	Put(ctx context.Context, user *models.User) error

	GetAll(ctx context.Context) ([]*models.User, error)

	// GetByKey returns common.ErrNotFound when no user has the given ID.
	GetByKey(ctx context.Context, id string) (*models.User, error)

	// FindByIdentifier matches either the username or the email.
	FindByIdentifier(ctx context.Context, identifier string) (*models.User, error)
}
