package usermeta

import (
	"context"

	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/models"
)

// Repository stores one metadata record per user, keyed by owner ID.
type Repository interface {
	// Put replaces the owner's record wholesale.
	Put(ctx context.Context, meta *models.UserMetadata) error
	GetAll(ctx context.Context) ([]models.UserMetadata, error)

	// GetByKey returns common.ErrNotFound when the owner has no record yet.
	GetByKey(ctx context.Context, ownerID string) (*models.UserMetadata, error)
	DeleteAllByOwner(ctx context.Context, ownerID string) error
}
