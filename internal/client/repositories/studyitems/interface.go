package studyitems

import (
	"context"

	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/models"
)

// Repository stores master-plan chapters. Every per-user query is scoped by owner.
type Repository interface {
	// Put inserts the item or overwrites the row with the same ID.
	Put(ctx context.Context, item *models.StudyItem) error

	GetAll(ctx context.Context) ([]models.StudyItem, error)
	GetAllByOwner(ctx context.Context, ownerID string) ([]models.StudyItem, error)
	DeleteAllByOwner(ctx context.Context, ownerID string) error

	// GetByKey returns common.ErrNotFound when no item has the given ID.
	GetByKey(ctx context.Context, id string) (*models.StudyItem, error)
}
