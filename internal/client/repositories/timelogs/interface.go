package timelogs

import (
	"context"

	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/models"
)

// Repository stores daily study-hour entries. The schema allows one entry per
// owner per date.
type Repository interface {
	Put(ctx context.Context, entry *models.TimeLogEntry) error
	GetAll(ctx context.Context) ([]models.TimeLogEntry, error)
	GetAllByOwner(ctx context.Context, ownerID string) ([]models.TimeLogEntry, error)
	DeleteAllByOwner(ctx context.Context, ownerID string) error
	GetByKey(ctx context.Context, id string) (*models.TimeLogEntry, error)
}
