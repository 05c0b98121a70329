package exams

import (
	"context"

	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/models"
)

// Repository stores SPOM exam records scoped by owner.
type Repository interface {
	Put(ctx context.Context, exam *models.ExamRecord) error
	GetAll(ctx context.Context) ([]models.ExamRecord, error)
	GetAllByOwner(ctx context.Context, ownerID string) ([]models.ExamRecord, error)
	DeleteAllByOwner(ctx context.Context, ownerID string) error
	GetByKey(ctx context.Context, id string) (*models.ExamRecord, error)
}
