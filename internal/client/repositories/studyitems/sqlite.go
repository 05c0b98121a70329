package studyitems

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/models"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/common"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/dbx"
)

const selectItem = `SELECT id, owner_id, subject, name, completed, planned_date, estimated_hours FROM study_items`

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Put(ctx context.Context, item *models.StudyItem) error {
	query := `
		INSERT INTO study_items (id, owner_id, subject, name, completed, planned_date, estimated_hours)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			owner_id = excluded.owner_id,
			subject = excluded.subject,
			name = excluded.name,
			completed = excluded.completed,
			planned_date = excluded.planned_date,
			estimated_hours = excluded.estimated_hours
	`
	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.OwnerID, string(item.Subject), item.Name, item.Completed, item.PlannedDate, item.EstimatedHours)
	if err != nil {
		return fmt.Errorf("failed to put study item: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.StudyItem, error) {
	return r.list(ctx, selectItem+` ORDER BY rowid`)
}

func (r *SQLiteRepository) GetAllByOwner(ctx context.Context, ownerID string) ([]models.StudyItem, error) {
	return r.list(ctx, selectItem+` WHERE owner_id = ? ORDER BY rowid`, ownerID)
}

func (r *SQLiteRepository) DeleteAllByOwner(ctx context.Context, ownerID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM study_items WHERE owner_id = ?`, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete study items: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByKey(ctx context.Context, id string) (*models.StudyItem, error) {
	item := &models.StudyItem{}
	err := scanItem(r.db.QueryRowContext(ctx, selectItem+` WHERE id = ?`, id), item)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *SQLiteRepository) list(ctx context.Context, query string, args ...any) ([]models.StudyItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select study items: %w", err)
	}
	defer rows.Close()

	result := []models.StudyItem{}
	for rows.Next() {
		var item models.StudyItem
		if err := scanItem(rows, &item); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate study items: %w", err)
	}
	return result, nil
}

func scanItem(s interface{ Scan(...any) error }, item *models.StudyItem) error {
	var subject string
	err := s.Scan(&item.ID, &item.OwnerID, &subject, &item.Name, &item.Completed, &item.PlannedDate, &item.EstimatedHours)
	if errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to scan study item: %w", err)
	}
	item.Subject = models.Subject(subject)
	return nil
}
