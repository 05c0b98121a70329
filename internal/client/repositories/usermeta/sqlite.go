package usermeta

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/models"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/common"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/dbx"
)

const selectMeta = `SELECT owner_id, completion_dates, current_view, exam_date, updated_at FROM user_metadata`

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Put(ctx context.Context, m *models.UserMetadata) error {
	dates, err := json.Marshal(m.CompletionDates)
	if err != nil {
		return fmt.Errorf("failed to encode completion dates: %w", err)
	}

	var updatedAt string
	if !m.UpdatedAt.IsZero() {
		updatedAt = m.UpdatedAt.UTC().Format(time.RFC3339Nano)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO user_metadata (owner_id, completion_dates, current_view, exam_date, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(owner_id) DO UPDATE SET
			completion_dates = excluded.completion_dates,
			current_view = excluded.current_view,
			exam_date = excluded.exam_date,
			updated_at = excluded.updated_at
	`, m.OwnerID, string(dates), string(m.CurrentView), m.ExamDate, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to put user metadata: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.UserMetadata, error) {
	rows, err := r.db.QueryContext(ctx, selectMeta)
	if err != nil {
		return nil, fmt.Errorf("failed to select user metadata: %w", err)
	}
	defer rows.Close()

	result := []models.UserMetadata{}
	for rows.Next() {
		var m models.UserMetadata
		if err := scanMeta(rows, &m); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate user metadata: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) GetByKey(ctx context.Context, ownerID string) (*models.UserMetadata, error) {
	m := &models.UserMetadata{}
	err := scanMeta(r.db.QueryRowContext(ctx, selectMeta+` WHERE owner_id = ?`, ownerID), m)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *SQLiteRepository) DeleteAllByOwner(ctx context.Context, ownerID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM user_metadata WHERE owner_id = ?`, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete user metadata: %w", err)
	}
	return nil
}

func scanMeta(s interface{ Scan(...any) error }, m *models.UserMetadata) error {
	var dates, view, updatedAt string
	err := s.Scan(&m.OwnerID, &dates, &view, &m.ExamDate, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to scan user metadata: %w", err)
	}

	if err := json.Unmarshal([]byte(dates), &m.CompletionDates); err != nil {
		return fmt.Errorf("failed to decode completion dates: %w", err)
	}
	m.CurrentView = models.View(view)
	if updatedAt != "" {
		if m.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
			return fmt.Errorf("failed to parse metadata updated_at: %w", err)
		}
	}
	m.Normalize()
	return nil
}
