package timelogs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/models"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/common"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/dbx"
)

const selectLog = `SELECT id, owner_id, date, subject, hours FROM time_logs`

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Put(ctx context.Context, l *models.TimeLogEntry) error {
	query := `
		INSERT INTO time_logs (id, owner_id, date, subject, hours)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			owner_id = excluded.owner_id,
			date = excluded.date,
			subject = excluded.subject,
			hours = excluded.hours
	`
	_, err := r.db.ExecContext(ctx, query, l.ID, l.OwnerID, l.Date, string(l.Subject), l.Hours)
	if err != nil {
		return fmt.Errorf("failed to put time log: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.TimeLogEntry, error) {
	return r.list(ctx, selectLog+` ORDER BY date`)
}

func (r *SQLiteRepository) GetAllByOwner(ctx context.Context, ownerID string) ([]models.TimeLogEntry, error) {
	return r.list(ctx, selectLog+` WHERE owner_id = ? ORDER BY date`, ownerID)
}

func (r *SQLiteRepository) DeleteAllByOwner(ctx context.Context, ownerID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM time_logs WHERE owner_id = ?`, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete time logs: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByKey(ctx context.Context, id string) (*models.TimeLogEntry, error) {
	l := &models.TimeLogEntry{}
	err := scanLog(r.db.QueryRowContext(ctx, selectLog+` WHERE id = ?`, id), l)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *SQLiteRepository) list(ctx context.Context, query string, args ...any) ([]models.TimeLogEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select time logs: %w", err)
	}
	defer rows.Close()

	result := []models.TimeLogEntry{}
	for rows.Next() {
		var l models.TimeLogEntry
		if err := scanLog(rows, &l); err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate time logs: %w", err)
	}
	return result, nil
}

func scanLog(s interface{ Scan(...any) error }, l *models.TimeLogEntry) error {
	var subject string
	err := s.Scan(&l.ID, &l.OwnerID, &l.Date, &subject, &l.Hours)
	if errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to scan time log: %w", err)
	}
	l.Subject = models.Subject(subject)
	return nil
}
