package exams

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/models"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/common"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/dbx"
)

const selectExam = `SELECT id, owner_id, exam_set, subject, marks, status FROM exam_records`

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Put(ctx context.Context, e *models.ExamRecord) error {
	query := `
		INSERT INTO exam_records (id, owner_id, exam_set, subject, marks, status)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			owner_id = excluded.owner_id,
			exam_set = excluded.exam_set,
			subject = excluded.subject,
			marks = excluded.marks,
			status = excluded.status
	`
	_, err := r.db.ExecContext(ctx, query, e.ID, e.OwnerID, string(e.Set), e.Subject, e.Marks, string(e.Status))
	if err != nil {
		return fmt.Errorf("failed to put exam record: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.ExamRecord, error) {
	return r.list(ctx, selectExam+` ORDER BY rowid`)
}

func (r *SQLiteRepository) GetAllByOwner(ctx context.Context, ownerID string) ([]models.ExamRecord, error) {
	return r.list(ctx, selectExam+` WHERE owner_id = ? ORDER BY rowid`, ownerID)
}

func (r *SQLiteRepository) DeleteAllByOwner(ctx context.Context, ownerID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM exam_records WHERE owner_id = ?`, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete exam records: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByKey(ctx context.Context, id string) (*models.ExamRecord, error) {
	e := &models.ExamRecord{}
	err := scanExam(r.db.QueryRowContext(ctx, selectExam+` WHERE id = ?`, id), e)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *SQLiteRepository) list(ctx context.Context, query string, args ...any) ([]models.ExamRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select exam records: %w", err)
	}
	defer rows.Close()

	result := []models.ExamRecord{}
	for rows.Next() {
		var e models.ExamRecord
		if err := scanExam(rows, &e); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate exam records: %w", err)
	}
	return result, nil
}

func scanExam(s interface{ Scan(...any) error }, e *models.ExamRecord) error {
	var set, status string
	err := s.Scan(&e.ID, &e.OwnerID, &set, &e.Subject, &e.Marks, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to scan exam record: %w", err)
	}
	e.Set = models.ExamSet(set)
	e.Status = models.ExamStatus(status)
	return nil
}
