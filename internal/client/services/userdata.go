package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/models"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/client/repositories/repomanager"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/common"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/dbx"
	"github.com/thesumitpandeyy/CA-Final-Study-Tracker/internal/logging"
)

// DataService loads and stores everything a user owns as one unit.
//
// Contract:
//   - Load: read the four per-user collections in a single transaction. A
//     user with no metadata yet gets defaults.
//   - Replace: delete every per-user record of the owner and insert the given
//     snapshot, atomically. Records are re-stamped with ownerID.
type DataService interface {
	Load(ctx context.Context, ownerID string) (*models.UserData, error)
	Replace(ctx context.Context, ownerID string, data *models.UserData) error
}

type dataService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	log         logging.Logger
	now         func() time.Time
}

// NewDataService constructs a DataService over the local database.
func NewDataService(db *sql.DB, m repomanager.RepositoryManager, log logging.Logger) DataService {
	return &dataService{
		db:          db,
		repomanager: m,
		log:         log.With("component", "userdata"),
		now:         time.Now,
	}
}

func (s *dataService) Load(ctx context.Context, ownerID string) (*models.UserData, error) {
	data, err := dbx.WithTxResult(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (*models.UserData, error) {
		var (
			data = &models.UserData{}
			err  error
		)

		if data.Items, err = s.repomanager.StudyItems(tx).GetAllByOwner(ctx, ownerID); err != nil {
			return nil, err
		}
		if data.Exams, err = s.repomanager.Exams(tx).GetAllByOwner(ctx, ownerID); err != nil {
			return nil, err
		}
		if data.Logs, err = s.repomanager.TimeLogs(tx).GetAllByOwner(ctx, ownerID); err != nil {
			return nil, err
		}

		meta, err := s.repomanager.UserMetadata(tx).GetByKey(ctx, ownerID)
		switch {
		case errors.Is(err, common.ErrNotFound):
			data.Metadata = models.NewUserMetadata(ownerID)
		case err != nil:
			return nil, err
		default:
			data.Metadata = *meta
		}
		return data, nil
	})
	if err != nil {
		return nil, fmt.Errorf("error loading user data: %w", err)
	}

	s.log.Debug(ctx, "user data loaded", "user_id", ownerID,
		"items", len(data.Items), "exams", len(data.Exams), "logs", len(data.Logs))
	return data, nil
}

func (s *dataService) Replace(ctx context.Context, ownerID string, data *models.UserData) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		items := s.repomanager.StudyItems(tx)
		exams := s.repomanager.Exams(tx)
		logs := s.repomanager.TimeLogs(tx)
		meta := s.repomanager.UserMetadata(tx)

		if err := items.DeleteAllByOwner(ctx, ownerID); err != nil {
			return err
		}
		if err := exams.DeleteAllByOwner(ctx, ownerID); err != nil {
			return err
		}
		if err := logs.DeleteAllByOwner(ctx, ownerID); err != nil {
			return err
		}

		for i := range data.Items {
			item := data.Items[i]
			item.OwnerID = ownerID
			if err := items.Put(ctx, &item); err != nil {
				return err
			}
		}
		for i := range data.Exams {
			exam := data.Exams[i]
			exam.OwnerID = ownerID
			if err := exams.Put(ctx, &exam); err != nil {
				return err
			}
		}
		for i := range data.Logs {
			entry := data.Logs[i]
			entry.OwnerID = ownerID
			if err := logs.Put(ctx, &entry); err != nil {
				return err
			}
		}

		m := data.Metadata
		m.OwnerID = ownerID
		m.UpdatedAt = s.now()
		return meta.Put(ctx, &m)
	})
	if err != nil {
		return fmt.Errorf("error saving user data: %w", err)
	}

	s.log.Debug(ctx, "user data saved", "user_id", ownerID,
		"items", len(data.Items), "exams", len(data.Exams), "logs", len(data.Logs))
	return nil
}
