// Package sqlite archives full league snapshots in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/goserg/tennisleague/gen/model"
	"github.com/goserg/tennisleague/gen/table"
	"github.com/goserg/tennisleague/internal/domain"
	sqlite3 "github.com/goserg/tennisleague/internal/migrate"
	"github.com/goserg/tennisleague/internal/storage"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.BackupStorage = (*Storage)(nil)

// New opens the archive at fileName and applies pending migrations.
func New(l *logrus.Logger, fileName string) (*Storage, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "backup-storage",
	})
	db, err := sql.Open("sqlite3", buildSource(fileName))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.UpBackupDB(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate backups: %w", err)
	}

	err = db.Ping()
	if err != nil {
		db.Close()
		return nil, err
	}
	log.WithField("file", fileName).Debug("backup storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func (s *Storage) Create(ctx context.Context, label string, state domain.AppState) (storage.Backup, error) {
	data, err := storage.Encode(state)
	if err != nil {
		return storage.Backup{}, err
	}
	row := model.Backups{
		ID:        uuid.New().String(),
		Label:     label,
		Players:   int32(len(state.Players)),
		Months:    int32(len(state.MonthlyData)),
		State:     string(data),
		CreatedAt: time.Now().UTC(),
	}
	_, err = table.Backups.INSERT(table.Backups.AllColumns).MODEL(row).ExecContext(ctx, s.db)
	if err != nil {
		return storage.Backup{}, err
	}
	backup, err := convertBackup(row)
	if err != nil {
		return storage.Backup{}, err
	}
	s.log.WithFields(logrus.Fields{
		"id":    backup.ID,
		"label": label,
	}).Info("backup created")
	return backup, nil
}

// List returns the archive, newest first.
func (s *Storage) List(ctx context.Context) ([]storage.Backup, error) {
	var rows []model.Backups
	err := table.Backups.
		SELECT(table.Backups.AllColumns.Except(table.Backups.State)).
		FROM(table.Backups).
		ORDER_BY(table.Backups.CreatedAt.DESC()).
		QueryContext(ctx, s.db, &rows)
	if err != nil {
		return nil, err
	}
	backups := make([]storage.Backup, 0, len(rows))
	for _, row := range rows {
		b, err := convertBackup(row)
		if err != nil {
			return nil, err
		}
		backups = append(backups, b)
	}
	return backups, nil
}

// Get returns a sanitized snapshot. A missing backup is storage.ErrNotFound.
func (s *Storage) Get(ctx context.Context, id uuid.UUID) (domain.AppState, storage.Backup, error) {
	var row model.Backups
	err := table.Backups.
		SELECT(table.Backups.AllColumns).
		FROM(table.Backups).
		WHERE(table.Backups.ID.EQ(sqlite.UUID(id))).
		QueryContext(ctx, s.db, &row)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.AppState{}, storage.Backup{}, storage.ErrNotFound
		}
		return domain.AppState{}, storage.Backup{}, err
	}
	backup, err := convertBackup(row)
	if err != nil {
		return domain.AppState{}, storage.Backup{}, err
	}
	state, err := storage.Decode([]byte(row.State))
	if err != nil {
		return domain.AppState{}, storage.Backup{}, fmt.Errorf("backup %s: %w", id, err)
	}
	return state, backup, nil
}

func (s *Storage) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := table.Backups.
		DELETE().
		WHERE(table.Backups.ID.EQ(sqlite.UUID(id))).
		ExecContext(ctx, s.db)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	s.log.WithField("id", id).Info("backup deleted")
	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func convertBackup(row model.Backups) (storage.Backup, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return storage.Backup{}, err
	}
	return storage.Backup{
		ID:        id,
		Label:     row.Label,
		Players:   int(row.Players),
		Months:    int(row.Months),
		CreatedAt: row.CreatedAt,
	}, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared"
}
