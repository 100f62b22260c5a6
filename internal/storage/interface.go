package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/goserg/tennisleague/internal/domain"
)

var ErrNotFound = errors.New("not found")

// StateStorage keeps the current league snapshot.
type StateStorage interface {
	Load(ctx context.Context) (domain.AppState, error)
	Save(ctx context.Context, state domain.AppState) error
}

// Backup describes an archived snapshot without its payload.
type Backup struct {
	ID        uuid.UUID
	Label     string
	Players   int
	Months    int
	CreatedAt time.Time
}

// BackupStorage is an append-mostly archive of full snapshots.
type BackupStorage interface {
	Create(ctx context.Context, label string, state domain.AppState) (Backup, error)
	List(ctx context.Context) ([]Backup, error)
	Get(ctx context.Context, id uuid.UUID) (domain.AppState, Backup, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Close() error
}
