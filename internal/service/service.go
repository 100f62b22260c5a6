// Package service owns the live league snapshot. It runs the pure league
// operations, persists every accepted transition and keeps derived indexes fresh.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/goserg/tennisleague/internal/auth"
	"github.com/goserg/tennisleague/internal/cache/mem"
	"github.com/goserg/tennisleague/internal/domain"
	"github.com/goserg/tennisleague/internal/export"
	"github.com/goserg/tennisleague/internal/league"
	"github.com/goserg/tennisleague/internal/rating"
	"github.com/goserg/tennisleague/internal/standings"
	"github.com/goserg/tennisleague/internal/storage"
)

var ErrNoBackups = errors.New("backup storage is not configured")

type LeagueService struct {
	mu      sync.RWMutex
	state   domain.AppState
	store   storage.StateStorage
	backups storage.BackupStorage
	names   *mem.Cache
	log     *logrus.Entry
	now     func() time.Time
}

// New loads the current snapshot from store. backups may be nil, in which case the
// archive operations return ErrNoBackups.
func New(ctx context.Context, l *logrus.Logger, store storage.StateStorage, backups storage.BackupStorage) (*LeagueService, error) {
	state, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	s := &LeagueService{
		state:   state,
		store:   store,
		backups: backups,
		names:   mem.New(),
		log: l.WithFields(map[string]interface{}{
			"from": "league-service",
		}),
		now: time.Now,
	}
	s.names.Update(state.Players)
	return s, nil
}

// Snapshot returns the current state. Callers must treat it as read-only.
func (s *LeagueService) Snapshot() domain.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *LeagueService) Standings() []domain.Player {
	return standings.Rank(s.Snapshot().Players)
}

func (s *LeagueService) CurrentMonth() (domain.MonthlyData, bool) {
	return s.Snapshot().CurrentMonth()
}

// Bracket returns the Master bracket as it should be displayed, generating it from
// the standings until the first result is recorded.
func (s *LeagueService) Bracket() []domain.BracketMatch {
	return league.MasterBracket(s.Snapshot())
}

func (s *LeagueService) Ratings() []rating.Rating {
	return rating.Compute(s.Snapshot())
}

func (s *LeagueService) PlayerByName(name string) (domain.Player, bool) {
	return s.names.GetPlayerByName(name)
}

func (s *LeagueService) RecordGroupMatch(ctx context.Context, sess auth.Session, matchID string, winnerID int, score string, isWO bool) error {
	return s.apply(ctx, "record group match", logrus.Fields{"match": matchID, "winner": winnerID, "wo": isWO},
		func(state domain.AppState) (domain.AppState, error) {
			return league.RecordGroupMatch(state, sess, matchID, winnerID, score, isWO)
		})
}

func (s *LeagueService) ResetGroupMatch(ctx context.Context, sess auth.Session, matchID string) error {
	return s.apply(ctx, "reset group match", logrus.Fields{"match": matchID},
		func(state domain.AppState) (domain.AppState, error) {
			return league.ResetGroupMatch(state, sess, matchID)
		})
}

func (s *LeagueService) MarkNotPlayed(ctx context.Context, sess auth.Session, matchID string) error {
	return s.apply(ctx, "mark not played", logrus.Fields{"match": matchID},
		func(state domain.AppState) (domain.AppState, error) {
			return league.MarkNotPlayed(state, sess, matchID)
		})
}

func (s *LeagueService) RecordBracketMatch(ctx context.Context, sess auth.Session, matchID string, winnerID int, score string) error {
	return s.apply(ctx, "record bracket match", logrus.Fields{"match": matchID, "winner": winnerID},
		func(state domain.AppState) (domain.AppState, error) {
			return league.RecordBracketMatch(state, sess, matchID, winnerID, score)
		})
}

func (s *LeagueService) ResetBracketMatch(ctx context.Context, sess auth.Session, matchID string) error {
	return s.apply(ctx, "reset bracket match", logrus.Fields{"match": matchID},
		func(state domain.AppState) (domain.AppState, error) {
			return league.ResetBracketMatch(state, sess, matchID)
		})
}

// AdvanceSeason archives the closing month when a backup storage is configured and
// then opens the next one.
func (s *LeagueService) AdvanceSeason(ctx context.Context, sess auth.Session) error {
	if err := sess.Allow(auth.AdvanceMonth); err != nil {
		return err
	}
	if s.backups != nil {
		label := "before first season"
		if month, ok := s.CurrentMonth(); ok {
			label = "end of " + month.Name
		}
		if _, err := s.Backup(ctx, sess, label); err != nil {
			return fmt.Errorf("archive month: %w", err)
		}
	}
	return s.apply(ctx, "advance season", nil,
		func(state domain.AppState) (domain.AppState, error) {
			return league.AdvanceSeason(state, sess, s.now())
		})
}

func (s *LeagueService) RenamePlayer(ctx context.Context, sess auth.Session, playerID int, name string) error {
	return s.apply(ctx, "rename player", logrus.Fields{"player": playerID, "name": name},
		func(state domain.AppState) (domain.AppState, error) {
			return league.RenamePlayer(state, sess, playerID, name)
		})
}

func (s *LeagueService) AddPlayer(ctx context.Context, sess auth.Session, name string) (domain.Player, error) {
	var added domain.Player
	err := s.apply(ctx, "add player", logrus.Fields{"name": name},
		func(state domain.AppState) (domain.AppState, error) {
			next, p, err := league.AddPlayer(state, sess, name)
			added = p
			return next, err
		})
	return added, err
}

// Export renders the snapshot in the import/export JSON layout.
func (s *LeagueService) Export(sess auth.Session) ([]byte, error) {
	if err := sess.Allow(auth.ExportState); err != nil {
		return nil, err
	}
	return storage.Encode(s.Snapshot())
}

// Import replaces the whole league with a sanitized copy of data.
func (s *LeagueService) Import(ctx context.Context, sess auth.Session, data []byte) error {
	if err := sess.Allow(auth.ImportState); err != nil {
		return err
	}
	imported, err := storage.Decode(data)
	if err != nil {
		return err
	}
	return s.replace(ctx, "import", imported)
}

func (s *LeagueService) ExportCSV(w io.Writer) error {
	return export.CSV(w, s.Snapshot().Players)
}

func (s *LeagueService) Backup(ctx context.Context, sess auth.Session, label string) (storage.Backup, error) {
	if err := sess.Allow(auth.ExportState); err != nil {
		return storage.Backup{}, err
	}
	if s.backups == nil {
		return storage.Backup{}, ErrNoBackups
	}
	return s.backups.Create(ctx, label, s.Snapshot())
}

func (s *LeagueService) Backups(ctx context.Context) ([]storage.Backup, error) {
	if s.backups == nil {
		return nil, ErrNoBackups
	}
	return s.backups.List(ctx)
}

// Restore makes an archived snapshot current. It needs the same permission as an
// import.
func (s *LeagueService) Restore(ctx context.Context, sess auth.Session, id uuid.UUID) error {
	if err := sess.Allow(auth.ImportState); err != nil {
		return err
	}
	if s.backups == nil {
		return ErrNoBackups
	}
	state, _, err := s.backups.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.replace(ctx, "restore "+id.String(), state)
}

func (s *LeagueService) DeleteBackup(ctx context.Context, sess auth.Session, id uuid.UUID) error {
	if err := sess.Allow(auth.ImportState); err != nil {
		return err
	}
	if s.backups == nil {
		return ErrNoBackups
	}
	return s.backups.Delete(ctx, id)
}

func (s *LeagueService) replace(ctx context.Context, op string, state domain.AppState) error {
	return s.apply(ctx, op, logrus.Fields{"players": len(state.Players), "months": len(state.MonthlyData)},
		func(domain.AppState) (domain.AppState, error) {
			return state, nil
		})
}

// apply runs fn against the current snapshot under the write lock. The result is
// persisted before it becomes visible, so a failed save leaves the service on the
// previous snapshot.
func (s *LeagueService) apply(ctx context.Context, op string, fields logrus.Fields, fn func(domain.AppState) (domain.AppState, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.log.WithField("op", op).WithFields(fields)
	next, err := fn(s.state)
	if err != nil {
		log.WithError(err).Warn("operation refused")
		return err
	}
	if err := s.store.Save(ctx, next); err != nil {
		log.WithError(err).Error("save state")
		return fmt.Errorf("%s: %w", op, err)
	}
	s.state = next
	s.names.Update(next.Players)
	log.Info("state updated")
	return nil
}
