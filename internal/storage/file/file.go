// Package file keeps the league snapshot in a single JSON document on disk.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/goserg/tennisleague/internal/domain"
	"github.com/goserg/tennisleague/internal/storage"
)

type Storage struct {
	path string
	seed []byte
	log  *logrus.Entry
}

var _ storage.StateStorage = (*Storage)(nil)

// New returns a storage for path. seed is the document served while path does not
// exist yet; nil means an empty league.
func New(l *logrus.Logger, path string, seed []byte) *Storage {
	return &Storage{
		path: path,
		seed: seed,
		log: l.WithFields(map[string]interface{}{
			"from": "file-storage",
		}),
	}
}

func (s *Storage) Load(_ context.Context) (domain.AppState, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.log.WithField("path", s.path).Info("state file not found, starting from seed")
		if s.seed == nil {
			return domain.AppState{}, nil
		}
		data = s.seed
	} else if err != nil {
		return domain.AppState{}, err
	}
	state, err := storage.Decode(data)
	if err != nil {
		return domain.AppState{}, fmt.Errorf("load %s: %w", s.path, err)
	}
	s.log.WithFields(logrus.Fields{
		"players": len(state.Players),
		"months":  len(state.MonthlyData),
	}).Debug("state loaded")
	return state, nil
}

// Save replaces the file atomically through a temporary sibling.
func (s *Storage) Save(_ context.Context, state domain.AppState) error {
	data, err := storage.Encode(state)
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return err
	}
	s.log.WithField("path", s.path).Debug("state saved")
	return nil
}
