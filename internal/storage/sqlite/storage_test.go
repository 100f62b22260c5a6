package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/goserg/tennisleague/internal/domain"
	"github.com/goserg/tennisleague/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	ctx     context.Context
	storage *Storage
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.ctx = context.Background()
	st, err := New(logrus.New(), filepath.Join(s.T().TempDir(), "backups.sqlite"))
	s.Require().NoError(err)
	s.storage = st
}

func (s *StorageSuite) TearDownTest() {
	s.Require().NoError(s.storage.Close())
}

func (s *StorageSuite) state() domain.AppState {
	return domain.AppState{
		Players: []domain.Player{
			{ID: 1, Name: "Ana", TotalPoints: 14, Wins: 1, GamesPlayed: 1},
			{ID: 2, Name: "Bia", TotalPoints: 3, Losses: 1, GamesPlayed: 1},
		},
		MonthlyData: []domain.MonthlyData{{
			ID:     1,
			Name:   "Março",
			Groups: []domain.Group{{ID: 1, Name: "Grupo 1", PlayerIDs: []int{1, 2}}},
			Matches: []domain.Match{
				{ID: "m1-g1-p1-vs-p2", Player1ID: 1, Player2ID: 2, WinnerID: domain.ID(1), Score: "6-3 6-3"},
			},
		}},
		MasterBracket: []domain.BracketMatch{},
	}
}

func (s *StorageSuite) TestRoundTrip() {
	created, err := s.storage.Create(s.ctx, "before advance", s.state())
	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, created.ID)
	s.Equal(2, created.Players)
	s.Equal(1, created.Months)

	state, backup, err := s.storage.Get(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created.ID, backup.ID)
	s.Equal("before advance", backup.Label)
	s.Equal(s.state(), state)
}

func (s *StorageSuite) TestList() {
	backups, err := s.storage.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(backups)

	first, err := s.storage.Create(s.ctx, "first", s.state())
	s.Require().NoError(err)
	second, err := s.storage.Create(s.ctx, "second", domain.AppState{})
	s.Require().NoError(err)

	backups, err = s.storage.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(backups, 2)
	s.Equal(second.ID, backups[0].ID)
	s.Equal(first.ID, backups[1].ID)
	s.Zero(backups[0].Players)
}

func (s *StorageSuite) TestNotFound() {
	_, _, err := s.storage.Get(s.ctx, uuid.New())
	s.ErrorIs(err, storage.ErrNotFound)
	s.ErrorIs(s.storage.Delete(s.ctx, uuid.New()), storage.ErrNotFound)
}

func (s *StorageSuite) TestDelete() {
	created, err := s.storage.Create(s.ctx, "", s.state())
	s.Require().NoError(err)
	s.Require().NoError(s.storage.Delete(s.ctx, created.ID))
	_, _, err = s.storage.Get(s.ctx, created.ID)
	s.ErrorIs(err, storage.ErrNotFound)
}
