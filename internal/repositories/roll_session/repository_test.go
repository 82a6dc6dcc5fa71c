package rollsession_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokerole-api/internal/engine/roll"
	apierrors "github.com/KirkDiggler/pokerole-api/internal/errors"
	"github.com/KirkDiggler/pokerole-api/internal/pkg/clock"
	rollsession "github.com/KirkDiggler/pokerole-api/internal/repositories/roll_session"
	"github.com/KirkDiggler/pokerole-api/internal/testutils"
)

// RepositoryTestSuite runs the same behavior checks against every implementation
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func(t *testing.T, clk clock.Clock) rollsession.Repository
	clock   *clock.Fixed
	repo    rollsession.Repository
	ctx     context.Context
	key     rollsession.Key
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(_ *testing.T, clk clock.Clock) rollsession.Repository {
			return rollsession.NewInMemory(clk)
		},
	})
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func(t *testing.T, clk clock.Clock) rollsession.Repository {
			client, _ := testutils.CreateTestRedisServer(t)
			repo, err := rollsession.NewRedisRepository(&rollsession.Config{Client: client, Clock: clk})
			if err != nil {
				t.Fatal(err)
			}
			return repo
		},
	})
}

func (s *RepositoryTestSuite) SetupTest() {
	s.clock = &clock.Fixed{At: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	s.repo = s.newRepo(s.T(), s.clock)
	s.ctx = context.Background()
	s.key = rollsession.Key{
		UserID:      testutils.TestUserID,
		SubjectType: "pokemon_character",
		SubjectID:   "mon-test-123",
	}
}

func (s *RepositoryTestSuite) testSession() *roll.Session {
	return &roll.Session{
		Mode:      roll.ModeAttribute,
		Step:      roll.StepResult,
		StatName:  "Strength",
		StatValue: 3,
		Results:   []int{6, 2, 4},
		Successes: 2,
		Total:     3,
	}
}

func (s *RepositoryTestSuite) TestSaveAndGet() {
	saved, err := s.repo.Save(s.ctx, rollsession.SaveInput{
		Record: &rollsession.Record{Key: s.key, Session: s.testSession()},
	})
	s.Require().NoError(err)
	s.True(saved.Record.CreatedAt.Equal(s.clock.At))
	s.True(saved.Record.ExpiresAt.Equal(s.clock.At.Add(rollsession.DefaultTTL)))

	got, err := s.repo.Get(s.ctx, rollsession.GetInput{Key: s.key})
	s.Require().NoError(err)
	s.Require().NotNil(got.Record.Session)
	s.Equal(s.testSession(), got.Record.Session)
	s.Equal(s.key, got.Record.Key)
	s.Nil(got.Record.Pending)
}

func (s *RepositoryTestSuite) TestSaveReplacesAndKeepsCreatedAt() {
	_, err := s.repo.Save(s.ctx, rollsession.SaveInput{
		Record: &rollsession.Record{Key: s.key, Session: s.testSession()},
	})
	s.Require().NoError(err)

	got, err := s.repo.Get(s.ctx, rollsession.GetInput{Key: s.key})
	s.Require().NoError(err)

	s.clock.Advance(5 * time.Minute)
	got.Record.Session = nil
	got.Record.Pending = &rollsession.PendingChoice{
		Stage:   rollsession.StageAccuracy,
		Options: []string{"Strength", "Dexterity"},
	}
	_, err = s.repo.Save(s.ctx, rollsession.SaveInput{Record: got.Record})
	s.Require().NoError(err)

	again, err := s.repo.Get(s.ctx, rollsession.GetInput{Key: s.key})
	s.Require().NoError(err)
	s.Nil(again.Record.Session)
	s.Require().NotNil(again.Record.Pending)
	s.Equal([]string{"Strength", "Dexterity"}, again.Record.Pending.Options)
	s.True(again.Record.CreatedAt.Equal(s.clock.At.Add(-5 * time.Minute)))
	s.True(again.Record.ExpiresAt.Equal(s.clock.At.Add(rollsession.DefaultTTL)))
}

func (s *RepositoryTestSuite) TestGetExpired() {
	_, err := s.repo.Save(s.ctx, rollsession.SaveInput{
		Record: &rollsession.Record{Key: s.key, Session: s.testSession()},
		TTL:    time.Minute,
	})
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Minute)

	_, err = s.repo.Get(s.ctx, rollsession.GetInput{Key: s.key})
	s.Require().Error(err)
	s.True(apierrors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestGetMissing() {
	_, err := s.repo.Get(s.ctx, rollsession.GetInput{Key: s.key})
	s.Require().Error(err)
	s.True(apierrors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestKeysAreIndependent() {
	other := s.key
	other.SubjectType = "trainer"
	other.SubjectID = testutils.TestUserID

	_, err := s.repo.Save(s.ctx, rollsession.SaveInput{
		Record: &rollsession.Record{Key: s.key, Session: s.testSession()},
	})
	s.Require().NoError(err)

	_, err = s.repo.Get(s.ctx, rollsession.GetInput{Key: other})
	s.True(apierrors.IsNotFound(err))
}

func (s *RepositoryTestSuite) TestDelete() {
	_, err := s.repo.Save(s.ctx, rollsession.SaveInput{
		Record: &rollsession.Record{Key: s.key, Session: s.testSession()},
	})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, rollsession.DeleteInput{Key: s.key})
	s.Require().NoError(err)
	s.True(out.Deleted)

	out, err = s.repo.Delete(s.ctx, rollsession.DeleteInput{Key: s.key})
	s.Require().NoError(err)
	s.False(out.Deleted)
}

func (s *RepositoryTestSuite) TestValidation() {
	_, err := s.repo.Save(s.ctx, rollsession.SaveInput{})
	s.True(apierrors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, rollsession.SaveInput{
		Record: &rollsession.Record{Key: rollsession.Key{UserID: "u"}},
	})
	s.True(apierrors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, rollsession.GetInput{})
	s.True(apierrors.IsInvalidArgument(err))

	_, err = s.repo.Delete(s.ctx, rollsession.DeleteInput{})
	s.True(apierrors.IsInvalidArgument(err))
}
