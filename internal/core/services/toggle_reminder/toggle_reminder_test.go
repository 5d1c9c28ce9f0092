package togglereminder

import (
	"context"
	"errors"
	"healthmate/internal/core/domain/logging"
	"healthmate/internal/core/domain/reminder"
	"healthmate/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

var Owner = reminder.NewOwner("user-1", "profile-1")

type testSuite struct {
	suite.Suite
	logger  *logging.FakeLogger
	store   *reminder.FakeStore
	service services.Service[Input, Result]
	first   reminder.Reminder
	second  reminder.Reminder
}

func (s *testSuite) SetupTest() {
	s.logger = logging.NewFakeLogger()
	s.store = reminder.NewFakeStore()
	s.service = New(s.logger, s.store, reminder.NewFakeLocker())
	s.first = reminder.Reminder{ID: "1", MedicineName: "Aspirin", Dosage: "1 tablet", Time: "8:00 AM", Days: reminder.NewDays(time.Monday), IsActive: true}
	s.second = reminder.Reminder{ID: "2", MedicineName: "Syrup", Dosage: "5ml", Time: "9:30 PM", Days: reminder.EveryDay(), IsActive: true}
	s.store.Put(Owner, s.first, s.second)
}

func TestToggleReminderService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) input(id reminder.ID) Input {
	return Input{UserID: Owner.UserID, ProfileID: Owner.ProfileID, ReminderID: id}
}

func (s *testSuite) TestToggleTwiceRestoresState() {
	ctx := context.Background()

	result, err := s.service.Run(ctx, s.input("2"))
	s.Require().Nil(err)
	s.False(result.Reminder.IsActive)
	s.False(s.store.Load(ctx, Owner)[1].IsActive)
	s.True(s.store.Load(ctx, Owner)[0].IsActive)

	result, err = s.service.Run(ctx, s.input("2"))
	s.Require().Nil(err)
	s.True(result.Reminder.IsActive)
	s.Equal([]reminder.Reminder{s.first, s.second}, s.store.Load(ctx, Owner))
	s.Equal(2, s.store.SaveCount)
}

func (s *testSuite) TestUnknownIDIsNoop() {
	_, err := s.service.Run(context.Background(), s.input("404"))

	s.ErrorIs(err, reminder.ErrReminderNotFound)
	s.Equal(0, s.store.SaveCount)
	s.Equal([]reminder.Reminder{s.first, s.second}, s.store.Load(context.Background(), Owner))
}

func (s *testSuite) TestSaveError() {
	s.store.SaveError = errors.New("quota exceeded")

	_, err := s.service.Run(context.Background(), s.input("1"))

	s.ErrorIs(err, s.store.SaveError)
	s.Equal(1, s.logger.Count(logging.ERROR))
}

func (s *testSuite) TestLoadErrorPersistsNothing() {
	s.store.LoadError = reminder.ErrStoreUnavailable

	_, err := s.service.Run(context.Background(), s.input("1"))

	s.ErrorIs(err, reminder.ErrStoreUnavailable)
	s.Equal(0, s.store.SaveCount)
	s.Equal(1, s.logger.Count(logging.ERROR))
}
