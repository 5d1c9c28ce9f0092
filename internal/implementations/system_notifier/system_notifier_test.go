package systemnotifier

import (
	"context"
	"errors"
	"healthmate/internal/core/domain/channel"
	c "healthmate/internal/core/domain/common"
	"healthmate/internal/core/domain/logging"
	"healthmate/internal/core/domain/notification"
	"healthmate/internal/core/domain/user"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/suite"
)

const USER_ID = user.ID("user-1")

type fakeBot struct {
	err  error
	sent []tgbotapi.MessageConfig
}

func (b *fakeBot) Send(chattable tgbotapi.Chattable) (tgbotapi.Message, error) {
	if b.err != nil {
		return tgbotapi.Message{}, b.err
	}
	b.sent = append(b.sent, chattable.(tgbotapi.MessageConfig))
	return tgbotapi.Message{}, nil
}

type fakeSES struct {
	err  error
	sent []*ses.SendEmailInput
}

func (s *fakeSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.sent = append(s.sent, params)
	return &ses.SendEmailOutput{}, nil
}

type testSuite struct {
	suite.Suite
	channels *channel.FakeRepository
	bot      *fakeBot
	ses      *fakeSES
	notifier *Notifier
	message  notification.Notification
}

func (s *testSuite) SetupTest() {
	s.channels = channel.NewFakeRepository()
	s.bot = &fakeBot{}
	s.ses = &fakeSES{}
	s.notifier = New(s.channels, NewTelegram(s.bot), NewEmail(s.ses, "reminders@healthmate.example"))
	s.message = notification.Notification{Title: "Medicine Reminder", Body: "Time to take Aspirin - 1 tablet"}
}

func TestSystemNotifier(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestTelegram() {
	// Setup ---
	ctx := context.Background()
	s.Require().Nil(s.channels.Set(ctx, USER_ID, channel.NewTelegramSettings(777)))

	// Exercise ---
	err := s.notifier.Notify(ctx, USER_ID, s.message)

	// Verify ---
	s.Require().Nil(err)
	s.Require().Len(s.bot.sent, 1)
	s.Equal(int64(777), s.bot.sent[0].ChatID)
	s.Equal("Medicine Reminder\nTime to take Aspirin - 1 tablet", s.bot.sent[0].Text)
	s.Empty(s.ses.sent)
}

func (s *testSuite) TestTelegramRefused() {
	ctx := context.Background()
	s.Require().Nil(s.channels.Set(ctx, USER_ID, channel.NewTelegramSettings(777)))
	s.bot.err = &tgbotapi.Error{Code: 403, Message: "Forbidden: bot was blocked by the user"}

	err := s.notifier.Notify(ctx, USER_ID, s.message)

	s.ErrorIs(err, channel.ErrDeliveryRefused)
}

func (s *testSuite) TestTelegramTransientError() {
	ctx := context.Background()
	s.Require().Nil(s.channels.Set(ctx, USER_ID, channel.NewTelegramSettings(777)))
	s.bot.err = &tgbotapi.Error{Code: 429, Message: "Too Many Requests"}

	err := s.notifier.Notify(ctx, USER_ID, s.message)

	s.NotNil(err)
	s.False(errors.Is(err, channel.ErrDeliveryRefused))
}

func (s *testSuite) TestEmail() {
	ctx := context.Background()
	s.Require().Nil(s.channels.Set(ctx, USER_ID, channel.NewEmailSettings(c.NewEmail("mom@example.com"))))

	err := s.notifier.Notify(ctx, USER_ID, s.message)

	s.Require().Nil(err)
	s.Require().Len(s.ses.sent, 1)
	input := s.ses.sent[0]
	s.Equal("reminders@healthmate.example", aws.ToString(input.Source))
	s.Equal([]string{"mom@example.com"}, input.Destination.ToAddresses)
	s.Equal("Medicine Reminder", aws.ToString(input.Message.Subject.Data))
	s.Equal("Time to take Aspirin - 1 tablet", aws.ToString(input.Message.Body.Text.Data))
}

func (s *testSuite) TestEmailRejected() {
	ctx := context.Background()
	s.Require().Nil(s.channels.Set(ctx, USER_ID, channel.NewEmailSettings(c.NewEmail("mom@example.com"))))
	s.ses.err = &types.MessageRejected{Message: aws.String("Email address is not verified.")}

	err := s.notifier.Notify(ctx, USER_ID, s.message)

	s.ErrorIs(err, channel.ErrDeliveryRefused)
}

func (s *testSuite) TestNoChannel() {
	err := s.notifier.Notify(context.Background(), USER_ID, s.message)

	s.ErrorIs(err, channel.ErrChannelNotSet)
}

func (s *testSuite) TestDisabledTransport() {
	ctx := context.Background()
	s.notifier = New(s.channels, nil, nil)
	s.Require().Nil(s.channels.Set(ctx, USER_ID, channel.NewTelegramSettings(777)))

	err := s.notifier.Notify(ctx, USER_ID, s.message)

	s.ErrorIs(err, errTelegramDisabled)
}

func (s *testSuite) TestRefusalTracking() {
	cases := []struct {
		id       string
		err      error
		expected notification.Permission
	}{
		{id: "refused", err: channel.ErrDeliveryRefused, expected: notification.PermissionDenied},
		{id: "transient", err: errors.New("timeout"), expected: notification.PermissionGranted},
		{id: "delivered", expected: notification.PermissionGranted},
	}

	for _, testcase := range cases {
		s.Run(testcase.id, func() {
			ctx := context.Background()
			permissions := notification.NewFakePermissionRepository()
			s.Require().Nil(permissions.Set(ctx, USER_ID, notification.PermissionGranted))
			inner := notification.NewFakeSystemNotifier()
			inner.Error = testcase.err
			tracker := WithRefusalTracking(logging.NewFakeLogger(), inner, permissions)

			err := tracker.Notify(ctx, USER_ID, s.message)

			s.ErrorIs(err, testcase.err)
			p, getErr := permissions.Get(ctx, USER_ID)
			s.Require().Nil(getErr)
			s.Equal(testcase.expected, p)
		})
	}
}
