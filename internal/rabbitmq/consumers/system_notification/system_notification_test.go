package systemnotification

import (
	"context"
	"errors"
	"healthmate/internal/core/domain/logging"
	"healthmate/internal/core/domain/notification"
	"healthmate/internal/rabbitmq"
	"healthmate/internal/rabbitmq/schema"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	logger   *logging.FakeLogger
	notifier *notification.FakeSystemNotifier
	consumer *Consumer
}

func (s *testSuite) SetupTest() {
	s.logger = logging.NewFakeLogger()
	s.notifier = notification.NewFakeSystemNotifier()
	s.consumer = New(s.logger, &rabbitmq.Channel{}, "system-notifications", s.notifier)
}

func TestSystemNotificationConsumer(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestHandle() {
	// Setup ---
	message := schema.SystemNotification{UserID: "u-1", Notification: notification.NotificationsEnabled()}
	body, err := message.Marshal()
	s.Require().Nil(err)

	// Exercise ---
	s.consumer.Handle(context.Background(), body)

	// Verify ---
	s.Equal([]notification.SentNotification{
		{UserID: "u-1", Notification: notification.NotificationsEnabled()},
	}, s.notifier.Sent)
}

func (s *testSuite) TestHandleMalformed() {
	s.consumer.Handle(context.Background(), []byte(`{"userId":`))

	s.Empty(s.notifier.Sent)
	s.Equal(1, s.logger.Count(logging.ERROR))
}

func (s *testSuite) TestHandleDeliveryError() {
	s.notifier.Error = errors.New("telegram is down")
	body, err := (&schema.SystemNotification{UserID: "u-1"}).Marshal()
	s.Require().Nil(err)

	s.consumer.Handle(context.Background(), body)

	s.Equal(1, s.logger.Count(logging.WARNING))
}
