package systemnotification

import (
	"context"
	e "healthmate/internal/core/domain/errors"
	"healthmate/internal/core/domain/logging"
	"healthmate/internal/core/domain/notification"
	"healthmate/internal/rabbitmq"
	"healthmate/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

type Consumer struct {
	log      logging.Logger
	channel  *rabbitmq.Channel
	queue    string
	notifier notification.SystemNotifier
}

func New(
	log logging.Logger,
	channel *rabbitmq.Channel,
	queue string,
	notifier notification.SystemNotifier,
) *Consumer {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic(e.NewEmptyArgumentError("queue"))
	}
	if notifier == nil {
		panic(e.NewNilArgumentError("notifier"))
	}
	return &Consumer{log: log, channel: channel, queue: queue, notifier: notifier}
}

func (c *Consumer) Consume() error {
	deliveries, err := c.channel.Consume(c.queue, "", false)
	if err != nil {
		c.log.Error(context.Background(), "Could not start consuming.", logging.Entry("err", err))
		return err
	}

	go func() {
		for delivery := range deliveries {
			c.Handle(context.Background(), delivery.Body)
			c.Ack(delivery)
		}
	}()
	return nil
}

// Handle delivers one queued notification. Delivery failures are logged and
// the message is dropped, the next due occurrence produces a new one.
func (c *Consumer) Handle(ctx context.Context, body []byte) {
	message := &schema.SystemNotification{}
	if err := message.Unmarshal(body); err != nil {
		c.log.Error(ctx, "Could not unmarshal system notification.", logging.Entry("err", err))
		return
	}

	if err := c.notifier.Notify(ctx, message.UserID, message.Notification); err != nil {
		c.log.Warning(
			ctx,
			"Could not deliver system notification.",
			logging.Entry("userID", message.UserID),
			logging.Entry("err", err),
		)
		return
	}
	c.log.Info(ctx, "System notification delivered.", logging.Entry("userID", message.UserID))
}

func (c *Consumer) Ack(delivery amqp091.Delivery) {
	if err := delivery.Ack(false); err != nil {
		c.log.Error(context.Background(), "Could not ACK AMQP message.", logging.Entry("err", err))
	}
}
