package systemnotification

import (
	"context"
	e "healthmate/internal/core/domain/errors"
	"healthmate/internal/core/domain/logging"
	"healthmate/internal/core/domain/notification"
	"healthmate/internal/core/domain/user"
	"healthmate/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// RabbitMQ hands system notifications over to the notifier worker.
type RabbitMQ struct {
	log       logging.Logger
	publisher publisher
	queue     string
}

func NewRabbitMQ(log logging.Logger, channel publisher, queue string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic(e.NewEmptyArgumentError("queue"))
	}
	return &RabbitMQ{log: log, publisher: channel, queue: queue}
}

func (p *RabbitMQ) Notify(ctx context.Context, userID user.ID, n notification.Notification) error {
	message := schema.SystemNotification{UserID: userID, Notification: n}
	body, err := message.Marshal()
	if err != nil {
		return err
	}
	err = p.publisher.PublishWithContext(ctx, "", p.queue, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Body:         body,
	})
	if err != nil {
		logging.Error(ctx, p.log, err, logging.Entry("queue", p.queue), logging.Entry("userID", userID))
		return err
	}
	p.log.Debug(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("queue", p.queue),
		logging.Entry("userID", userID),
	)
	return nil
}
