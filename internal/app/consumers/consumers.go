package consumers

import (
	"context"
	"healthmate/internal/app/deps"
	dl "healthmate/internal/core/domain/logging"
	systemnotification "healthmate/internal/rabbitmq/consumers/system_notification"
)

func initSystemNotificationConsumer(deps *deps.Deps) func() {
	if deps.Rabbitmq == nil {
		panic("RABBITMQ_URL must be set to consume system notifications")
	}
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	queue := deps.Config.RabbitmqSystemNotificationQueue
	if err := rabbitmqChannel.DeclareQueue(queue); err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}
	systemNotificationConsumer := systemnotification.New(
		deps.Logger,
		rabbitmqChannel,
		queue,
		deps.DirectSystemNotifier,
	)
	if err = systemNotificationConsumer.Consume(); err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not start RabbitMQ consuming.",
			dl.Entry("err", err),
			dl.Entry("queue", queue),
		)
		panic(err)
	}

	deps.Logger.Info(context.Background(), "Consumer has started.", dl.Entry("queue", queue))
	return func() { rabbitmqChannel.Close() }
}

func InitConsumers(deps *deps.Deps) func() {
	shutdownSystemNotificationConsumer := initSystemNotificationConsumer(deps)

	return func() {
		shutdownSystemNotificationConsumer()
	}
}
