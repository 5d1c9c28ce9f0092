package main

import (
	"context"
	"healthmate/internal/app/consumers"
	"healthmate/internal/app/deps"
	"os"
	"os/signal"
	"syscall"

	dl "healthmate/internal/core/domain/logging"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	defer shutdownDeps()

	shutdownConsumers := consumers.InitConsumers(deps)
	defer shutdownConsumers()

	stopCh, closeCh := createChannel()
	defer closeCh()

	deps.Logger.Info(
		context.Background(),
		"System notification delivery has started.",
		dl.Entry("queue", deps.Config.RabbitmqSystemNotificationQueue),
		dl.Entry("telegram", deps.Config.IsTelegramEnabled()),
		dl.Entry("email", deps.Config.IsEmailEnabled()),
	)
	<-stopCh
	deps.Logger.Info(context.Background(), "Stopping system notification delivery.")
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}
