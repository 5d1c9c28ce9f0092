package main

import (
	"context"
	"errors"
	"healthmate/internal/app"
	"healthmate/internal/app/deps"
	"healthmate/internal/app/services"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	dl "healthmate/internal/core/domain/logging"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	services := services.InitServices(deps)
	watcher, stopWatcher := app.InitWatcher(deps, services)

	httpServer := app.InitHttpServer(deps, services, watcher)
	go start(httpServer, deps)

	stopCh, closeCh := createChannel()
	defer closeCh()

	<-stopCh
	shutdown(context.Background(), httpServer, deps, func() {
		stopWatcher()
		shutdownDeps()
	})
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}

func start(server *http.Server, deps *deps.Deps) {
	deps.Logger.Info(
		context.Background(),
		"HTTP server has started.",
		dl.Entry("address", server.Addr),
		dl.Entry("isTestMode", deps.Config.IsTestMode),
		dl.Entry("storeBackend", deps.Config.StoreBackend),
		dl.Entry("notificationDelivery", deps.Config.NotificationDelivery),
		dl.Entry("pollInterval", deps.Config.PollInterval.String()),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	} else {
		deps.Logger.Info(context.Background(), "HTTP service is stopping gracefully.")
	}
}

func shutdown(ctx context.Context, server *http.Server, deps *deps.Deps, shutDownDeps func()) {
	ctx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()

	// Event streams never finish on their own, so they are closed together
	// with the SSE server instead of waiting for Shutdown.
	server.RegisterOnShutdown(deps.SseServer.Close)
	if err := server.Shutdown(ctx); err != nil {
		deps.Logger.Warning(ctx, "HTTP server did not shut down in time.", dl.Entry("err", err))
	}

	shutDownDeps()
	deps.Logger.Info(ctx, "HTTP server has shutdowned.")
}
