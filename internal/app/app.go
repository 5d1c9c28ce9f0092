package app

import (
	"context"
	"fmt"
	"healthmate/internal/app/deps"
	"healthmate/internal/app/services"
	"healthmate/internal/http/handlers/auth"
	getpermission "healthmate/internal/http/handlers/notifications/get_permission"
	requestpermission "healthmate/internal/http/handlers/notifications/request_permission"
	setchannel "healthmate/internal/http/handlers/notifications/set_channel"
	dismissbanner "healthmate/internal/http/handlers/profiles/dismiss_banner"
	"healthmate/internal/http/handlers/profiles/events"
	createreminder "healthmate/internal/http/handlers/reminders/create_reminder"
	deletereminder "healthmate/internal/http/handlers/reminders/delete_reminder"
	listreminders "healthmate/internal/http/handlers/reminders/list_reminders"
	togglereminder "healthmate/internal/http/handlers/reminders/toggle_reminder"
	"healthmate/internal/scheduler"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// InitWatcher starts the registry of per-profile pollers. Pollers are
// created by event stream subscriptions.
func InitWatcher(deps *deps.Deps, s *services.Services) (*scheduler.Watcher, func()) {
	ctx, cancel := context.WithCancel(context.Background())
	watcher := scheduler.NewWatcher(ctx, deps.Logger, s.CheckDueReminders, deps.Config.PollInterval, deps.Metrics)
	return watcher, func() {
		cancel()
		watcher.Close()
	}
}

func InitHttpServer(deps *deps.Deps, s *services.Services, watcher *scheduler.Watcher) *http.Server {
	profileRouter := chi.NewRouter()
	profileRouter.Use(auth.SetUserIDToContext)
	profileRouter.Method(http.MethodGet, "/reminders", listreminders.New(s.ListReminders))
	profileRouter.Method(http.MethodPost, "/reminders", createreminder.New(s.CreateReminder))
	profileRouter.Method(http.MethodPatch, "/reminders/{reminderID}/active", togglereminder.New(s.ToggleReminder))
	profileRouter.Method(http.MethodDelete, "/reminders/{reminderID}", deletereminder.New(s.DeleteReminder))
	profileRouter.Method(http.MethodGet, "/events", events.New(deps.Logger, deps.SseServer, watcher))
	profileRouter.Method(http.MethodPost, "/banner/dismiss", dismissbanner.New(s.DismissBanner))

	notificationsRouter := chi.NewRouter()
	notificationsRouter.Use(auth.SetUserIDToContext)
	notificationsRouter.Method(http.MethodGet, "/permission", getpermission.New(s.GetNotificationPermission))
	notificationsRouter.Method(http.MethodPost, "/permission", requestpermission.New(s.RequestNotificationPermission))
	notificationsRouter.Method(http.MethodPut, "/channel", setchannel.New(s.SetNotificationChannel))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/profiles/{profileID}", profileRouter)
	router.Mount("/notifications", notificationsRouter)
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
