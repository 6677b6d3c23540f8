package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ombank/teller/internal/adapter/restapi"
	"github.com/ombank/teller/internal/adapter/sessionfile"
	"github.com/ombank/teller/internal/config"
	"github.com/ombank/teller/internal/ui"
	"github.com/ombank/teller/internal/usecase/accountcache"
	"github.com/ombank/teller/internal/usecase/notify"
	"github.com/ombank/teller/internal/usecase/session"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	}))

	// 1. Configuration
	cfg := config.Load(logger)

	// 2. Session persistence and API client. The token source reads the
	// live session, so requests pick up a login or logout immediately.
	sessionRepo := sessionfile.NewStore(cfg.SessionFile)

	var sessions *session.Service
	api, err := restapi.NewClient(
		&http.Client{Timeout: cfg.HTTPTimeout},
		cfg.APIBaseURL,
		func() string { return sessions.Current().Token },
		logger,
	)
	if err != nil {
		log.Fatalf("Failed to create API client: %v", err)
	}
	sessions = session.NewService(api, sessionRepo, logger)

	// 3. Restore the persisted session, if any, before the first dispatch.
	sessions.Restore()

	// 4. Shared state: notification slot and account cache.
	notifier := notify.NewNotifier(cfg.NotificationTTL)
	defer notifier.Close()

	cache := accountcache.NewCache(api, notifier)

	// 5. Run the terminal app until exit or signal.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := ui.NewApp(os.Stdin, os.Stdout, api, sessions, cache, notifier, logger)
	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatalf("Client exited with error: %v", err)
	}
}

func logLevel() slog.Level {
	if os.Getenv("OMBANK_DEBUG") != "" {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}
