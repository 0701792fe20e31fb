package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/zlog"

	"github.com/evently/notifier/internal/api/handlers/dispatch"
	"github.com/evently/notifier/internal/api/router"
	"github.com/evently/notifier/internal/api/server"
	"github.com/evently/notifier/internal/config"
	"github.com/evently/notifier/internal/processor"
	"github.com/evently/notifier/internal/repository/deliverylog"
	"github.com/evently/notifier/internal/repository/inbox"
	"github.com/evently/notifier/internal/repository/mailqueue"
	notifrepo "github.com/evently/notifier/internal/repository/notification"
	userrepo "github.com/evently/notifier/internal/repository/user"
	"github.com/evently/notifier/internal/sender"
	"github.com/evently/notifier/internal/worker"
	"github.com/evently/notifier/pkg/push"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	notifications := notifrepo.NewRepository(db)
	users := userrepo.NewRepository(db)
	inboxRepo := inbox.NewRepository(db)
	mailQueue := mailqueue.NewRepository(db)
	logs := deliverylog.NewRepository(db)

	pushClient := push.NewClient(cfg.Push.Endpoint, cfg.Push.APIKey)

	inAppSender := sender.NewInApp(inboxRepo)
	emailSender := sender.NewEmail(mailQueue)
	pushSender := sender.NewPush(pushClient, users, inAppSender)

	proc := processor.New(
		users, notifications, logs,
		pushSender, emailSender, inAppSender,
		cfg.Dispatch.MaxAttempts,
	)

	dispatcher := worker.NewDispatcher(notifications, proc, cfg.Dispatch.BatchLimit, cfg.Retry)
	cleaner := worker.NewCleaner(notifications, cfg.Cleanup.Retention, cfg.Cleanup.BatchLimit, cfg.Retry)

	go dispatcher.Run(ctx, cfg.Dispatch.Interval)
	go cleaner.Run(ctx, cfg.Cleanup.Interval)

	handler := dispatch.NewHandler(dispatcher)
	r := router.New(handler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close master DB")
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Error().Err(err).Int("slave", i).Msg("failed to close slave DB")
		}
	}
}
