package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"ttrss_sync/internal/config"
	"ttrss_sync/internal/publisher"
	"ttrss_sync/internal/remote/ttrss"
	"ttrss_sync/internal/scheduler"
	"ttrss_sync/internal/service"
	"ttrss_sync/internal/storage/sqlite"
	"ttrss_sync/internal/track"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	store, err := sqlite.Open(cfg.Database.Path, cfg.Sync.FreshWindow, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	logger.Info("opened database", "path", cfg.Database.Path)

	var notifier service.Notifier
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		notifier = rabbitMQ
	}

	remote := ttrss.New(ttrss.Config{
		URL:            cfg.Server.URL,
		Username:       cfg.Server.Username,
		Password:       cfg.Server.Password,
		Timeout:        cfg.Server.Timeout,
		MaxAttempts:    cfg.Server.Retry.MaxAttempts,
		InitialBackoff: cfg.Server.Retry.InitialBackoff,
		MaxBackoff:     cfg.Server.Retry.MaxBackoff,
	}, logger)

	syncService := service.NewSyncService(
		remote,
		store,
		store,
		store,
		store,
		track.New(),
		notifier,
		logger,
		cfg.Sync,
	)

	sched := scheduler.NewScheduler(syncService, cfg.Sync.Interval, cfg.Sync.PassTimeout, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting ttrss syncer",
		"server", cfg.Server.URL,
		"interval", cfg.Sync.Interval,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
