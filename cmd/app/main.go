package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/Skirmish_Go/internal/bootstrap"
	"github.com/osse101/Skirmish_Go/internal/config"
	"github.com/osse101/Skirmish_Go/internal/database"
	"github.com/osse101/Skirmish_Go/internal/idle"
	"github.com/osse101/Skirmish_Go/internal/mission"
	"github.com/osse101/Skirmish_Go/internal/scheduler"
	"github.com/osse101/Skirmish_Go/internal/server"
	"github.com/osse101/Skirmish_Go/internal/worker"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		// .env schema checks are advisory when the env is injected directly
		slog.Warn("Environment validation failed", "error", err)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bestiary, err := mission.LoadBestiary(cfg.BestiaryPath)
	if err != nil {
		return fmt.Errorf("%s: %w", bootstrap.ErrMsgFailedLoadBestiary, err)
	}

	store, err := bootstrap.OpenDailyStore(ctx, cfg)
	if err != nil {
		return err
	}

	missions := mission.NewService(bestiary, cfg.MaxRounds)
	daily := idle.NewService(store.Store, missions, cfg.Location(), nil)

	pool := worker.NewPool(bootstrap.BackgroundWorkers, bootstrap.BackgroundQueueSize, 0)
	pool.Start()
	sched := scheduler.New(pool)
	sched.ScheduleNow(cfg.PruneInterval, idle.NewPruneJob(store.Pruner, cfg.Retention()))

	var dbPool database.Pool
	if store.DBPool != nil {
		dbPool = store.DBPool
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
		DBPool:         dbPool,
		Missions:       missions,
		Idle:           daily,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:    srv,
		Scheduler: sched,
		Pool:      pool,
		Store:     store,
	})

	return err
}
