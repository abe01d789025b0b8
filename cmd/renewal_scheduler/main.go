package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/SscSPs/greenpages_backend/internal/core/services"
	"github.com/SscSPs/greenpages_backend/internal/platform/config"
	"github.com/SscSPs/greenpages_backend/internal/platform/metrics"
	"github.com/SscSPs/greenpages_backend/internal/platform/notify"
	"github.com/SscSPs/greenpages_backend/internal/platform/scheduler"
	"github.com/SscSPs/greenpages_backend/internal/repositories/database/pgsql"
	"github.com/SscSPs/greenpages_backend/pkg/database"
)

func main() {
	runOnce := flag.Bool("once", false, "run every job once and exit")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("service", "renewal_scheduler"))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	notifier, stopNotifier, err := notify.NewDispatcher(ctx, cfg.RedisURL, cfg.NotificationChannel, logger)
	if err != nil {
		logger.Error("Failed to initialize notification dispatcher", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer stopNotifier()

	serviceContainer := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool), notifier, metrics.New(false))

	sched, err := scheduler.New(cfg, serviceContainer.Scheduler, logger)
	if err != nil {
		logger.Error("Failed to schedule renewal jobs", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *runOnce {
		sched.RunJob(services.JobOpenExpiring, serviceContainer.Scheduler.OpenExpiringRenewals)
		sched.RunJob(services.JobReactivatePostponed, serviceContainer.Scheduler.ReactivatePostponed)
		sched.RunJob(services.JobExpireOverdue, serviceContainer.Scheduler.ExpireOverdue)
		return
	}

	sched.Start()
	logger.Info("Renewal scheduler started")

	<-ctx.Done()
	logger.Info("Shutting down renewal scheduler, waiting for running jobs")
	<-sched.Stop().Done()
	logger.Info("Renewal scheduler stopped")
}
