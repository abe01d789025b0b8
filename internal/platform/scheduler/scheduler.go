package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	portssvc "github.com/SscSPs/greenpages_backend/internal/core/ports/services"
	"github.com/SscSPs/greenpages_backend/internal/core/services"
	"github.com/SscSPs/greenpages_backend/internal/middleware"
	"github.com/SscSPs/greenpages_backend/internal/platform/config"
)

// jobTimeout bounds a single job run.
const jobTimeout = 10 * time.Minute

// Scheduler runs the renewal jobs on their cron schedules in UTC.
// Overlapping runs of the same job are skipped.
type Scheduler struct {
	cron   *cron.Cron
	svc    portssvc.RenewalSchedulerSvc
	logger *slog.Logger
	now    func() time.Time
}

// New registers the renewal jobs of svc on the schedules in cfg.
func New(cfg *config.Config, svc portssvc.RenewalSchedulerSvc, logger *slog.Logger) (*Scheduler, error) {
	cl := cronLogger{logger: logger.With(slog.String("component", "cron"))}
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		svc:    svc,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}

	jobs := []struct {
		name string
		spec string
		run  func(ctx context.Context, now time.Time) (int, error)
	}{
		{services.JobOpenExpiring, cfg.ScanCron, svc.OpenExpiringRenewals},
		{services.JobReactivatePostponed, cfg.ReactivateCron, svc.ReactivatePostponed},
		{services.JobExpireOverdue, cfg.ExpireCron, svc.ExpireOverdue},
	}
	for _, job := range jobs {
		if _, err := s.cron.AddFunc(job.spec, func() { s.RunJob(job.name, job.run) }); err != nil {
			return nil, fmt.Errorf("failed to schedule %s %q: %w", job.name, job.spec, err)
		}
		logger.Info("Scheduled renewal job", slog.String("job", job.name), slog.String("spec", job.spec))
	}
	return s, nil
}

// RunJob runs one job immediately with a request-scoped logger.
func (s *Scheduler) RunJob(name string, run func(ctx context.Context, now time.Time) (int, error)) {
	logger := s.logger.With(slog.String("job", name))
	ctx, cancel := context.WithTimeout(middleware.WithLogger(context.Background(), logger), jobTimeout)
	defer cancel()

	start := time.Now()
	n, err := run(ctx, s.now())
	if err != nil {
		logger.Error("Renewal job failed", slog.String("error", err.Error()), slog.Duration("elapsed", time.Since(start)))
		return
	}
	logger.Info("Renewal job finished", slog.Int("processed", n), slog.Duration("elapsed", time.Since(start)))
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() { s.cron.Start() }

// Stop stops scheduling and returns a context that is done once running jobs finish.
func (s *Scheduler) Stop() context.Context { return s.cron.Stop() }

// Entries returns the number of registered jobs.
func (s *Scheduler) Entries() int { return len(s.cron.Entries()) }

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append([]interface{}{slog.String("error", err.Error())}, keysAndValues...)...)
}
