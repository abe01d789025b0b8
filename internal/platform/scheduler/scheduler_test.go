package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/greenpages_backend/internal/middleware"
	"github.com/SscSPs/greenpages_backend/internal/platform/config"
)

type fakeJobs struct {
	calls []time.Time
}

func (f *fakeJobs) OpenExpiringRenewals(ctx context.Context, now time.Time) (int, error) {
	f.calls = append(f.calls, now)
	return 2, nil
}

func (f *fakeJobs) ReactivatePostponed(ctx context.Context, now time.Time) (int, error) {
	return 0, nil
}

func (f *fakeJobs) ExpireOverdue(ctx context.Context, now time.Time) (int, error) {
	return 0, errors.New("db down")
}

func testConfig() *config.Config {
	return &config.Config{ScanCron: "0 2 * * *", ReactivateCron: "*/15 * * * *", ExpireCron: "30 2 * * *"}
}

func TestNew_RegistersAllJobs(t *testing.T) {
	s, err := New(testConfig(), &fakeJobs{}, slog.Default())

	require.NoError(t, err)
	assert.Equal(t, 3, s.Entries())
}

func TestNew_InvalidSpec(t *testing.T) {
	cfg := testConfig()
	cfg.ExpireCron = "every day"

	_, err := New(cfg, &fakeJobs{}, slog.Default())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "expire_overdue")
}

func TestRunJob_PassesClockAndLogger(t *testing.T) {
	jobs := &fakeJobs{}
	s, err := New(testConfig(), jobs, slog.Default())
	require.NoError(t, err)
	fixed := time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	var sawLogger bool
	s.RunJob("probe", func(ctx context.Context, now time.Time) (int, error) {
		sawLogger = middleware.GetLoggerFromCtx(ctx) != slog.Default()
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		return jobs.OpenExpiringRenewals(ctx, now)
	})

	assert.True(t, sawLogger)
	assert.Equal(t, []time.Time{fixed}, jobs.calls)
}

func TestRunJob_ErrorDoesNotPanic(t *testing.T) {
	jobs := &fakeJobs{}
	s, err := New(testConfig(), jobs, slog.Default())
	require.NoError(t, err)

	assert.NotPanics(t, func() { s.RunJob("expire_overdue", jobs.ExpireOverdue) })
}
