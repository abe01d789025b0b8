package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/greenpages_backend/internal/apperrors"
	"github.com/SscSPs/greenpages_backend/internal/core/domain"
)

// schedulerBatchSize bounds the records handled by one job run.
const schedulerBatchSize = 500

// Scheduler job names used in logs and metrics.
const (
	JobOpenExpiring        = "open_expiring_renewals"
	JobReactivatePostponed = "reactivate_postponed"
	JobExpireOverdue       = "expire_overdue"
)

// OpenExpiringRenewals creates UNASSIGNED records for businesses whose active
// subscription ends within the renewal window and that have no open record.
// Subscriptions that ended before the expiry grace period are left to ExpireOverdue.
func (s *renewalService) OpenExpiringRenewals(ctx context.Context, now time.Time) (int, error) {
	lapsedBefore := now.Add(-s.expiryGrace)
	businesses, err := s.businessRepo.ListExpiringBusinesses(ctx, lapsedBefore, now.Add(s.renewalWindow), schedulerBatchSize)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expiring businesses")
		return 0, fmt.Errorf("failed to list expiring businesses: %w", err)
	}

	created, failed := 0, 0
	for _, b := range businesses {
		if b.EndDate.Before(lapsedBefore) {
			continue
		}
		rec := domain.NewRenewalRecord(uuid.NewString(), b.BusinessID, domain.PriorityForExpiry(b.EndDate, now), domain.SystemCaller.UserID, now)
		opened := false
		err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
			_, err := s.renewalRepo.FindOpenRenewalByBusiness(ctx, b.BusinessID)
			switch {
			case err == nil:
				return nil
			case !isNotFound(err):
				return err
			}
			if err := s.renewalRepo.SaveRenewal(ctx, rec); err != nil {
				if errors.Is(err, apperrors.ErrDuplicate) {
					return nil
				}
				return err
			}
			opened = true
			return nil
		})
		if err != nil {
			failed++
			s.LogError(ctx, err, "Failed to open renewal", slog.String("business_id", b.BusinessID))
			continue
		}
		if opened {
			created++
			s.metrics.RenewalTransition("create", rec.Status)
			s.publish(ctx, domain.EventRenewalCreated, &rec, domain.SystemCaller.UserID, now)
		}
	}

	s.metrics.SchedulerRun(JobOpenExpiring, created, failed)
	s.LogInfo(ctx, "Expiring subscriptions scanned",
		slog.Int("candidates", len(businesses)),
		slog.Int("created", created),
		slog.Int("failed", failed))
	return created, nil
}

// ReactivatePostponed returns POSTPONED records whose postponement elapsed to ASSIGNED.
func (s *renewalService) ReactivatePostponed(ctx context.Context, now time.Time) (int, error) {
	due, err := s.renewalRepo.ListPostponedDue(ctx, now, schedulerBatchSize)
	if err != nil {
		s.LogError(ctx, err, "Failed to list postponed renewals")
		return 0, fmt.Errorf("failed to list postponed renewals: %w", err)
	}

	n := s.applyToEach(ctx, JobReactivatePostponed, due, domain.EventRenewalReactivated, "reactivate",
		func(rec *domain.RenewalRecord) error {
			return rec.Reactivate(domain.SystemCaller.UserID, now)
		}, now)
	return n, nil
}

// ExpireOverdue closes open records whose subscription ended more than the
// grace period before now.
func (s *renewalService) ExpireOverdue(ctx context.Context, now time.Time) (int, error) {
	overdue, err := s.renewalRepo.ListOverdueOpen(ctx, now.Add(-s.expiryGrace), schedulerBatchSize)
	if err != nil {
		s.LogError(ctx, err, "Failed to list overdue renewals")
		return 0, fmt.Errorf("failed to list overdue renewals: %w", err)
	}

	n := s.applyToEach(ctx, JobExpireOverdue, overdue, domain.EventRenewalExpired, "expire",
		func(rec *domain.RenewalRecord) error {
			return rec.Expire(domain.SystemCaller.UserID, now)
		}, now)
	return n, nil
}

// applyToEach runs transition on every record in its own transaction. Failures
// are logged and counted; they do not stop the run.
func (s *renewalService) applyToEach(ctx context.Context, job string, records []domain.RenewalRecord, event domain.RenewalEventType, operation string, transition func(rec *domain.RenewalRecord) error, now time.Time) int {
	processed, failed := 0, 0
	for _, candidate := range records {
		rec, err := s.mutate(ctx, candidate.RenewalID, func(_ context.Context, rec *domain.RenewalRecord) error {
			return transition(rec)
		})
		if err != nil {
			failed++
			s.LogFailure(ctx, err, "Scheduler item failed",
				slog.String("job", job),
				slog.String("renewal_id", candidate.RenewalID))
			continue
		}
		processed++
		s.metrics.RenewalTransition(operation, rec.Status)
		s.publish(ctx, event, rec, domain.SystemCaller.UserID, now)
	}

	s.metrics.SchedulerRun(job, processed, failed)
	s.LogInfo(ctx, "Scheduler job finished",
		slog.String("job", job),
		slog.Int("candidates", len(records)),
		slog.Int("processed", processed),
		slog.Int("failed", failed))
	return processed
}
