package services

import (
	"context"
	"time"

	"github.com/SscSPs/greenpages_backend/internal/core/domain"
)

// ReportingService produces the manager and accountant read models.
type ReportingService interface {
	// TrialBalance sums posted lines per account for entries dated on or before asOf.
	TrialBalance(ctx context.Context, caller domain.Caller, asOf time.Time) (*domain.TrialBalance, error)

	// RenewalSummary counts renewal records per status and open records per agent
	RenewalSummary(ctx context.Context, caller domain.Caller) (*domain.RenewalSummary, error)
}
