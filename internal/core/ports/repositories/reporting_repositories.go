package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/greenpages_backend/internal/core/domain"
)

// ReportingRepository defines operations for retrieving report data
type ReportingRepository interface {
	// GetTrialBalanceData retrieves per-account debit and credit totals as of a specific date
	GetTrialBalanceData(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error)

	// GetRenewalStatusCounts counts renewal records per status
	GetRenewalStatusCounts(ctx context.Context) ([]domain.RenewalStatusCount, error)

	// GetAgentWorkloads counts open renewal records per assigned agent
	GetAgentWorkloads(ctx context.Context) ([]domain.AgentWorkload, error)
}
