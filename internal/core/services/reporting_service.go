package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/greenpages_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/greenpages_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/greenpages_backend/internal/core/ports/services"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingService {
	return &reportingService{
		reportingRepo: repo,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// TrialBalance generates a trial balance report as of a specific date
func (s *reportingService) TrialBalance(ctx context.Context, caller domain.Caller, asOf time.Time) (*domain.TrialBalance, error) {
	if err := s.AuthorizeCaller(ctx, caller, domain.OpViewReports); err != nil {
		return nil, err
	}

	rows, err := s.reportingRepo.GetTrialBalanceData(ctx, asOf)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve trial balance data",
			slog.String("asOf", asOf.Format(time.RFC3339)))
		return nil, fmt.Errorf("failed to retrieve trial balance data: %w", err)
	}

	tb := domain.NewTrialBalance(asOf, rows)
	if !tb.TotalDebit.Equal(tb.TotalCredit) {
		// Only possible when ledger rows were written outside the ledger service.
		s.GetLogger(ctx).Error("Trial balance totals differ",
			slog.String("total_debit", tb.TotalDebit.String()),
			slog.String("total_credit", tb.TotalCredit.String()))
	}

	s.LogInfo(ctx, "Trial balance report generated successfully",
		slog.String("asOf", asOf.Format(time.RFC3339)),
		slog.Int("row_count", len(tb.Rows)))
	return &tb, nil
}

// RenewalSummary counts renewal records per status and open records per agent
func (s *reportingService) RenewalSummary(ctx context.Context, caller domain.Caller) (*domain.RenewalSummary, error) {
	if err := s.AuthorizeCaller(ctx, caller, domain.OpViewReports); err != nil {
		return nil, err
	}

	byStatus, err := s.reportingRepo.GetRenewalStatusCounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve renewal status counts")
		return nil, fmt.Errorf("failed to retrieve renewal status counts: %w", err)
	}

	byAgent, err := s.reportingRepo.GetAgentWorkloads(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve agent workloads")
		return nil, fmt.Errorf("failed to retrieve agent workloads: %w", err)
	}

	s.LogInfo(ctx, "Renewal summary generated successfully",
		slog.Int("statuses", len(byStatus)),
		slog.Int("agents", len(byAgent)))
	return &domain.RenewalSummary{ByStatus: byStatus, ByAgent: byAgent}, nil
}
