package services

import (
	portsrepo "github.com/SscSPs/greenpages_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/greenpages_backend/internal/core/ports/services"
	"github.com/SscSPs/greenpages_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, notifier portssvc.NotificationDispatcher, metrics portssvc.WorkflowMetrics) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The ledger comes first since renewal payments are posted through it
	container.Ledger = NewLedgerService(repos.UnitOfWork, repos.JournalRepo, WithLedgerMetrics(metrics))

	renewalOptions := []RenewalServiceOption{
		WithCommissionRate(cfg.CommissionRate),
		WithBulkAssignLimits(cfg.BulkAssignConcurrency, cfg.BulkAssignMaxItems),
		WithRenewalWindow(cfg.RenewalWindow),
		WithExpiryGracePeriod(cfg.ExpiryGracePeriod),
		WithNotifier(notifier),
		WithRenewalMetrics(metrics),
	}
	container.Renewal = NewRenewalService(repos, container.Ledger, renewalOptions...)
	container.Scheduler = NewRenewalScheduler(repos, renewalOptions...)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}
