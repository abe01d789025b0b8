package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/SscSPs/greenpages_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every Postgres repository to the same pool and
// transaction scope.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	businessRepo := newPgxBusinessRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UnitOfWork:       newPgxUnitOfWork(dbPool),
		RenewalRepo:      newPgxRenewalRepository(dbPool),
		BusinessRepo:     businessRepo,
		SubscriptionRepo: businessRepo,
		UserRepo:         newPgxUserRepository(dbPool),
		JournalRepo:      newPgxJournalRepository(dbPool),
		ReportingRepo:    newReportingRepository(dbPool),
	}
}
