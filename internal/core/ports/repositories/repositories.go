package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UnitOfWork       UnitOfWork
	RenewalRepo      RenewalRepositoryFacade
	BusinessRepo     BusinessReader
	SubscriptionRepo SubscriptionRepository
	UserRepo         UserDirectory
	JournalRepo      JournalRepositoryFacade
	ReportingRepo    ReportingRepository
}
