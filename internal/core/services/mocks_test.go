package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/greenpages_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/greenpages_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/greenpages_backend/internal/core/ports/services"
	"github.com/SscSPs/greenpages_backend/internal/dto"
)

// --- UnitOfWork running fn without a transaction ---
type passthroughUoW struct{}

func (passthroughUoW) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// --- Mock RenewalRepository ---
type MockRenewalRepository struct {
	mock.Mock
}

var _ portsrepo.RenewalRepositoryFacade = (*MockRenewalRepository)(nil)

func (m *MockRenewalRepository) FindRenewalByID(ctx context.Context, renewalID string) (*domain.RenewalRecord, error) {
	args := m.Called(ctx, renewalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// Hand out a copy so the service cannot mutate the fixture
	rec := *args.Get(0).(*domain.RenewalRecord)
	return &rec, args.Error(1)
}

func (m *MockRenewalRepository) FindRenewalByIDForUpdate(ctx context.Context, renewalID string) (*domain.RenewalRecord, error) {
	args := m.Called(ctx, renewalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	rec := *args.Get(0).(*domain.RenewalRecord)
	return &rec, args.Error(1)
}

func (m *MockRenewalRepository) FindOpenRenewalByBusiness(ctx context.Context, businessID string) (*domain.RenewalRecord, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RenewalRecord), args.Error(1)
}

func (m *MockRenewalRepository) ListRenewals(ctx context.Context, filter domain.RenewalFilter, limit int, nextToken *string) ([]domain.RenewalRecord, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	next, _ := args.Get(1).(*string)
	return args.Get(0).([]domain.RenewalRecord), next, args.Error(2)
}

func (m *MockRenewalRepository) ListPostponedDue(ctx context.Context, now time.Time, limit int) ([]domain.RenewalRecord, error) {
	args := m.Called(ctx, now, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RenewalRecord), args.Error(1)
}

func (m *MockRenewalRepository) ListOverdueOpen(ctx context.Context, cutoff time.Time, limit int) ([]domain.RenewalRecord, error) {
	args := m.Called(ctx, cutoff, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RenewalRecord), args.Error(1)
}

func (m *MockRenewalRepository) SaveRenewal(ctx context.Context, rec domain.RenewalRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *MockRenewalRepository) UpdateRenewal(ctx context.Context, rec domain.RenewalRecord, expectedVersion int) error {
	args := m.Called(ctx, rec, expectedVersion)
	return args.Error(0)
}

func (m *MockRenewalRepository) SaveContact(ctx context.Context, contact domain.RenewalContact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockRenewalRepository) FindContactsByRenewalID(ctx context.Context, renewalID string) ([]domain.RenewalContact, error) {
	args := m.Called(ctx, renewalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RenewalContact), args.Error(1)
}

// --- Mock BusinessReader ---
type MockBusinessRepository struct {
	mock.Mock
}

var _ portsrepo.BusinessReader = (*MockBusinessRepository)(nil)

func (m *MockBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockBusinessRepository) ListExpiringBusinesses(ctx context.Context, endsFrom, endsBefore time.Time, limit int) ([]domain.ExpiringBusiness, error) {
	args := m.Called(ctx, endsFrom, endsBefore, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpiringBusiness), args.Error(1)
}

// --- Mock SubscriptionRepository ---
type MockSubscriptionRepository struct {
	mock.Mock
}

var _ portsrepo.SubscriptionRepository = (*MockSubscriptionRepository)(nil)

func (m *MockSubscriptionRepository) FindPackageByID(ctx context.Context, packageID string) (*domain.Package, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Package), args.Error(1)
}

func (m *MockSubscriptionRepository) FindActiveSubscription(ctx context.Context, businessID string) (*domain.Subscription, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) AssignPackage(ctx context.Context, businessID, packageID string, endDate time.Time, actorID string) (*domain.Subscription, error) {
	args := m.Called(ctx, businessID, packageID, endDate, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserDirectory = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryFacade = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListJournalEntries(ctx context.Context, filter domain.JournalFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	next, _ := args.Get(1).(*string)
	return args.Get(0).([]domain.JournalEntry), next, args.Error(2)
}

func (m *MockJournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) FindAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.LedgerAccount, error) {
	args := m.Called(ctx, codes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.LedgerAccount), args.Error(1)
}

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetTrialBalanceData(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrialBalanceRow), args.Error(1)
}

func (m *MockReportingRepository) GetRenewalStatusCounts(ctx context.Context) ([]domain.RenewalStatusCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RenewalStatusCount), args.Error(1)
}

func (m *MockReportingRepository) GetAgentWorkloads(ctx context.Context) ([]domain.AgentWorkload, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AgentWorkload), args.Error(1)
}

// --- Mock LedgerWriterSvc (as used by the renewal service) ---
type MockLedgerWriter struct {
	mock.Mock
}

var _ portssvc.LedgerWriterSvc = (*MockLedgerWriter)(nil)

func (m *MockLedgerWriter) ValidateAndPost(ctx context.Context, caller domain.Caller, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockLedgerWriter) PostSystemEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

// --- Mock NotificationDispatcher ---
type MockNotifier struct {
	mock.Mock
}

var _ portssvc.NotificationDispatcher = (*MockNotifier)(nil)

func (m *MockNotifier) Publish(ctx context.Context, event domain.RenewalEvent) {
	m.Called(ctx, event)
}

// --- Mock WorkflowMetrics ---
type MockMetrics struct {
	mock.Mock
}

var _ portssvc.WorkflowMetrics = (*MockMetrics)(nil)

func (m *MockMetrics) RenewalTransition(operation string, status domain.RenewalStatus) {
	m.Called(operation, status)
}

func (m *MockMetrics) JournalPosted(source domain.JournalSource) {
	m.Called(source)
}

func (m *MockMetrics) SchedulerRun(job string, processed, failed int) {
	m.Called(job, processed, failed)
}
