package handlers_test

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/greenpages_backend/internal/core/domain"
	portssvc "github.com/SscSPs/greenpages_backend/internal/core/ports/services"
	"github.com/SscSPs/greenpages_backend/internal/dto"
)

// --- Mock RenewalService ---
type MockRenewalService struct {
	mock.Mock
}

func (m *MockRenewalService) GetRenewal(ctx context.Context, caller domain.Caller, renewalID string) (*domain.RenewalRecord, error) {
	args := m.Called(ctx, caller, renewalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RenewalRecord), args.Error(1)
}
func (m *MockRenewalService) ListRenewals(ctx context.Context, caller domain.Caller, params dto.ListRenewalsParams) (*dto.ListRenewalsResponse, error) {
	args := m.Called(ctx, caller, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListRenewalsResponse), args.Error(1)
}
func (m *MockRenewalService) CreateRenewal(ctx context.Context, caller domain.Caller, req dto.CreateRenewalRequest) (*domain.RenewalRecord, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RenewalRecord), args.Error(1)
}
func (m *MockRenewalService) UpdateRenewal(ctx context.Context, caller domain.Caller, renewalID string, req dto.UpdateRenewalRequest) (*domain.RenewalRecord, error) {
	args := m.Called(ctx, caller, renewalID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RenewalRecord), args.Error(1)
}
func (m *MockRenewalService) AssignAgent(ctx context.Context, caller domain.Caller, renewalID string, agentID string) (*domain.RenewalRecord, error) {
	args := m.Called(ctx, caller, renewalID, agentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RenewalRecord), args.Error(1)
}
func (m *MockRenewalService) BulkAssignAgent(ctx context.Context, caller domain.Caller, renewalIDs []string, agentID string) ([]domain.BulkAssignOutcome, error) {
	args := m.Called(ctx, caller, renewalIDs, agentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BulkAssignOutcome), args.Error(1)
}
func (m *MockRenewalService) LogContact(ctx context.Context, caller domain.Caller, renewalID string, req dto.LogContactRequest) (*domain.RenewalContact, error) {
	args := m.Called(ctx, caller, renewalID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RenewalContact), args.Error(1)
}
func (m *MockRenewalService) ProcessDecision(ctx context.Context, caller domain.Caller, renewalID string, req dto.DecisionRequest) (*domain.RenewalRecord, error) {
	args := m.Called(ctx, caller, renewalID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RenewalRecord), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.RenewalSvcFacade = (*MockRenewalService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) GetJournalEntry(ctx context.Context, caller domain.Caller, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, caller, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockLedgerService) ListJournalEntries(ctx context.Context, caller domain.Caller, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	args := m.Called(ctx, caller, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListJournalEntriesResponse), args.Error(1)
}
func (m *MockLedgerService) ExportJournalEntries(ctx context.Context, caller domain.Caller, params dto.ListJournalEntriesParams, w io.Writer) error {
	args := m.Called(ctx, caller, params, w)
	return args.Error(0)
}
func (m *MockLedgerService) ValidateAndPost(ctx context.Context, caller domain.Caller, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}
func (m *MockLedgerService) PostSystemEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) TrialBalance(ctx context.Context, caller domain.Caller, asOf time.Time) (*domain.TrialBalance, error) {
	args := m.Called(ctx, caller, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TrialBalance), args.Error(1)
}
func (m *MockReportingService) RenewalSummary(ctx context.Context, caller domain.Caller) (*domain.RenewalSummary, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RenewalSummary), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.ReportingService = (*MockReportingService)(nil)
