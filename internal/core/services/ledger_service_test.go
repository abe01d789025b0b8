package services_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"

	"github.com/SscSPs/greenpages_backend/internal/apperrors"
	"github.com/SscSPs/greenpages_backend/internal/core/domain"
	portssvc "github.com/SscSPs/greenpages_backend/internal/core/ports/services"
	"github.com/SscSPs/greenpages_backend/internal/core/services"
	"github.com/SscSPs/greenpages_backend/internal/dto"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	journalRepo *MockJournalRepository
	metrics     *MockMetrics
	service     portssvc.LedgerSvcFacade
	now         time.Time
	accountant  domain.Caller
	accounts    map[string]domain.LedgerAccount
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.journalRepo = new(MockJournalRepository)
	suite.metrics = new(MockMetrics)
	suite.now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	suite.accountant = domain.Caller{UserID: "acc-1", Role: domain.RoleAccountant}
	suite.accounts = map[string]domain.LedgerAccount{
		domain.AccountCash:               {Code: domain.AccountCash, Name: "Cash", AccountType: domain.Asset, IsActive: true},
		domain.AccountSubscriptionIncome: {Code: domain.AccountSubscriptionIncome, Name: "Subscription Revenue", AccountType: domain.Revenue, IsActive: true},
	}

	suite.service = services.NewLedgerService(passthroughUoW{}, suite.journalRepo,
		services.WithLedgerClock(func() time.Time { return suite.now }),
		services.WithLedgerMetrics(suite.metrics),
	)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func line(code, debit, credit string) dto.JournalLineRequest {
	return dto.JournalLineRequest{
		AccountCode: code,
		Debit:       decimal.RequireFromString(debit),
		Credit:      decimal.RequireFromString(credit),
	}
}

func (suite *LedgerServiceTestSuite) TestValidateAndPost_Success() {
	req := dto.CreateJournalEntryRequest{
		Description: "Cash sale of a listing upgrade",
		Lines: []dto.JournalLineRequest{
			line(domain.AccountCash, "500.00", "0"),
			line(domain.AccountSubscriptionIncome, "0", "500.00"),
		},
	}
	suite.journalRepo.On("FindAccountsByCodes", mock.Anything, []string{domain.AccountCash, domain.AccountSubscriptionIncome}).
		Return(suite.accounts, nil).Once()
	suite.journalRepo.On("SaveJournalEntry", mock.Anything, mock.MatchedBy(func(e domain.JournalEntry) bool {
		return e.EntryID != "" && e.CreatedBy == "acc-1" && e.Source == domain.SourceManual &&
			e.EntryDate.Equal(suite.now) && e.CreatedAt.Equal(suite.now) && len(e.Lines) == 2
	})).Return(nil).Once()
	suite.metrics.On("JournalPosted", domain.SourceManual).Once()

	entry, err := suite.service.ValidateAndPost(context.Background(), suite.accountant, req)

	suite.Require().NoError(err)
	suite.NotEmpty(entry.EntryID)
	suite.Equal(1, entry.Lines[0].LineNo)
	suite.Equal(2, entry.Lines[1].LineNo)
	suite.journalRepo.AssertExpectations(suite.T())
	suite.metrics.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestValidateAndPost_Unbalanced() {
	req := dto.CreateJournalEntryRequest{
		Description: "Typo in amount",
		Lines: []dto.JournalLineRequest{
			line(domain.AccountCash, "100.00", "0"),
			line(domain.AccountSubscriptionIncome, "0", "90.00"),
		},
	}

	_, err := suite.service.ValidateAndPost(context.Background(), suite.accountant, req)

	suite.Require().ErrorIs(err, apperrors.ErrUnbalancedEntry)
	var unbalanced *apperrors.UnbalancedEntryError
	suite.Require().ErrorAs(err, &unbalanced)
	suite.Equal("100.00", unbalanced.TotalDebit)
	suite.Equal("90.00", unbalanced.TotalCredit)
	suite.journalRepo.AssertNotCalled(suite.T(), "FindAccountsByCodes", mock.Anything, mock.Anything)
	suite.journalRepo.AssertNotCalled(suite.T(), "SaveJournalEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestValidateAndPost_SingleLine() {
	req := dto.CreateJournalEntryRequest{
		Description: "Only one side",
		Lines:       []dto.JournalLineRequest{line(domain.AccountCash, "10.00", "0")},
	}

	_, err := suite.service.ValidateAndPost(context.Background(), suite.accountant, req)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.journalRepo.AssertNotCalled(suite.T(), "SaveJournalEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestValidateAndPost_LineWithDebitAndCredit() {
	req := dto.CreateJournalEntryRequest{
		Description: "Both sides on one line",
		Lines: []dto.JournalLineRequest{
			line(domain.AccountCash, "10.00", "0"),
			line(domain.AccountSubscriptionIncome, "5.00", "15.00"),
		},
	}

	_, err := suite.service.ValidateAndPost(context.Background(), suite.accountant, req)

	suite.Require().ErrorIs(err, apperrors.ErrInvalidLine)
	var lineErr *apperrors.InvalidLineError
	suite.Require().ErrorAs(err, &lineErr)
	suite.Equal(1, lineErr.LineIndex)
}

func (suite *LedgerServiceTestSuite) TestValidateAndPost_UnknownAccount() {
	req := dto.CreateJournalEntryRequest{
		Description: "Posting to a code that does not exist",
		Lines: []dto.JournalLineRequest{
			line(domain.AccountCash, "20.00", "0"),
			line("9999", "0", "20.00"),
		},
	}
	suite.journalRepo.On("FindAccountsByCodes", mock.Anything, []string{domain.AccountCash, "9999"}).
		Return(map[string]domain.LedgerAccount{domain.AccountCash: suite.accounts[domain.AccountCash]}, nil).Once()

	_, err := suite.service.ValidateAndPost(context.Background(), suite.accountant, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	violations := apperrors.Violations(err)
	suite.Require().Len(violations, 1)
	suite.Equal("lines[1].accountCode", violations[0].Field)
	suite.journalRepo.AssertNotCalled(suite.T(), "SaveJournalEntry", mock.Anything, mock.Anything)
	suite.metrics.AssertNotCalled(suite.T(), "JournalPosted", mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestValidateAndPost_InactiveAccount() {
	accounts := map[string]domain.LedgerAccount{
		domain.AccountCash:               suite.accounts[domain.AccountCash],
		domain.AccountSubscriptionIncome: {Code: domain.AccountSubscriptionIncome, AccountType: domain.Revenue, IsActive: false},
	}
	req := dto.CreateJournalEntryRequest{
		Description: "Posting to a closed account",
		Lines: []dto.JournalLineRequest{
			line(domain.AccountCash, "20.00", "0"),
			line(domain.AccountSubscriptionIncome, "0", "20.00"),
		},
	}
	suite.journalRepo.On("FindAccountsByCodes", mock.Anything, mock.Anything).Return(accounts, nil).Once()

	_, err := suite.service.ValidateAndPost(context.Background(), suite.accountant, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(apperrors.Violations(err)[0].Violation, "inactive")
}

func (suite *LedgerServiceTestSuite) TestValidateAndPost_AgentForbidden() {
	agent := domain.Caller{UserID: "agent-1", Role: domain.RoleAgent}

	_, err := suite.service.ValidateAndPost(context.Background(), agent, dto.CreateJournalEntryRequest{})

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *LedgerServiceTestSuite) TestValidateAndPost_SaveFails() {
	req := dto.CreateJournalEntryRequest{
		Description: "Database hiccup",
		Lines: []dto.JournalLineRequest{
			line(domain.AccountCash, "1.00", "0"),
			line(domain.AccountSubscriptionIncome, "0", "1.00"),
		},
	}
	suite.journalRepo.On("FindAccountsByCodes", mock.Anything, mock.Anything).Return(suite.accounts, nil).Once()
	suite.journalRepo.On("SaveJournalEntry", mock.Anything, mock.Anything).Return(errors.New("deadlock detected")).Once()

	_, err := suite.service.ValidateAndPost(context.Background(), suite.accountant, req)

	suite.Require().Error(err)
	suite.Equal(apperrors.KindInternal, apperrors.Kind(err))
	suite.metrics.AssertNotCalled(suite.T(), "JournalPosted", mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostSystemEntry_DefaultsToSystemActor() {
	ref := "r1"
	entry := domain.JournalEntry{
		Description: "Renewal payment for renewal r1",
		Source:      domain.SourceRenewalPayment,
		SourceRef:   &ref,
		Lines: []domain.JournalLine{
			{LineNo: 1, AccountCode: domain.AccountCash, Debit: decimal.NewFromInt(50), Credit: decimal.Zero},
			{LineNo: 2, AccountCode: domain.AccountSubscriptionIncome, Debit: decimal.Zero, Credit: decimal.NewFromInt(50)},
		},
	}
	suite.journalRepo.On("FindAccountsByCodes", mock.Anything, mock.Anything).Return(suite.accounts, nil).Once()
	suite.journalRepo.On("SaveJournalEntry", mock.Anything, mock.MatchedBy(func(e domain.JournalEntry) bool {
		return e.CreatedBy == domain.SystemCaller.UserID && e.Source == domain.SourceRenewalPayment
	})).Return(nil).Once()
	suite.metrics.On("JournalPosted", domain.SourceRenewalPayment).Once()

	posted, err := suite.service.PostSystemEntry(context.Background(), entry)

	suite.Require().NoError(err)
	suite.NotEmpty(posted.EntryID)
	suite.journalRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestGetJournalEntry_NotFound() {
	suite.journalRepo.On("FindJournalEntryByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetJournalEntry(context.Background(), suite.accountant, "missing")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestListJournalEntries_InvertedRange() {
	from := suite.now
	to := suite.now.Add(-24 * time.Hour)

	_, err := suite.service.ListJournalEntries(context.Background(), suite.accountant, dto.ListJournalEntriesParams{FromDate: &from, ToDate: &to})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.journalRepo.AssertNotCalled(suite.T(), "ListJournalEntries", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestListJournalEntries_Success() {
	entries := []domain.JournalEntry{{EntryID: "je-1", Description: "first"}}
	suite.journalRepo.On("ListJournalEntries", mock.Anything, domain.JournalFilter{}, 20, (*string)(nil)).Return(entries, nil, nil).Once()

	resp, err := suite.service.ListJournalEntries(context.Background(), suite.accountant, dto.ListJournalEntriesParams{})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Entries, 1)
	suite.Equal("je-1", resp.Entries[0].EntryID)
	suite.Nil(resp.NextToken)
}

func (suite *LedgerServiceTestSuite) sampleEntry(id string) domain.JournalEntry {
	return domain.JournalEntry{
		EntryID:     id,
		Description: "entry " + id,
		EntryDate:   suite.now,
		Source:      domain.SourceManual,
		CreatedBy:   "acc-1",
		Lines: []domain.JournalLine{
			{LineNo: 1, AccountCode: domain.AccountCash, Debit: decimal.NewFromInt(10), Credit: decimal.Zero},
			{LineNo: 2, AccountCode: domain.AccountSubscriptionIncome, Debit: decimal.Zero, Credit: decimal.NewFromInt(10)},
		},
	}
}

func (suite *LedgerServiceTestSuite) TestExportJournalEntries_PagesThroughAllEntries() {
	token := "page-2"
	suite.journalRepo.On("ListJournalEntries", mock.Anything, mock.Anything, 100, mock.MatchedBy(func(t *string) bool { return t == nil })).
		Return([]domain.JournalEntry{suite.sampleEntry("je-1")}, &token, nil).Once()
	suite.journalRepo.On("ListJournalEntries", mock.Anything, mock.Anything, 100, mock.MatchedBy(func(t *string) bool { return t != nil && *t == token })).
		Return([]domain.JournalEntry{suite.sampleEntry("je-2")}, nil, nil).Once()

	var buf bytes.Buffer
	err := suite.service.ExportJournalEntries(context.Background(), suite.accountant, dto.ListJournalEntriesParams{}, &buf)
	suite.Require().NoError(err)

	f, err := excelize.OpenReader(&buf)
	suite.Require().NoError(err)
	defer f.Close()
	rows, err := f.GetRows("Journal")
	suite.Require().NoError(err)
	suite.Len(rows, 5) // header plus two lines per entry
	suite.journalRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestExportJournalEntries_AgentForbidden() {
	var buf bytes.Buffer
	err := suite.service.ExportJournalEntries(context.Background(), domain.Caller{UserID: "agent-1", Role: domain.RoleAgent}, dto.ListJournalEntriesParams{}, &buf)

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Zero(buf.Len())
}
