package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/greenpages_backend/internal/apperrors"
	"github.com/SscSPs/greenpages_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/greenpages_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/greenpages_backend/internal/core/ports/services"
	"github.com/SscSPs/greenpages_backend/internal/dto"
	"github.com/SscSPs/greenpages_backend/internal/utils/export"
	"github.com/SscSPs/greenpages_backend/internal/utils/pagination"
)

// ledgerService validates and persists journal entries.
type ledgerService struct {
	BaseService
	uow         portsrepo.UnitOfWork
	journalRepo portsrepo.JournalRepositoryFacade
	metrics     portssvc.WorkflowMetrics
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithLedgerClock overrides the service clock.
func WithLedgerClock(clock func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.Clock = clock
	}
}

// WithLedgerMetrics sets the metrics sink.
func WithLedgerMetrics(m portssvc.WorkflowMetrics) LedgerServiceOption {
	return func(s *ledgerService) {
		if m != nil {
			s.metrics = m
		}
	}
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(uow portsrepo.UnitOfWork, journalRepo portsrepo.JournalRepositoryFacade, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		uow:         uow,
		journalRepo: journalRepo,
		metrics:     noopMetrics{},
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// ValidateAndPost validates a manual entry and persists it atomically.
func (s *ledgerService) ValidateAndPost(ctx context.Context, caller domain.Caller, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error) {
	if err := s.AuthorizeCaller(ctx, caller, domain.OpPostJournal); err != nil {
		return nil, err
	}

	entry := req.ToJournalEntry()
	entry.CreatedBy = caller.UserID
	return s.post(ctx, entry)
}

// PostSystemEntry validates and persists an entry produced by the application.
func (s *ledgerService) PostSystemEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	if entry.CreatedBy == "" {
		entry.CreatedBy = domain.SystemCaller.UserID
	}
	return s.post(ctx, entry)
}

func (s *ledgerService) post(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error) {
	now := s.Now()
	entry.EntryID = uuid.NewString()
	entry.CreatedAt = now
	if entry.EntryDate.IsZero() {
		entry.EntryDate = now
	}
	if entry.Source == "" {
		entry.Source = domain.SourceManual
	}

	if err := domain.ValidateJournalEntry(entry); err != nil {
		s.LogFailure(ctx, err, "Journal entry rejected", slog.String("description", entry.Description))
		return nil, err
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		accounts, err := s.journalRepo.FindAccountsByCodes(ctx, entry.AccountCodes())
		if err != nil {
			return fmt.Errorf("failed to load accounts: %w", err)
		}
		if err := checkAccounts(entry, accounts); err != nil {
			return err
		}
		if err := s.journalRepo.SaveJournalEntry(ctx, entry); err != nil {
			return fmt.Errorf("failed to save journal entry: %w", err)
		}
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to post journal entry", slog.String("entry_id", entry.EntryID))
		return nil, err
	}

	s.metrics.JournalPosted(entry.Source)
	debit, _ := entry.Totals()
	s.LogInfo(ctx, "Journal entry posted",
		slog.String("entry_id", entry.EntryID),
		slog.String("source", string(entry.Source)),
		slog.Int("lines", len(entry.Lines)),
		slog.String("total", debit.StringFixed(domain.MinorUnitPlaces)))
	return &entry, nil
}

// checkAccounts reports every line whose account is unknown or inactive.
func checkAccounts(entry domain.JournalEntry, accounts map[string]domain.LedgerAccount) error {
	var res domain.ValidationResult
	for i, l := range entry.Lines {
		field := fmt.Sprintf("lines[%d].accountCode", i)
		acc, ok := accounts[l.AccountCode]
		switch {
		case !ok:
			res.Add(field, fmt.Sprintf("account %s does not exist", l.AccountCode))
		case !acc.IsActive:
			res.Add(field, fmt.Sprintf("account %s is inactive", l.AccountCode))
		}
	}
	return res.Err()
}

// GetJournalEntry retrieves a specific entry with its lines.
func (s *ledgerService) GetJournalEntry(ctx context.Context, caller domain.Caller, entryID string) (*domain.JournalEntry, error) {
	if err := s.AuthorizeCaller(ctx, caller, domain.OpViewJournal); err != nil {
		return nil, err
	}

	entry, err := s.journalRepo.FindJournalEntryByID(ctx, entryID)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
		}
		s.LogError(ctx, err, "Failed to get journal entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to load journal entry %s: %w", entryID, err)
	}
	return entry, nil
}

func validateJournalParams(params dto.ListJournalEntriesParams) error {
	if params.FromDate != nil && params.ToDate != nil && params.ToDate.Before(*params.FromDate) {
		return apperrors.NewValidationError("toDate", "must not be before fromDate")
	}
	return nil
}

// ListJournalEntries retrieves a paginated list of entries.
func (s *ledgerService) ListJournalEntries(ctx context.Context, caller domain.Caller, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error) {
	if err := s.AuthorizeCaller(ctx, caller, domain.OpViewJournal); err != nil {
		return nil, err
	}
	if err := validateJournalParams(params); err != nil {
		return nil, err
	}

	limit := pagination.ClampLimit(params.Limit)
	entries, nextToken, err := s.journalRepo.ListJournalEntries(ctx, params.ToFilter(), limit, params.NextToken)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to list journal entries")
		return nil, err
	}
	return &dto.ListJournalEntriesResponse{Entries: dto.ToJournalEntryResponses(entries), NextToken: nextToken}, nil
}

// ExportJournalEntries pages through every entry matching params and writes
// them to w as an XLSX workbook.
func (s *ledgerService) ExportJournalEntries(ctx context.Context, caller domain.Caller, params dto.ListJournalEntriesParams, w io.Writer) error {
	if err := s.AuthorizeCaller(ctx, caller, domain.OpViewJournal); err != nil {
		return err
	}
	if err := validateJournalParams(params); err != nil {
		return err
	}

	wb, err := export.NewJournalWorkbook(caller.UserID)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := wb.Close(); cerr != nil {
			s.LogError(ctx, cerr, "Failed to close workbook")
		}
	}()

	filter := params.ToFilter()
	token := params.NextToken
	for {
		entries, next, err := s.journalRepo.ListJournalEntries(ctx, filter, pagination.MaxLimit, token)
		if err != nil {
			s.LogFailure(ctx, err, "Failed to list journal entries for export")
			return err
		}
		if err := wb.Append(entries); err != nil {
			return err
		}
		if next == nil {
			break
		}
		token = next
	}

	if _, err := wb.WriteTo(w); err != nil {
		s.LogError(ctx, err, "Failed to write journal export")
		return fmt.Errorf("failed to write journal export: %w", err)
	}
	s.LogInfo(ctx, "Journal entries exported", slog.Int("rows", wb.Rows()))
	return nil
}
