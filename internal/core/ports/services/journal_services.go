package services

import (
	"context"
	"io"

	"github.com/SscSPs/greenpages_backend/internal/core/domain"
	"github.com/SscSPs/greenpages_backend/internal/dto"
)

// LedgerReaderSvc defines read operations for journal data
type LedgerReaderSvc interface {
	// GetJournalEntry retrieves a specific entry with its lines.
	GetJournalEntry(ctx context.Context, caller domain.Caller, entryID string) (*domain.JournalEntry, error)

	// ListJournalEntries retrieves a paginated list of entries.
	ListJournalEntries(ctx context.Context, caller domain.Caller, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error)

	// ExportJournalEntries writes the entries matching params as an XLSX workbook to w.
	ExportJournalEntries(ctx context.Context, caller domain.Caller, params dto.ListJournalEntriesParams, w io.Writer) error
}

// LedgerWriterSvc defines write operations for journal data
type LedgerWriterSvc interface {
	// ValidateAndPost validates a manual entry and persists it atomically.
	ValidateAndPost(ctx context.Context, caller domain.Caller, req dto.CreateJournalEntryRequest) (*domain.JournalEntry, error)

	// PostSystemEntry validates and persists an entry produced by the application
	// itself. It skips role checks and joins the transaction carried by ctx.
	PostSystemEntry(ctx context.Context, entry domain.JournalEntry) (*domain.JournalEntry, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
// This is a facade for clients that need access to all operations
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
