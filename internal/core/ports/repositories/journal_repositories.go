package repositories

import (
	"context"

	"github.com/SscSPs/greenpages_backend/internal/core/domain"
)

// JournalReader defines read operations for journal data
type JournalReader interface {
	// FindJournalEntryByID retrieves an entry with its lines.
	FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListJournalEntries retrieves a paginated list of entries with their lines using token-based pagination.
	// It returns the entries, a token for the next page, and an error.
	ListJournalEntries(ctx context.Context, filter domain.JournalFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// JournalWriter defines write operations for journal data
type JournalWriter interface {
	// SaveJournalEntry persists an entry and all of its lines atomically.
	SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error
}

// AccountReader reads the chart of accounts
type AccountReader interface {
	// FindAccountsByCodes returns the accounts found for codes, keyed by code.
	FindAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.LedgerAccount, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
// This is a facade for clients that need access to all operations
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
	AccountReader
}
