package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/greenpages_backend/internal/core/domain"
)

// RenewalReader defines read operations for renewal records
type RenewalReader interface {
	// FindRenewalByID retrieves a renewal record without its contacts.
	FindRenewalByID(ctx context.Context, renewalID string) (*domain.RenewalRecord, error)

	// FindRenewalByIDForUpdate retrieves a record and locks its row until the
	// surrounding transaction ends.
	FindRenewalByIDForUpdate(ctx context.Context, renewalID string) (*domain.RenewalRecord, error)

	// FindOpenRenewalByBusiness returns the non-terminal record of a business, or ErrNotFound.
	FindOpenRenewalByBusiness(ctx context.Context, businessID string) (*domain.RenewalRecord, error)

	// ListRenewals retrieves a page of records matching filter using token-based pagination.
	// It returns the records, a token for the next page, and an error.
	ListRenewals(ctx context.Context, filter domain.RenewalFilter, limit int, nextToken *string) ([]domain.RenewalRecord, *string, error)

	// ListPostponedDue retrieves POSTPONED records whose postponement ended at or before now.
	ListPostponedDue(ctx context.Context, now time.Time, limit int) ([]domain.RenewalRecord, error)

	// ListOverdueOpen retrieves non-terminal records whose business subscription ended before cutoff.
	ListOverdueOpen(ctx context.Context, cutoff time.Time, limit int) ([]domain.RenewalRecord, error)
}

// RenewalWriter defines write operations for renewal records
type RenewalWriter interface {
	// SaveRenewal persists a new record.
	SaveRenewal(ctx context.Context, rec domain.RenewalRecord) error

	// UpdateRenewal persists rec if the stored version still equals expectedVersion.
	// A mismatch fails with ErrInvalidState.
	UpdateRenewal(ctx context.Context, rec domain.RenewalRecord, expectedVersion int) error
}

// ContactRepository stores the contact log of renewal records
type ContactRepository interface {
	// SaveContact appends a contact attempt.
	SaveContact(ctx context.Context, contact domain.RenewalContact) error

	// FindContactsByRenewalID lists the contacts of a record, oldest first.
	FindContactsByRenewalID(ctx context.Context, renewalID string) ([]domain.RenewalContact, error)
}

// RenewalRepositoryFacade combines all renewal-related repository interfaces
// This is a facade for clients that need access to all operations
type RenewalRepositoryFacade interface {
	RenewalReader
	RenewalWriter
	ContactRepository
}
