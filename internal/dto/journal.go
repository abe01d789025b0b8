package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/greenpages_backend/internal/core/domain"
)

// JournalLineRequest is one debit or credit line of a new entry.
type JournalLineRequest struct {
	AccountCode string          `json:"accountCode"`
	Debit       decimal.Decimal `json:"debit" swaggertype:"string" example:"100.00"`
	Credit      decimal.Decimal `json:"credit" swaggertype:"string" example:"0"`
	Memo        string          `json:"memo"`
}

// CreateJournalEntryRequest defines the data needed to post a manual journal entry.
type CreateJournalEntryRequest struct {
	Description string               `json:"description"`
	EntryDate   *time.Time           `json:"entryDate"` // Optional, defaults to now
	Lines       []JournalLineRequest `json:"lines"`
}

// ToJournalEntry converts the request to an unsaved domain entry.
func (r CreateJournalEntryRequest) ToJournalEntry() domain.JournalEntry {
	entry := domain.JournalEntry{
		Description: r.Description,
		Source:      domain.SourceManual,
		Lines:       make([]domain.JournalLine, len(r.Lines)),
	}
	if r.EntryDate != nil {
		entry.EntryDate = *r.EntryDate
	}
	for i, l := range r.Lines {
		entry.Lines[i] = domain.JournalLine{
			LineNo:      i + 1,
			AccountCode: l.AccountCode,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Memo:        l.Memo,
		}
	}
	return entry
}

// ListJournalEntriesParams defines the query parameters for listing and exporting entries.
type ListJournalEntriesParams struct {
	Source    *string    `form:"source" binding:"omitempty,oneof=MANUAL RENEWAL_PAYMENT"`
	FromDate  *time.Time `form:"fromDate" time_format:"2006-01-02"`
	ToDate    *time.Time `form:"toDate" time_format:"2006-01-02"`
	Limit     int        `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string    `form:"nextToken"`
}

// ToFilter converts the query parameters to a domain filter.
func (p ListJournalEntriesParams) ToFilter() domain.JournalFilter {
	f := domain.JournalFilter{FromDate: p.FromDate, ToDate: p.ToDate}
	if p.Source != nil {
		s := domain.JournalSource(*p.Source)
		f.Source = &s
	}
	return f
}

// JournalLineResponse defines the data returned for a journal line.
type JournalLineResponse struct {
	LineNo      int             `json:"lineNo"`
	AccountCode string          `json:"accountCode"`
	Debit       decimal.Decimal `json:"debit" swaggertype:"string"`
	Credit      decimal.Decimal `json:"credit" swaggertype:"string"`
	Memo        string          `json:"memo"`
}

// JournalEntryResponse defines the data returned for a journal entry.
type JournalEntryResponse struct {
	EntryID     string                `json:"entryID"`
	Description string                `json:"description"`
	EntryDate   time.Time             `json:"entryDate"`
	Source      domain.JournalSource  `json:"source"`
	SourceRef   *string               `json:"sourceRef,omitempty"`
	Lines       []JournalLineResponse `json:"lines"`
	CreatedAt   time.Time             `json:"createdAt"`
	CreatedBy   string                `json:"createdBy"`
}

// CreateJournalEntryResponse returns the id of a posted entry.
type CreateJournalEntryResponse struct {
	EntryID string `json:"entryID"`
}

// ListJournalEntriesResponse wraps a page of journal entries.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToJournalEntryResponse converts a domain.JournalEntry to JournalEntryResponse DTO.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	lines := make([]JournalLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = JournalLineResponse{
			LineNo:      l.LineNo,
			AccountCode: l.AccountCode,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Memo:        l.Memo,
		}
	}
	return JournalEntryResponse{
		EntryID:     e.EntryID,
		Description: e.Description,
		EntryDate:   e.EntryDate,
		Source:      e.Source,
		SourceRef:   e.SourceRef,
		Lines:       lines,
		CreatedAt:   e.CreatedAt,
		CreatedBy:   e.CreatedBy,
	}
}

// ToJournalEntryResponses converts a slice of domain.JournalEntry to []JournalEntryResponse.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	responses := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToJournalEntryResponse(&entries[i])
	}
	return responses
}
