package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/greenpages_backend/internal/apperrors"
)

// MinorUnitPlaces is the number of fractional digits allowed on ledger amounts.
const MinorUnitPlaces = 2

// MaxAmount is the largest amount a ledger column (NUMERIC(14, 2)) can hold.
var MaxAmount = decimal.RequireFromString("999999999999.99")

// MinJournalLines is the minimum number of lines in a journal entry.
const MinJournalLines = 2

// JournalSource records what produced a journal entry.
type JournalSource string

const (
	SourceManual         JournalSource = "MANUAL"
	SourceRenewalPayment JournalSource = "RENEWAL_PAYMENT"
)

// JournalEntry is a balanced double-entry posting composed of lines.
type JournalEntry struct {
	EntryID     string        `json:"entryID"` // Primary Key (UUID)
	Description string        `json:"description"`
	EntryDate   time.Time     `json:"entryDate"`
	Source      JournalSource `json:"source"`
	SourceRef   *string       `json:"sourceRef,omitempty"` // e.g. renewal id for RENEWAL_PAYMENT
	Lines       []JournalLine `json:"lines"`
	CreatedAt   time.Time     `json:"createdAt"`
	CreatedBy   string        `json:"createdBy"`
}

// JournalLine debits or credits one ledger account.
type JournalLine struct {
	LineNo      int             `json:"lineNo"` // 1-based order within the entry
	AccountCode string          `json:"accountCode"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Memo        string          `json:"memo"`
}

// Totals returns the debit and credit sums of the entry.
func (e JournalEntry) Totals() (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, l := range e.Lines {
		debit = debit.Add(l.Debit)
		credit = credit.Add(l.Credit)
	}
	return debit, credit
}

// AccountCodes returns the distinct account codes referenced by the entry, in line order.
func (e JournalEntry) AccountCodes() []string {
	seen := make(map[string]struct{}, len(e.Lines))
	codes := make([]string, 0, len(e.Lines))
	for _, l := range e.Lines {
		if _, ok := seen[l.AccountCode]; ok {
			continue
		}
		seen[l.AccountCode] = struct{}{}
		codes = append(codes, l.AccountCode)
	}
	return codes
}

// validateLine checks the debit/credit rules of a single line.
func validateLine(index int, l JournalLine) error {
	reason := ""
	switch {
	case strings.TrimSpace(l.AccountCode) == "":
		reason = "accountCode is required"
	case l.Debit.IsNegative():
		reason = "debit must not be negative"
	case l.Credit.IsNegative():
		reason = "credit must not be negative"
	case l.Debit.IsPositive() && l.Credit.IsPositive():
		reason = "a line cannot carry both a debit and a credit"
	case !hasMinorUnitPrecision(l.Debit) || !hasMinorUnitPrecision(l.Credit):
		reason = fmt.Sprintf("amounts must have at most %d decimal places", MinorUnitPlaces)
	case l.Debit.GreaterThan(MaxAmount) || l.Credit.GreaterThan(MaxAmount):
		reason = "amounts must not exceed " + MaxAmount.StringFixed(MinorUnitPlaces)
	}
	if reason == "" {
		return nil
	}
	return &apperrors.InvalidLineError{LineIndex: index, Reason: reason}
}

func hasMinorUnitPrecision(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(MinorUnitPlaces))
}

// ValidateJournalEntry checks an entry before it is posted.
//
// Shape problems (missing description, fewer than two lines) are reported as a
// ValidationError, the first broken line as an InvalidLineError and differing
// totals as an UnbalancedEntryError.
func ValidateJournalEntry(e JournalEntry) error {
	var res ValidationResult
	if strings.TrimSpace(e.Description) == "" {
		res.Add("description", "is required")
	}
	if len(e.Lines) < MinJournalLines {
		res.Add("lines", fmt.Sprintf("at least %d lines are required", MinJournalLines))
	}
	if err := res.Err(); err != nil {
		return err
	}

	for i, l := range e.Lines {
		if err := validateLine(i, l); err != nil {
			return err
		}
	}

	debit, credit := e.Totals()
	if !debit.Equal(credit) {
		return &apperrors.UnbalancedEntryError{
			TotalDebit:  debit.StringFixed(MinorUnitPlaces),
			TotalCredit: credit.StringFixed(MinorUnitPlaces),
		}
	}
	return nil
}

// JournalFilter narrows journal listings.
type JournalFilter struct {
	Source   *JournalSource
	FromDate *time.Time
	ToDate   *time.Time
}
