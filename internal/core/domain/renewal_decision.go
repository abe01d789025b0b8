package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DecisionType is the outcome an agent chooses for a renewal.
type DecisionType string

const (
	DecisionAccept   DecisionType = "ACCEPT"
	DecisionReject   DecisionType = "REJECT"
	DecisionPostpone DecisionType = "POSTPONE"
)

// PaymentMethod is how the business paid for an accepted renewal.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "CASH"
	PaymentWallet PaymentMethod = "WALLET"
	PaymentBank   PaymentMethod = "BANK"
)

// paymentAccounts maps a payment method to the asset account it debits.
var paymentAccounts = map[PaymentMethod]string{
	PaymentCash:   AccountCash,
	PaymentWallet: AccountWallet,
	PaymentBank:   AccountBank,
}

// IsValid reports whether m is a known payment method.
func (m PaymentMethod) IsValid() bool {
	_, ok := paymentAccounts[m]
	return ok
}

// Payment is money collected while accepting a renewal.
type Payment struct {
	Amount    decimal.Decimal `json:"amount"`
	Method    PaymentMethod   `json:"method"`
	Reference string          `json:"reference"`
}

// DecisionOptions carries the decision-specific inputs.
type DecisionOptions struct {
	NewPackageID     *string
	CustomExpiryDate *time.Time
	DurationDays     *int
	PostponeUntil    *time.Time
	Reason           string
	Payment          *Payment
}

// ValidateDecision checks that the inputs required by decision are present and sane.
func ValidateDecision(decision DecisionType, opts DecisionOptions, now time.Time) ValidationResult {
	var res ValidationResult
	switch decision {
	case DecisionAccept:
		if opts.NewPackageID == nil && opts.CustomExpiryDate == nil && opts.DurationDays == nil {
			res.Add("newPackageId", "one of newPackageId, customExpiryDate or durationDays is required")
		}
		if opts.NewPackageID != nil && *opts.NewPackageID == "" {
			res.Add("newPackageId", "must not be empty")
		}
		if opts.CustomExpiryDate != nil && !opts.CustomExpiryDate.After(now) {
			res.Add("customExpiryDate", "must be in the future")
		}
		if opts.DurationDays != nil && *opts.DurationDays <= 0 {
			res.Add("durationDays", "must be greater than zero")
		}
		if opts.Payment != nil {
			validatePayment(&res, *opts.Payment)
		}
	case DecisionPostpone:
		if opts.PostponeUntil == nil {
			res.Add("postponeUntil", "is required")
		} else if !opts.PostponeUntil.After(now) {
			res.Add("postponeUntil", "must be in the future")
		}
		if opts.Payment != nil {
			res.Add("payment", "is only accepted with ACCEPT")
		}
	case DecisionReject:
		if opts.Payment != nil {
			res.Add("payment", "is only accepted with ACCEPT")
		}
	default:
		res.Add("decision", "must be one of ACCEPT, REJECT, POSTPONE")
	}
	return res
}

func validatePayment(res *ValidationResult, p Payment) {
	if !p.Amount.IsPositive() {
		res.Add("payment.amount", "must be greater than zero")
	} else if !hasMinorUnitPrecision(p.Amount) {
		res.Add("payment.amount", fmt.Sprintf("must have at most %d decimal places", MinorUnitPlaces))
	} else if p.Amount.GreaterThan(MaxAmount) {
		res.Add("payment.amount", "must not exceed "+MaxAmount.StringFixed(MinorUnitPlaces))
	}
	if !p.Method.IsValid() {
		res.Add("payment.method", "must be one of CASH, WALLET, BANK")
	}
}

// ResolveExpiry computes the end date of the subscription granted by an ACCEPT.
// An explicit customExpiryDate wins over durationDays, which wins over the
// package duration. Durations extend the current subscription when it has not
// ended yet, otherwise they start now.
func ResolveExpiry(opts DecisionOptions, current *Subscription, pkg Package, now time.Time) time.Time {
	if opts.CustomExpiryDate != nil {
		return *opts.CustomExpiryDate
	}
	base := now
	if current != nil && current.EndDate.After(now) {
		base = current.EndDate
	}
	if opts.DurationDays != nil {
		return base.AddDate(0, 0, *opts.DurationDays)
	}
	return base.AddDate(0, 0, pkg.DurationDays)
}

// BuildRenewalPaymentEntry builds the journal entry for a renewal payment: the
// payment account against subscription revenue, plus the agent commission
// accrual when commissionRate is positive.
func BuildRenewalPaymentEntry(renewalID string, p Payment, commissionRate decimal.Decimal, actorID string, now time.Time) JournalEntry {
	ref := renewalID
	memo := p.Reference
	entry := JournalEntry{
		Description: fmt.Sprintf("Renewal payment for renewal %s", renewalID),
		EntryDate:   now,
		Source:      SourceRenewalPayment,
		SourceRef:   &ref,
		CreatedAt:   now,
		CreatedBy:   actorID,
		Lines: []JournalLine{
			{AccountCode: paymentAccounts[p.Method], Debit: p.Amount, Credit: decimal.Zero, Memo: memo},
			{AccountCode: AccountSubscriptionIncome, Debit: decimal.Zero, Credit: p.Amount, Memo: memo},
		},
	}
	if commissionRate.IsPositive() {
		commission := p.Amount.Mul(commissionRate).Round(MinorUnitPlaces)
		if commission.IsPositive() {
			entry.Lines = append(entry.Lines,
				JournalLine{AccountCode: AccountCommissionExpense, Debit: commission, Credit: decimal.Zero, Memo: "agent commission"},
				JournalLine{AccountCode: AccountCommissionsPayable, Debit: decimal.Zero, Credit: commission, Memo: "agent commission"},
			)
		}
	}
	for i := range entry.Lines {
		entry.Lines[i].LineNo = i + 1
	}
	return entry
}
