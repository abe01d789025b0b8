package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrialBalanceRow represents a single row in a trial balance report
type TrialBalanceRow struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"` // Debit minus credit
}

// TrialBalance is the trial balance as of a point in time.
type TrialBalance struct {
	AsOf        time.Time         `json:"asOf"`
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  decimal.Decimal   `json:"totalDebit"`
	TotalCredit decimal.Decimal   `json:"totalCredit"`
}

// NewTrialBalance fills each row's balance and sums the grand totals.
func NewTrialBalance(asOf time.Time, rows []TrialBalanceRow) TrialBalance {
	tb := TrialBalance{AsOf: asOf, Rows: rows, TotalDebit: decimal.Zero, TotalCredit: decimal.Zero}
	for i := range tb.Rows {
		tb.Rows[i].Balance = tb.Rows[i].Debit.Sub(tb.Rows[i].Credit)
		tb.TotalDebit = tb.TotalDebit.Add(tb.Rows[i].Debit)
		tb.TotalCredit = tb.TotalCredit.Add(tb.Rows[i].Credit)
	}
	if tb.Rows == nil {
		tb.Rows = []TrialBalanceRow{}
	}
	return tb
}
