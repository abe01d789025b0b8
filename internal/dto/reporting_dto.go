package dto

import (
	"github.com/shopspring/decimal"

	"github.com/SscSPs/greenpages_backend/internal/core/domain"
)

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	Debit       decimal.Decimal `json:"debit" swaggertype:"string"`
	Credit      decimal.Decimal `json:"credit" swaggertype:"string"`
	Balance     decimal.Decimal `json:"balance" swaggertype:"string"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	AsOf   string                    `json:"asOf"`
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit" swaggertype:"string"`
		Credit decimal.Decimal `json:"credit" swaggertype:"string"`
	} `json:"totals"`
}

// RenewalSummaryResponse represents the renewal dashboard summary
type RenewalSummaryResponse struct {
	ByStatus []domain.RenewalStatusCount `json:"byStatus"`
	ByAgent  []domain.AgentWorkload      `json:"byAgent"`
}

// ToTrialBalanceResponse converts a domain.TrialBalance to TrialBalanceResponse DTO.
func ToTrialBalanceResponse(tb *domain.TrialBalance) TrialBalanceResponse {
	resp := TrialBalanceResponse{
		AsOf: tb.AsOf.Format("2006-01-02"),
		Rows: make([]TrialBalanceRowResponse, len(tb.Rows)),
	}
	for i, row := range tb.Rows {
		resp.Rows[i] = TrialBalanceRowResponse{
			AccountCode: row.AccountCode,
			AccountName: row.AccountName,
			AccountType: string(row.AccountType),
			Debit:       row.Debit,
			Credit:      row.Credit,
			Balance:     row.Balance,
		}
	}
	resp.Totals.Debit = tb.TotalDebit
	resp.Totals.Credit = tb.TotalCredit
	return resp
}

// ToRenewalSummaryResponse converts a domain.RenewalSummary to RenewalSummaryResponse DTO.
func ToRenewalSummaryResponse(s *domain.RenewalSummary) RenewalSummaryResponse {
	resp := RenewalSummaryResponse{ByStatus: s.ByStatus, ByAgent: s.ByAgent}
	if resp.ByStatus == nil {
		resp.ByStatus = []domain.RenewalStatusCount{}
	}
	if resp.ByAgent == nil {
		resp.ByAgent = []domain.AgentWorkload{}
	}
	return resp
}
