package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Seeded chart-of-accounts codes used by renewal payments.
const (
	AccountCash               = "1000"
	AccountWallet             = "1010"
	AccountBank               = "1020"
	AccountCommissionsPayable = "2100"
	AccountSubscriptionIncome = "4000"
	AccountCommissionExpense  = "5100"
)

// LedgerAccount is one entry of the chart of accounts, addressed by code.
type LedgerAccount struct {
	Code        string      `json:"code"` // Primary Key
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
	IsActive    bool        `json:"isActive"`
}

// IsDebitNormal reports whether the account's balance grows with debits.
func (t AccountType) IsDebitNormal() bool {
	return t == Asset || t == Expense
}
