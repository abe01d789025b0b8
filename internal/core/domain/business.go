package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Business is a directory listing whose subscription is renewed.
type Business struct {
	BusinessID  string `json:"businessID"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Governorate string `json:"governorate"`
	City        string `json:"city"`
	District    string `json:"district"`
	IsActive    bool   `json:"isActive"`
}

// Package is a sellable subscription plan.
type Package struct {
	PackageID    string          `json:"packageID"`
	Name         string          `json:"name"`
	DurationDays int             `json:"durationDays"`
	Price        decimal.Decimal `json:"price"`
	IsActive     bool            `json:"isActive"`
}

// Subscription binds a business to a package for a period. A business has at
// most one active subscription.
type Subscription struct {
	SubscriptionID string    `json:"subscriptionID"`
	BusinessID     string    `json:"businessID"`
	PackageID      string    `json:"packageID"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	IsActive       bool      `json:"isActive"`
}

// ExpiringBusiness is a business whose active subscription ends soon, with no open renewal.
type ExpiringBusiness struct {
	BusinessID     string
	SubscriptionID string
	EndDate        time.Time
}
