package services

import (
	"context"
	"time"

	"github.com/SscSPs/greenpages_backend/internal/core/domain"
	"github.com/SscSPs/greenpages_backend/internal/dto"
)

// RenewalReaderSvc defines read operations for renewal records
type RenewalReaderSvc interface {
	// GetRenewal retrieves a record with its contact log.
	GetRenewal(ctx context.Context, caller domain.Caller, renewalID string) (*domain.RenewalRecord, error)

	// ListRenewals retrieves a paginated list of records. Agents only see their own.
	ListRenewals(ctx context.Context, caller domain.Caller, params dto.ListRenewalsParams) (*dto.ListRenewalsResponse, error)
}

// RenewalWriterSvc defines the renewal workflow operations
type RenewalWriterSvc interface {
	// CreateRenewal opens an UNASSIGNED record for a business.
	CreateRenewal(ctx context.Context, caller domain.Caller, req dto.CreateRenewalRequest) (*domain.RenewalRecord, error)

	// UpdateRenewal changes priority, notes or follow-up date of an open record.
	UpdateRenewal(ctx context.Context, caller domain.Caller, renewalID string, req dto.UpdateRenewalRequest) (*domain.RenewalRecord, error)

	// AssignAgent assigns an agent to a record.
	AssignAgent(ctx context.Context, caller domain.Caller, renewalID string, agentID string) (*domain.RenewalRecord, error)

	// BulkAssignAgent assigns an agent to many records, each in its own transaction.
	BulkAssignAgent(ctx context.Context, caller domain.Caller, renewalIDs []string, agentID string) ([]domain.BulkAssignOutcome, error)

	// LogContact appends a contact attempt to a record.
	LogContact(ctx context.Context, caller domain.Caller, renewalID string, req dto.LogContactRequest) (*domain.RenewalContact, error)

	// ProcessDecision applies an ACCEPT, REJECT or POSTPONE decision.
	ProcessDecision(ctx context.Context, caller domain.Caller, renewalID string, req dto.DecisionRequest) (*domain.RenewalRecord, error)
}

// RenewalSvcFacade combines all renewal-related service interfaces
// This is a facade for clients that need access to all operations
type RenewalSvcFacade interface {
	RenewalReaderSvc
	RenewalWriterSvc
}

// RenewalSchedulerSvc defines the timer-driven renewal jobs
type RenewalSchedulerSvc interface {
	// OpenExpiringRenewals creates records for businesses whose subscription ends within the renewal window.
	OpenExpiringRenewals(ctx context.Context, now time.Time) (int, error)

	// ReactivatePostponed returns POSTPONED records whose postponement elapsed to ASSIGNED.
	ReactivatePostponed(ctx context.Context, now time.Time) (int, error)

	// ExpireOverdue closes open records whose subscription ended more than the grace period ago.
	ExpireOverdue(ctx context.Context, now time.Time) (int, error)
}

// NotificationDispatcher publishes renewal events without blocking the caller on delivery.
type NotificationDispatcher interface {
	Publish(ctx context.Context, event domain.RenewalEvent)
}
