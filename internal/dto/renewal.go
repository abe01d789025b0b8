package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/greenpages_backend/internal/core/domain"
)

// CreateRenewalRequest defines the data needed to open a renewal record.
type CreateRenewalRequest struct {
	BusinessID       string                  `json:"businessID" binding:"required"`
	Priority         *domain.RenewalPriority `json:"priority"` // Optional, defaults to NORMAL
	InternalNotes    string                  `json:"internalNotes"`
	NextFollowUpDate *time.Time              `json:"nextFollowUpDate"`
}

// UpdateRenewalRequest defines the editable work-queue fields of a record.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateRenewalRequest struct {
	Priority         *domain.RenewalPriority `json:"priority"`
	InternalNotes    *string                 `json:"internalNotes"`
	NextFollowUpDate *time.Time              `json:"nextFollowUpDate"`
}

// AssignAgentRequest names the agent a record is assigned to.
type AssignAgentRequest struct {
	AgentID string `json:"agentID" binding:"required"`
}

// BulkAssignRequest assigns one agent to many records.
type BulkAssignRequest struct {
	RenewalIDs []string `json:"renewalIDs" binding:"required"`
	AgentID    string   `json:"agentID" binding:"required"`
}

// LogContactRequest describes one contact attempt.
type LogContactRequest struct {
	ContactMethod   domain.ContactMethod   `json:"contactMethod" binding:"required"`
	ContactDate     *time.Time             `json:"contactDate"` // Optional, defaults to now
	DurationMinutes int                    `json:"durationMinutes"`
	Outcome         *domain.ContactOutcome `json:"outcome"`
	Notes           string                 `json:"notes"`
	Latitude        *float64               `json:"latitude"`
	Longitude       *float64               `json:"longitude"`
	NextContactDate *time.Time             `json:"nextContactDate"`
}

// PaymentRequest is money collected with an accepted renewal.
type PaymentRequest struct {
	Amount    decimal.Decimal      `json:"amount" swaggertype:"string" example:"250.00"`
	Method    domain.PaymentMethod `json:"method"`
	Reference string               `json:"reference"`
}

// DecisionRequest carries an agent's decision on a renewal.
type DecisionRequest struct {
	Decision         domain.DecisionType `json:"decision" binding:"required,oneof=ACCEPT REJECT POSTPONE"`
	NewPackageID     *string             `json:"newPackageID"`
	CustomExpiryDate *time.Time          `json:"customExpiryDate"`
	DurationDays     *int                `json:"durationDays"`
	PostponeUntil    *time.Time          `json:"postponeUntil"`
	Reason           string              `json:"reason"`
	Payment          *PaymentRequest     `json:"payment"`
}

// ToDecisionOptions converts the request to the domain decision inputs.
func (r DecisionRequest) ToDecisionOptions() domain.DecisionOptions {
	opts := domain.DecisionOptions{
		NewPackageID:     r.NewPackageID,
		CustomExpiryDate: r.CustomExpiryDate,
		DurationDays:     r.DurationDays,
		PostponeUntil:    r.PostponeUntil,
		Reason:           r.Reason,
	}
	if r.Payment != nil {
		opts.Payment = &domain.Payment{Amount: r.Payment.Amount, Method: r.Payment.Method, Reference: r.Payment.Reference}
	}
	return opts
}

// ListRenewalsParams defines the query parameters for listing renewals.
type ListRenewalsParams struct {
	Status     *string `form:"status" binding:"omitempty,oneof=UNASSIGNED ASSIGNED IN_PROGRESS ACCEPTED REJECTED POSTPONED EXPIRED"`
	AgentID    *string `form:"agentID"`
	BusinessID *string `form:"businessID"`
	Priority   *int    `form:"priority" binding:"omitempty,min=0,max=3"`
	Limit      int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken  *string `form:"nextToken"`
}

// ToFilter converts the query parameters to a domain filter.
func (p ListRenewalsParams) ToFilter() domain.RenewalFilter {
	f := domain.RenewalFilter{AgentID: p.AgentID, BusinessID: p.BusinessID}
	if p.Status != nil {
		s := domain.RenewalStatus(*p.Status)
		f.Status = &s
	}
	if p.Priority != nil {
		pr := domain.RenewalPriority(*p.Priority)
		f.Priority = &pr
	}
	return f
}

// ContactResponse defines the data returned for a contact attempt.
type ContactResponse struct {
	ContactID       string                 `json:"contactID"`
	ContactMethod   domain.ContactMethod   `json:"contactMethod"`
	ContactDate     time.Time              `json:"contactDate"`
	DurationMinutes int                    `json:"durationMinutes"`
	Outcome         *domain.ContactOutcome `json:"outcome,omitempty"`
	Notes           string                 `json:"notes"`
	Latitude        *float64               `json:"latitude,omitempty"`
	Longitude       *float64               `json:"longitude,omitempty"`
	NextContactDate *time.Time             `json:"nextContactDate,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
	CreatedBy       string                 `json:"createdBy"`
}

// RenewalResponse defines the data returned for a renewal record.
type RenewalResponse struct {
	RenewalID        string                 `json:"renewalID"`
	BusinessID       string                 `json:"businessID"`
	AssignedAgentID  *string                `json:"assignedAgentID"`
	Status           domain.RenewalStatus   `json:"status"`
	Priority         domain.RenewalPriority `json:"priority"`
	InternalNotes    string                 `json:"internalNotes"`
	NextFollowUpDate *time.Time             `json:"nextFollowUpDate,omitempty"`
	PostponedUntil   *time.Time             `json:"postponedUntil,omitempty"`
	DecisionReason   string                 `json:"decisionReason,omitempty"`
	DecidedAt        *time.Time             `json:"decidedAt,omitempty"`
	DecidedBy        *string                `json:"decidedBy,omitempty"`
	SubscriptionID   *string                `json:"subscriptionID,omitempty"`
	JournalEntryID   *string                `json:"journalEntryID,omitempty"`
	Version          int                    `json:"version"`
	Contacts         []ContactResponse      `json:"contacts,omitempty"`
	CreatedAt        time.Time              `json:"createdAt"`
	CreatedBy        string                 `json:"createdBy"`
	LastUpdatedAt    time.Time              `json:"lastUpdatedAt"`
	LastUpdatedBy    string                 `json:"lastUpdatedBy"`
}

// ListRenewalsResponse wraps a page of renewal records.
type ListRenewalsResponse struct {
	Renewals  []RenewalResponse `json:"renewals"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// BulkAssignResult is the outcome for one record of a bulk assignment.
type BulkAssignResult struct {
	RenewalID string           `json:"renewalID"`
	Success   bool             `json:"success"`
	ErrorKind string           `json:"errorKind,omitempty"`
	Message   string           `json:"message,omitempty"`
	Renewal   *RenewalResponse `json:"renewal,omitempty"`
}

// BulkAssignResponse reports every record of a bulk assignment.
type BulkAssignResponse struct {
	Results   []BulkAssignResult `json:"results"`
	Succeeded int                `json:"succeeded"`
	Failed    int                `json:"failed"`
}

// ToContactResponse converts a domain.RenewalContact to ContactResponse DTO.
func ToContactResponse(c *domain.RenewalContact) ContactResponse {
	return ContactResponse{
		ContactID:       c.ContactID,
		ContactMethod:   c.ContactMethod,
		ContactDate:     c.ContactDate,
		DurationMinutes: c.DurationMinutes,
		Outcome:         c.Outcome,
		Notes:           c.Notes,
		Latitude:        c.Latitude,
		Longitude:       c.Longitude,
		NextContactDate: c.NextContactDate,
		CreatedAt:       c.CreatedAt,
		CreatedBy:       c.CreatedBy,
	}
}

// ToRenewalResponse converts a domain.RenewalRecord to RenewalResponse DTO.
func ToRenewalResponse(r *domain.RenewalRecord) RenewalResponse {
	resp := RenewalResponse{
		RenewalID:        r.RenewalID,
		BusinessID:       r.BusinessID,
		AssignedAgentID:  r.AssignedAgentID,
		Status:           r.Status,
		Priority:         r.Priority,
		InternalNotes:    r.InternalNotes,
		NextFollowUpDate: r.NextFollowUpDate,
		PostponedUntil:   r.PostponedUntil,
		DecisionReason:   r.DecisionReason,
		DecidedAt:        r.DecidedAt,
		DecidedBy:        r.DecidedBy,
		SubscriptionID:   r.SubscriptionID,
		JournalEntryID:   r.JournalEntryID,
		Version:          r.Version,
		CreatedAt:        r.CreatedAt,
		CreatedBy:        r.CreatedBy,
		LastUpdatedAt:    r.LastUpdatedAt,
		LastUpdatedBy:    r.LastUpdatedBy,
	}
	if len(r.Contacts) > 0 {
		resp.Contacts = make([]ContactResponse, len(r.Contacts))
		for i := range r.Contacts {
			resp.Contacts[i] = ToContactResponse(&r.Contacts[i])
		}
	}
	return resp
}

// ToRenewalResponses converts a slice of domain.RenewalRecord to []RenewalResponse.
func ToRenewalResponses(records []domain.RenewalRecord) []RenewalResponse {
	responses := make([]RenewalResponse, len(records))
	for i := range records {
		responses[i] = ToRenewalResponse(&records[i])
	}
	return responses
}

// ToBulkAssignResponse converts per-record outcomes to the bulk response.
func ToBulkAssignResponse(outcomes []domain.BulkAssignOutcome) BulkAssignResponse {
	resp := BulkAssignResponse{Results: make([]BulkAssignResult, len(outcomes))}
	for i, o := range outcomes {
		res := BulkAssignResult{RenewalID: o.RenewalID, Success: o.Success, ErrorKind: o.ErrorKind, Message: o.Message}
		if o.Record != nil {
			r := ToRenewalResponse(o.Record)
			res.Renewal = &r
		}
		if o.Success {
			resp.Succeeded++
		} else {
			resp.Failed++
		}
		resp.Results[i] = res
	}
	return resp
}
