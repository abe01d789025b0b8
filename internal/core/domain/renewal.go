package domain

import (
	"strings"
	"time"

	"github.com/SscSPs/greenpages_backend/internal/apperrors"
)

// RenewalStatus is the lifecycle state of a renewal record.
type RenewalStatus string

const (
	RenewalUnassigned RenewalStatus = "UNASSIGNED"
	RenewalAssigned   RenewalStatus = "ASSIGNED"
	RenewalInProgress RenewalStatus = "IN_PROGRESS"
	RenewalAccepted   RenewalStatus = "ACCEPTED"
	RenewalRejected   RenewalStatus = "REJECTED"
	RenewalPostponed  RenewalStatus = "POSTPONED"
	RenewalExpired    RenewalStatus = "EXPIRED"
)

// TerminalRenewalStatuses lists the states a record never leaves.
var TerminalRenewalStatuses = []RenewalStatus{RenewalAccepted, RenewalRejected, RenewalExpired}

// IsValid reports whether s is a known status.
func (s RenewalStatus) IsValid() bool {
	switch s {
	case RenewalUnassigned, RenewalAssigned, RenewalInProgress, RenewalAccepted,
		RenewalRejected, RenewalPostponed, RenewalExpired:
		return true
	}
	return false
}

// IsTerminal reports whether s is ACCEPTED, REJECTED or EXPIRED.
func (s RenewalStatus) IsTerminal() bool {
	return s == RenewalAccepted || s == RenewalRejected || s == RenewalExpired
}

// RenewalPriority ranks records for the agent work queue (0 lowest, 3 highest).
type RenewalPriority int

const (
	PriorityLow    RenewalPriority = 0
	PriorityNormal RenewalPriority = 1
	PriorityHigh   RenewalPriority = 2
	PriorityUrgent RenewalPriority = 3
)

// IsValid reports whether p is within 0..3.
func (p RenewalPriority) IsValid() bool {
	return p >= PriorityLow && p <= PriorityUrgent
}

// urgentWindow is how close to expiry a subscription must be for HIGH priority.
const urgentWindow = 7 * 24 * time.Hour

// PriorityForExpiry ranks a renewal by how soon the subscription ends: URGENT
// once it has ended, HIGH within seven days, NORMAL otherwise.
func PriorityForExpiry(endDate, now time.Time) RenewalPriority {
	switch {
	case !endDate.After(now):
		return PriorityUrgent
	case endDate.Sub(now) <= urgentWindow:
		return PriorityHigh
	default:
		return PriorityNormal
	}
}

// RenewalRecord tracks one business's subscription renewal.
type RenewalRecord struct {
	RenewalID        string           `json:"renewalID"`
	BusinessID       string           `json:"businessID"`
	AssignedAgentID  *string          `json:"assignedAgentID"` // Null only while UNASSIGNED
	Status           RenewalStatus    `json:"status"`
	Priority         RenewalPriority  `json:"priority"`
	InternalNotes    string           `json:"internalNotes"`
	NextFollowUpDate *time.Time       `json:"nextFollowUpDate,omitempty"`
	PostponedUntil   *time.Time       `json:"postponedUntil,omitempty"`
	DecisionReason   string           `json:"decisionReason,omitempty"`
	DecidedAt        *time.Time       `json:"decidedAt,omitempty"`
	DecidedBy        *string          `json:"decidedBy,omitempty"`
	SubscriptionID   *string          `json:"subscriptionID,omitempty"`
	JournalEntryID   *string          `json:"journalEntryID,omitempty"`
	Version          int              `json:"version"`
	Contacts         []RenewalContact `json:"contacts,omitempty"`
	AuditFields
}

// NewRenewalRecord builds a fresh UNASSIGNED record.
func NewRenewalRecord(renewalID, businessID string, priority RenewalPriority, actorID string, now time.Time) RenewalRecord {
	return RenewalRecord{
		RenewalID:   renewalID,
		BusinessID:  businessID,
		Status:      RenewalUnassigned,
		Priority:    priority,
		Version:     1,
		AuditFields: NewAuditFields(actorID, now),
	}
}

// IsAssignedTo reports whether the record is currently assigned to agentID.
func (r *RenewalRecord) IsAssignedTo(agentID string) bool {
	return r.AssignedAgentID != nil && *r.AssignedAgentID == agentID
}

func (r *RenewalRecord) invalidState(operation string) error {
	return &apperrors.InvalidStateError{
		Entity:    "renewal",
		ID:        r.RenewalID,
		State:     string(r.Status),
		Operation: operation,
	}
}

// AssignAgent sets the assigned agent. UNASSIGNED moves to ASSIGNED; other
// non-terminal states keep their status.
func (r *RenewalRecord) AssignAgent(agentID, actorID string, now time.Time) error {
	if r.Status.IsTerminal() {
		return r.invalidState("assign agent to")
	}
	if r.Status == RenewalUnassigned {
		r.Status = RenewalAssigned
	}
	r.AssignedAgentID = &agentID
	r.Touch(actorID, now)
	return nil
}

// RecordContact applies a logged contact: ASSIGNED moves to IN_PROGRESS.
func (r *RenewalRecord) RecordContact(contact RenewalContact, actorID string, now time.Time) error {
	if r.Status != RenewalAssigned && r.Status != RenewalInProgress {
		return r.invalidState("log contact on")
	}
	r.Status = RenewalInProgress
	if contact.NextContactDate != nil {
		next := *contact.NextContactDate
		r.NextFollowUpDate = &next
	}
	r.Touch(actorID, now)
	return nil
}

// CanDecide reports whether a decision may be processed in the current state.
func (r *RenewalRecord) CanDecide() bool {
	switch r.Status {
	case RenewalAssigned, RenewalInProgress, RenewalPostponed:
		return true
	}
	return false
}

// CheckDecidable returns an InvalidStateError when decision cannot be processed
// in the current state.
func (r *RenewalRecord) CheckDecidable(decision DecisionType) error {
	if !r.CanDecide() {
		return r.invalidState(strings.ToLower(string(decision)))
	}
	return nil
}

func (r *RenewalRecord) decide(status RenewalStatus, reason, actorID string, now time.Time) {
	r.Status = status
	r.DecisionReason = reason
	decidedAt := now
	decidedBy := actorID
	r.DecidedAt = &decidedAt
	r.DecidedBy = &decidedBy
	r.Touch(actorID, now)
}

// Accept moves the record to ACCEPTED and links the resulting subscription and
// optional journal entry.
func (r *RenewalRecord) Accept(subscriptionID string, journalEntryID *string, reason, actorID string, now time.Time) error {
	if !r.CanDecide() {
		return r.invalidState("accept")
	}
	r.SubscriptionID = &subscriptionID
	r.JournalEntryID = journalEntryID
	r.PostponedUntil = nil
	r.decide(RenewalAccepted, reason, actorID, now)
	return nil
}

// Reject moves the record to REJECTED.
func (r *RenewalRecord) Reject(reason, actorID string, now time.Time) error {
	if !r.CanDecide() {
		return r.invalidState("reject")
	}
	r.PostponedUntil = nil
	r.decide(RenewalRejected, reason, actorID, now)
	return nil
}

// Postpone moves the record to POSTPONED until the given time.
func (r *RenewalRecord) Postpone(until time.Time, reason, actorID string, now time.Time) error {
	if !r.CanDecide() {
		return r.invalidState("postpone")
	}
	if !until.After(now) {
		return apperrors.NewValidationError("postponeUntil", "must be in the future")
	}
	u := until
	r.PostponedUntil = &u
	r.NextFollowUpDate = &u
	r.Status = RenewalPostponed
	r.DecisionReason = reason
	r.Touch(actorID, now)
	return nil
}

// Reactivate returns a POSTPONED record whose postponement elapsed to ASSIGNED.
func (r *RenewalRecord) Reactivate(actorID string, now time.Time) error {
	if r.Status != RenewalPostponed {
		return r.invalidState("reactivate")
	}
	if r.PostponedUntil != nil && r.PostponedUntil.After(now) {
		return r.invalidState("reactivate (postponement not elapsed)")
	}
	r.Status = RenewalAssigned
	r.PostponedUntil = nil
	r.Touch(actorID, now)
	return nil
}

// Expire closes a non-terminal record as EXPIRED.
func (r *RenewalRecord) Expire(actorID string, now time.Time) error {
	if r.Status.IsTerminal() {
		return r.invalidState("expire")
	}
	r.PostponedUntil = nil
	r.decide(RenewalExpired, "subscription lapsed without a decision", actorID, now)
	return nil
}

// ApplyUpdate changes the editable work-queue fields of a non-terminal record.
func (r *RenewalRecord) ApplyUpdate(priority *RenewalPriority, internalNotes *string, nextFollowUpDate *time.Time, actorID string, now time.Time) error {
	if r.Status.IsTerminal() {
		return r.invalidState("update")
	}
	var res ValidationResult
	if priority != nil && !priority.IsValid() {
		res.Add("priority", "must be between 0 and 3")
	}
	if err := res.Err(); err != nil {
		return err
	}
	if priority != nil {
		r.Priority = *priority
	}
	if internalNotes != nil {
		r.InternalNotes = *internalNotes
	}
	if nextFollowUpDate != nil {
		next := *nextFollowUpDate
		r.NextFollowUpDate = &next
	}
	r.Touch(actorID, now)
	return nil
}

// RenewalFilter narrows renewal listings.
type RenewalFilter struct {
	Status     *RenewalStatus
	AgentID    *string
	BusinessID *string
	Priority   *RenewalPriority
}

// BulkAssignOutcome is the per-record result of a bulk assignment.
type BulkAssignOutcome struct {
	RenewalID string         `json:"renewalID"`
	Success   bool           `json:"success"`
	ErrorKind string         `json:"errorKind,omitempty"`
	Message   string         `json:"message,omitempty"`
	Record    *RenewalRecord `json:"record,omitempty"`
}

// RenewalStatusCount is one row of the renewal summary report.
type RenewalStatusCount struct {
	Status RenewalStatus `json:"status"`
	Count  int           `json:"count"`
}

// AgentWorkload counts the open records assigned to one agent.
type AgentWorkload struct {
	AgentID   string `json:"agentID"`
	AgentName string `json:"agentName"`
	Open      int    `json:"open"`
}

// RenewalSummary aggregates renewal records for the manager dashboard.
type RenewalSummary struct {
	ByStatus []RenewalStatusCount `json:"byStatus"`
	ByAgent  []AgentWorkload      `json:"byAgent"`
}
