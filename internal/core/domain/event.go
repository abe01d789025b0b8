package domain

import "time"

// RenewalEventType names a renewal state change published to the dispatcher.
type RenewalEventType string

const (
	EventRenewalCreated     RenewalEventType = "RENEWAL_CREATED"
	EventAgentAssigned      RenewalEventType = "AGENT_ASSIGNED"
	EventContactLogged      RenewalEventType = "CONTACT_LOGGED"
	EventRenewalAccepted    RenewalEventType = "RENEWAL_ACCEPTED"
	EventRenewalRejected    RenewalEventType = "RENEWAL_REJECTED"
	EventRenewalPostponed   RenewalEventType = "RENEWAL_POSTPONED"
	EventRenewalReactivated RenewalEventType = "RENEWAL_REACTIVATED"
	EventRenewalExpired     RenewalEventType = "RENEWAL_EXPIRED"
)

// RenewalEvent is a fire-and-forget notification about a renewal record.
type RenewalEvent struct {
	Type       RenewalEventType  `json:"type"`
	RenewalID  string            `json:"renewalID"`
	BusinessID string            `json:"businessID"`
	AgentID    *string           `json:"agentID,omitempty"`
	ActorID    string            `json:"actorID"`
	OccurredAt time.Time         `json:"occurredAt"`
	Payload    map[string]string `json:"payload,omitempty"`
}

// NewRenewalEvent builds an event describing the current state of rec.
func NewRenewalEvent(t RenewalEventType, rec *RenewalRecord, actorID string, now time.Time) RenewalEvent {
	return RenewalEvent{
		Type:       t,
		RenewalID:  rec.RenewalID,
		BusinessID: rec.BusinessID,
		AgentID:    rec.AssignedAgentID,
		ActorID:    actorID,
		OccurredAt: now,
		Payload:    map[string]string{"status": string(rec.Status)},
	}
}
