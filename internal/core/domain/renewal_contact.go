package domain

import "time"

// ContactMethod is how an agent reached the business.
type ContactMethod string

const (
	ContactPhone    ContactMethod = "PHONE"
	ContactVisit    ContactMethod = "VISIT"
	ContactWhatsApp ContactMethod = "WHATSAPP"
	ContactEmail    ContactMethod = "EMAIL"
	ContactSMS      ContactMethod = "SMS"
)

// IsValid reports whether m is a known contact method.
func (m ContactMethod) IsValid() bool {
	switch m {
	case ContactPhone, ContactVisit, ContactWhatsApp, ContactEmail, ContactSMS:
		return true
	}
	return false
}

// ContactOutcome is the result of a contact attempt.
type ContactOutcome string

const (
	OutcomeInterested        ContactOutcome = "INTERESTED"
	OutcomeNotInterested     ContactOutcome = "NOT_INTERESTED"
	OutcomeNoAnswer          ContactOutcome = "NO_ANSWER"
	OutcomeCallbackRequested ContactOutcome = "CALLBACK_REQUESTED"
	OutcomeAgreed            ContactOutcome = "AGREED"
	OutcomeRefused           ContactOutcome = "REFUSED"
)

// IsValid reports whether o is a known outcome.
func (o ContactOutcome) IsValid() bool {
	switch o {
	case OutcomeInterested, OutcomeNotInterested, OutcomeNoAnswer,
		OutcomeCallbackRequested, OutcomeAgreed, OutcomeRefused:
		return true
	}
	return false
}

// RenewalContact is an immutable log entry of one contact attempt.
type RenewalContact struct {
	ContactID       string          `json:"contactID"`
	RenewalID       string          `json:"renewalID"`
	ContactMethod   ContactMethod   `json:"contactMethod"`
	ContactDate     time.Time       `json:"contactDate"`
	DurationMinutes int             `json:"durationMinutes"`
	Outcome         *ContactOutcome `json:"outcome,omitempty"`
	Notes           string          `json:"notes"`
	Latitude        *float64        `json:"latitude,omitempty"`
	Longitude       *float64        `json:"longitude,omitempty"`
	NextContactDate *time.Time      `json:"nextContactDate,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
}

// Validate checks the contact's fields. now bounds the contact date.
func (c RenewalContact) Validate(now time.Time) ValidationResult {
	var res ValidationResult
	if !c.ContactMethod.IsValid() {
		res.Add("contactMethod", "must be one of PHONE, VISIT, WHATSAPP, EMAIL, SMS")
	}
	if c.DurationMinutes < 0 {
		res.Add("durationMinutes", "must be zero or greater")
	}
	if c.Outcome != nil && !c.Outcome.IsValid() {
		res.Add("outcome", "is not a known outcome")
	}
	if c.ContactDate.IsZero() {
		res.Add("contactDate", "is required")
	} else if c.ContactDate.After(now) {
		res.Add("contactDate", "must not be in the future")
	}
	if (c.Latitude == nil) != (c.Longitude == nil) {
		res.Add("latitude", "latitude and longitude must be supplied together")
	}
	if c.Latitude != nil && (*c.Latitude < -90 || *c.Latitude > 90) {
		res.Add("latitude", "must be between -90 and 90")
	}
	if c.Longitude != nil && (*c.Longitude < -180 || *c.Longitude > 180) {
		res.Add("longitude", "must be between -180 and 180")
	}
	if c.NextContactDate != nil && !c.ContactDate.IsZero() && c.NextContactDate.Before(c.ContactDate) {
		res.Add("nextContactDate", "must not be before contactDate")
	}
	return res
}
