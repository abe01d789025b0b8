package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SscSPs/greenpages_backend/internal/core/domain"
)

func TestRenewalContact_Validate(t *testing.T) {
	lat, lon := 30.05, 31.24
	badLat := 95.0
	before := testNow.Add(-time.Hour)

	tests := []struct {
		name       string
		contact    domain.RenewalContact
		wantFields []string
	}{
		{"valid phone call", domain.RenewalContact{ContactMethod: domain.ContactPhone, ContactDate: testNow, DurationMinutes: 5}, nil},
		{"valid visit with location", domain.RenewalContact{ContactMethod: domain.ContactVisit, ContactDate: testNow, Latitude: &lat, Longitude: &lon}, nil},
		{"unknown method", domain.RenewalContact{ContactMethod: "FAX", ContactDate: testNow}, []string{"contactMethod"}},
		{"negative duration", domain.RenewalContact{ContactMethod: domain.ContactSMS, ContactDate: testNow, DurationMinutes: -1}, []string{"durationMinutes"}},
		{"future contact date", domain.RenewalContact{ContactMethod: domain.ContactSMS, ContactDate: testNow.Add(time.Hour)}, []string{"contactDate"}},
		{"latitude without longitude", domain.RenewalContact{ContactMethod: domain.ContactVisit, ContactDate: testNow, Latitude: &lat}, []string{"latitude"}},
		{"latitude out of range", domain.RenewalContact{ContactMethod: domain.ContactVisit, ContactDate: testNow, Latitude: &badLat, Longitude: &lon}, []string{"latitude"}},
		{"next contact before contact", domain.RenewalContact{ContactMethod: domain.ContactPhone, ContactDate: testNow, NextContactDate: &before}, []string{"nextContactDate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := tt.contact.Validate(testNow)
			var fields []string
			for _, v := range res.Violations {
				fields = append(fields, v.Field)
			}
			assert.Equal(t, tt.wantFields, fields)
		})
	}
}
