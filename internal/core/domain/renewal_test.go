package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/greenpages_backend/internal/apperrors"
	"github.com/SscSPs/greenpages_backend/internal/core/domain"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func newRecord(t *testing.T, status domain.RenewalStatus) *domain.RenewalRecord {
	t.Helper()
	rec := domain.NewRenewalRecord("r1", "b1", domain.PriorityNormal, "manager-1", testNow)
	if status != domain.RenewalUnassigned {
		agent := "agent-1"
		rec.AssignedAgentID = &agent
	}
	rec.Status = status
	return &rec
}

func TestNewRenewalRecord(t *testing.T) {
	rec := domain.NewRenewalRecord("r1", "b1", domain.PriorityHigh, "manager-1", testNow)

	assert.Equal(t, domain.RenewalUnassigned, rec.Status)
	assert.Nil(t, rec.AssignedAgentID)
	assert.Equal(t, 1, rec.Version)
	assert.Equal(t, "manager-1", rec.CreatedBy)
	assert.Equal(t, testNow, rec.LastUpdatedAt)
}

func TestRenewalRecord_AssignAgent(t *testing.T) {
	tests := []struct {
		name       string
		from       domain.RenewalStatus
		wantStatus domain.RenewalStatus
		wantErr    bool
	}{
		{"unassigned becomes assigned", domain.RenewalUnassigned, domain.RenewalAssigned, false},
		{"reassign keeps assigned", domain.RenewalAssigned, domain.RenewalAssigned, false},
		{"reassign keeps in progress", domain.RenewalInProgress, domain.RenewalInProgress, false},
		{"reassign keeps postponed", domain.RenewalPostponed, domain.RenewalPostponed, false},
		{"accepted is terminal", domain.RenewalAccepted, domain.RenewalAccepted, true},
		{"rejected is terminal", domain.RenewalRejected, domain.RenewalRejected, true},
		{"expired is terminal", domain.RenewalExpired, domain.RenewalExpired, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecord(t, tt.from)
			err := rec.AssignAgent("agent-2", "manager-1", testNow)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidState)
				assert.Equal(t, tt.from, rec.Status)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Status)
			assert.True(t, rec.IsAssignedTo("agent-2"))
		})
	}
}

func TestRenewalRecord_RecordContact(t *testing.T) {
	next := testNow.Add(48 * time.Hour)
	contact := domain.RenewalContact{ContactMethod: domain.ContactPhone, ContactDate: testNow, NextContactDate: &next}

	t.Run("before assignment fails", func(t *testing.T) {
		rec := newRecord(t, domain.RenewalUnassigned)
		err := rec.RecordContact(contact, "agent-1", testNow)
		assert.ErrorIs(t, err, apperrors.ErrInvalidState)
		assert.Equal(t, domain.RenewalUnassigned, rec.Status)
	})

	t.Run("first contact moves to in progress", func(t *testing.T) {
		rec := newRecord(t, domain.RenewalAssigned)
		require.NoError(t, rec.RecordContact(contact, "agent-1", testNow))
		assert.Equal(t, domain.RenewalInProgress, rec.Status)
		require.NotNil(t, rec.NextFollowUpDate)
		assert.Equal(t, next, *rec.NextFollowUpDate)
	})

	t.Run("terminal record fails", func(t *testing.T) {
		rec := newRecord(t, domain.RenewalRejected)
		assert.ErrorIs(t, rec.RecordContact(contact, "agent-1", testNow), apperrors.ErrInvalidState)
	})

	t.Run("postponed record fails", func(t *testing.T) {
		rec := newRecord(t, domain.RenewalPostponed)
		assert.ErrorIs(t, rec.RecordContact(contact, "agent-1", testNow), apperrors.ErrInvalidState)
	})
}

func TestRenewalRecord_Decisions(t *testing.T) {
	t.Run("accept sets links and decision metadata", func(t *testing.T) {
		rec := newRecord(t, domain.RenewalInProgress)
		journalID := "j1"
		require.NoError(t, rec.Accept("s1", &journalID, "paid", "agent-1", testNow))

		assert.Equal(t, domain.RenewalAccepted, rec.Status)
		assert.Equal(t, "s1", *rec.SubscriptionID)
		assert.Equal(t, "j1", *rec.JournalEntryID)
		assert.Equal(t, "agent-1", *rec.DecidedBy)
		assert.Equal(t, testNow, *rec.DecidedAt)
	})

	t.Run("second decision after terminal fails", func(t *testing.T) {
		rec := newRecord(t, domain.RenewalAssigned)
		require.NoError(t, rec.Reject("not interested", "agent-1", testNow))

		assert.ErrorIs(t, rec.Reject("again", "agent-1", testNow), apperrors.ErrInvalidState)
		assert.ErrorIs(t, rec.Accept("s1", nil, "", "agent-1", testNow), apperrors.ErrInvalidState)
		assert.ErrorIs(t, rec.Postpone(testNow.Add(time.Hour), "", "agent-1", testNow), apperrors.ErrInvalidState)
	})

	t.Run("unassigned record cannot be decided", func(t *testing.T) {
		rec := newRecord(t, domain.RenewalUnassigned)
		assert.ErrorIs(t, rec.Accept("s1", nil, "", "agent-1", testNow), apperrors.ErrInvalidState)
	})

	t.Run("postpone requires a future date", func(t *testing.T) {
		rec := newRecord(t, domain.RenewalAssigned)
		err := rec.Postpone(testNow.Add(-time.Hour), "", "agent-1", testNow)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Equal(t, domain.RenewalAssigned, rec.Status)
	})

	t.Run("postponed record can be accepted", func(t *testing.T) {
		rec := newRecord(t, domain.RenewalAssigned)
		require.NoError(t, rec.Postpone(testNow.Add(24*time.Hour), "call next week", "agent-1", testNow))
		assert.Equal(t, domain.RenewalPostponed, rec.Status)

		require.NoError(t, rec.Accept("s1", nil, "", "agent-1", testNow))
		assert.Nil(t, rec.PostponedUntil)
	})
}

func TestRenewalRecord_Reactivate(t *testing.T) {
	rec := newRecord(t, domain.RenewalAssigned)
	until := testNow.Add(24 * time.Hour)
	require.NoError(t, rec.Postpone(until, "", "agent-1", testNow))

	assert.ErrorIs(t, rec.Reactivate("system", testNow), apperrors.ErrInvalidState)

	require.NoError(t, rec.Reactivate("system", until))
	assert.Equal(t, domain.RenewalAssigned, rec.Status)
	assert.Nil(t, rec.PostponedUntil)
	assert.True(t, rec.IsAssignedTo("agent-1"))

	assert.ErrorIs(t, rec.Reactivate("system", until), apperrors.ErrInvalidState)
}

func TestRenewalRecord_Expire(t *testing.T) {
	for _, status := range []domain.RenewalStatus{
		domain.RenewalUnassigned, domain.RenewalAssigned, domain.RenewalInProgress, domain.RenewalPostponed,
	} {
		rec := newRecord(t, status)
		require.NoError(t, rec.Expire("system", testNow), status)
		assert.Equal(t, domain.RenewalExpired, rec.Status)
	}

	for _, status := range domain.TerminalRenewalStatuses {
		rec := newRecord(t, status)
		assert.ErrorIs(t, rec.Expire("system", testNow), apperrors.ErrInvalidState, status)
	}
}

func TestRenewalRecord_ApplyUpdate(t *testing.T) {
	rec := newRecord(t, domain.RenewalAssigned)
	bad := domain.RenewalPriority(7)
	assert.ErrorIs(t, rec.ApplyUpdate(&bad, nil, nil, "manager-1", testNow), apperrors.ErrValidation)

	urgent := domain.PriorityUrgent
	notes := "VIP customer"
	require.NoError(t, rec.ApplyUpdate(&urgent, &notes, nil, "manager-1", testNow))
	assert.Equal(t, domain.PriorityUrgent, rec.Priority)
	assert.Equal(t, "VIP customer", rec.InternalNotes)

	closed := newRecord(t, domain.RenewalAccepted)
	assert.ErrorIs(t, closed.ApplyUpdate(&urgent, nil, nil, "manager-1", testNow), apperrors.ErrInvalidState)
}

func TestPriorityForExpiry(t *testing.T) {
	assert.Equal(t, domain.PriorityUrgent, domain.PriorityForExpiry(testNow.Add(-time.Hour), testNow))
	assert.Equal(t, domain.PriorityUrgent, domain.PriorityForExpiry(testNow, testNow))
	assert.Equal(t, domain.PriorityHigh, domain.PriorityForExpiry(testNow.Add(7*24*time.Hour), testNow))
	assert.Equal(t, domain.PriorityNormal, domain.PriorityForExpiry(testNow.Add(8*24*time.Hour), testNow))
}

func TestRenewalRecord_CheckDecidable(t *testing.T) {
	assert.NoError(t, newRecord(t, domain.RenewalPostponed).CheckDecidable(domain.DecisionAccept))

	err := newRecord(t, domain.RenewalAccepted).CheckDecidable(domain.DecisionReject)
	var stateErr *apperrors.InvalidStateError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, "reject", stateErr.Operation)
	assert.Equal(t, "ACCEPTED", stateErr.State)
}
