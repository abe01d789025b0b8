package pgsql

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/greenpages_backend/internal/apperrors"
	"github.com/SscSPs/greenpages_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/greenpages_backend/internal/core/ports/repositories"
	"github.com/SscSPs/greenpages_backend/internal/utils/pagination"
)

const renewalColumns = `renewal_id, business_id, assigned_agent_id, status, priority, internal_notes,
	next_follow_up_date, postponed_until, decision_reason, decided_at, decided_by,
	subscription_id, journal_entry_id, version,
	created_at, created_by, last_updated_at, last_updated_by`

const contactColumns = `contact_id, renewal_id, contact_method, contact_date, duration_minutes, outcome,
	notes, latitude, longitude, next_contact_date, created_at, created_by`

type PgxRenewalRepository struct {
	BaseRepository
}

// newPgxRenewalRepository creates a new repository for renewal records and their contacts.
func newPgxRenewalRepository(pool *pgxpool.Pool) portsrepo.RenewalRepositoryFacade {
	return &PgxRenewalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxRenewalRepository implements portsrepo.RenewalRepositoryFacade
var _ portsrepo.RenewalRepositoryFacade = (*PgxRenewalRepository)(nil)

func scanRenewal(row pgx.Row) (domain.RenewalRecord, error) {
	var rec domain.RenewalRecord
	err := row.Scan(
		&rec.RenewalID,
		&rec.BusinessID,
		&rec.AssignedAgentID,
		&rec.Status,
		&rec.Priority,
		&rec.InternalNotes,
		&rec.NextFollowUpDate,
		&rec.PostponedUntil,
		&rec.DecisionReason,
		&rec.DecidedAt,
		&rec.DecidedBy,
		&rec.SubscriptionID,
		&rec.JournalEntryID,
		&rec.Version,
		&rec.CreatedAt,
		&rec.CreatedBy,
		&rec.LastUpdatedAt,
		&rec.LastUpdatedBy,
	)
	return rec, err
}

func collectRenewals(rows pgx.Rows) ([]domain.RenewalRecord, error) {
	defer rows.Close()
	records := []domain.RenewalRecord{}
	for rows.Next() {
		rec, err := scanRenewal(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// FindRenewalByID retrieves a renewal record without its contacts.
func (r *PgxRenewalRepository) FindRenewalByID(ctx context.Context, renewalID string) (*domain.RenewalRecord, error) {
	query := `SELECT ` + renewalColumns + ` FROM renewal_records WHERE renewal_id = $1;`
	rec, err := scanRenewal(r.DB(ctx).QueryRow(ctx, query, renewalID))
	if err != nil {
		return nil, mapDBError(err, "failed to find renewal by ID "+renewalID)
	}
	return &rec, nil
}

// FindRenewalByIDForUpdate retrieves a record with SELECT ... FOR UPDATE so
// concurrent writers of the same record queue behind the first one.
func (r *PgxRenewalRepository) FindRenewalByIDForUpdate(ctx context.Context, renewalID string) (*domain.RenewalRecord, error) {
	query := `SELECT ` + renewalColumns + ` FROM renewal_records WHERE renewal_id = $1 FOR UPDATE;`
	rec, err := scanRenewal(r.DB(ctx).QueryRow(ctx, query, renewalID))
	if err != nil {
		return nil, mapDBError(err, "failed to lock renewal "+renewalID)
	}
	return &rec, nil
}

// FindOpenRenewalByBusiness returns the non-terminal record of a business.
func (r *PgxRenewalRepository) FindOpenRenewalByBusiness(ctx context.Context, businessID string) (*domain.RenewalRecord, error) {
	query := `SELECT ` + renewalColumns + ` FROM renewal_records
		WHERE business_id = $1 AND status NOT IN ` + terminalStatuses + `
		LIMIT 1;`
	rec, err := scanRenewal(r.DB(ctx).QueryRow(ctx, query, businessID))
	if err != nil {
		return nil, mapDBError(err, "failed to find open renewal of business "+businessID)
	}
	return &rec, nil
}

// renewalListQuery builds the keyset-paginated listing query. Pages are ordered
// newest first with renewal_id as the tie-breaker.
func renewalListQuery(filter domain.RenewalFilter, cursor *pagination.Cursor, fetchLimit int) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, strings.ReplaceAll(cond, "?", "$"+strconv.Itoa(len(args))))
	}

	if filter.Status != nil {
		add("status = ?", *filter.Status)
	}
	if filter.AgentID != nil {
		add("assigned_agent_id = ?", *filter.AgentID)
	}
	if filter.BusinessID != nil {
		add("business_id = ?", *filter.BusinessID)
	}
	if filter.Priority != nil {
		add("priority = ?", *filter.Priority)
	}
	if cursor != nil {
		args = append(args, cursor.At, cursor.ID)
		conds = append(conds, "(created_at, renewal_id) < ($"+strconv.Itoa(len(args)-1)+", $"+strconv.Itoa(len(args))+")")
	}

	query := `SELECT ` + renewalColumns + ` FROM renewal_records`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, fetchLimit)
	query += " ORDER BY created_at DESC, renewal_id DESC LIMIT $" + strconv.Itoa(len(args)) + ";"
	return query, args
}

// ListRenewals retrieves a page of records matching filter using token-based pagination.
func (r *PgxRenewalRepository) ListRenewals(ctx context.Context, filter domain.RenewalFilter, limit int, nextToken *string) ([]domain.RenewalRecord, *string, error) {
	if limit <= 0 {
		limit = pagination.DefaultLimit
	}

	var cursor *pagination.Cursor
	if nextToken != nil && *nextToken != "" {
		c, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, err
		}
		cursor = &c
	}

	// Fetch one extra row to learn whether another page exists
	query, args := renewalListQuery(filter, cursor, limit+1)
	rows, err := r.DB(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, nil, mapDBError(err, "failed to list renewals")
	}
	records, err := collectRenewals(rows)
	if err != nil {
		return nil, nil, mapDBError(err, "failed to scan renewal rows")
	}

	next := pagination.NextToken(len(records), limit, func() (time.Time, string) {
		last := records[limit-1]
		return last.CreatedAt, last.RenewalID
	})
	if len(records) > limit {
		records = records[:limit]
	}
	return records, next, nil
}

// ListPostponedDue retrieves POSTPONED records whose postponement ended at or before now.
func (r *PgxRenewalRepository) ListPostponedDue(ctx context.Context, now time.Time, limit int) ([]domain.RenewalRecord, error) {
	query := `SELECT ` + renewalColumns + ` FROM renewal_records
		WHERE status = 'POSTPONED' AND postponed_until <= $1
		ORDER BY postponed_until, renewal_id
		LIMIT $2;`
	rows, err := r.DB(ctx).Query(ctx, query, now, limit)
	if err != nil {
		return nil, mapDBError(err, "failed to list postponed renewals")
	}
	records, err := collectRenewals(rows)
	if err != nil {
		return nil, mapDBError(err, "failed to scan postponed renewal rows")
	}
	return records, nil
}

// ListOverdueOpen retrieves non-terminal records whose business's latest
// subscription ended before cutoff.
func (r *PgxRenewalRepository) ListOverdueOpen(ctx context.Context, cutoff time.Time, limit int) ([]domain.RenewalRecord, error) {
	query := `SELECT ` + renewalColumns + ` FROM renewal_records rr
		WHERE rr.status NOT IN ` + terminalStatuses + `
		  AND (SELECT MAX(s.end_date) FROM subscriptions s WHERE s.business_id = rr.business_id) < $1
		ORDER BY rr.created_at, rr.renewal_id
		LIMIT $2;`
	rows, err := r.DB(ctx).Query(ctx, query, cutoff, limit)
	if err != nil {
		return nil, mapDBError(err, "failed to list overdue renewals")
	}
	records, err := collectRenewals(rows)
	if err != nil {
		return nil, mapDBError(err, "failed to scan overdue renewal rows")
	}
	return records, nil
}

// SaveRenewal persists a new record. A second open record for the same
// business violates renewal_records_one_open_per_business and maps to ErrDuplicate.
func (r *PgxRenewalRepository) SaveRenewal(ctx context.Context, rec domain.RenewalRecord) error {
	query := `INSERT INTO renewal_records (` + renewalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);`
	_, err := r.DB(ctx).Exec(ctx, query,
		rec.RenewalID,
		rec.BusinessID,
		rec.AssignedAgentID,
		rec.Status,
		rec.Priority,
		rec.InternalNotes,
		rec.NextFollowUpDate,
		rec.PostponedUntil,
		rec.DecisionReason,
		rec.DecidedAt,
		rec.DecidedBy,
		rec.SubscriptionID,
		rec.JournalEntryID,
		rec.Version,
		rec.CreatedAt,
		rec.CreatedBy,
		rec.LastUpdatedAt,
		rec.LastUpdatedBy,
	)
	if err != nil {
		return mapDBError(err, "failed to insert renewal "+rec.RenewalID)
	}
	return nil
}

// UpdateRenewal persists rec if the stored version still equals expectedVersion.
func (r *PgxRenewalRepository) UpdateRenewal(ctx context.Context, rec domain.RenewalRecord, expectedVersion int) error {
	query := `
		UPDATE renewal_records SET
			assigned_agent_id = $2, status = $3, priority = $4, internal_notes = $5,
			next_follow_up_date = $6, postponed_until = $7, decision_reason = $8,
			decided_at = $9, decided_by = $10, subscription_id = $11, journal_entry_id = $12,
			version = $13, last_updated_at = $14, last_updated_by = $15
		WHERE renewal_id = $1 AND version = $16;
	`
	tag, err := r.DB(ctx).Exec(ctx, query,
		rec.RenewalID,
		rec.AssignedAgentID,
		rec.Status,
		rec.Priority,
		rec.InternalNotes,
		rec.NextFollowUpDate,
		rec.PostponedUntil,
		rec.DecisionReason,
		rec.DecidedAt,
		rec.DecidedBy,
		rec.SubscriptionID,
		rec.JournalEntryID,
		rec.Version,
		rec.LastUpdatedAt,
		rec.LastUpdatedBy,
		expectedVersion,
	)
	if err != nil {
		return mapDBError(err, "failed to update renewal "+rec.RenewalID)
	}
	if tag.RowsAffected() == 0 {
		return &apperrors.InvalidStateError{
			Entity:    "renewal",
			ID:        rec.RenewalID,
			State:     "version " + strconv.Itoa(expectedVersion) + " (modified concurrently)",
			Operation: "update",
		}
	}
	return nil
}

// SaveContact appends a contact attempt.
func (r *PgxRenewalRepository) SaveContact(ctx context.Context, contact domain.RenewalContact) error {
	query := `INSERT INTO renewal_contacts (` + contactColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`
	_, err := r.DB(ctx).Exec(ctx, query,
		contact.ContactID,
		contact.RenewalID,
		contact.ContactMethod,
		contact.ContactDate,
		contact.DurationMinutes,
		contact.Outcome,
		contact.Notes,
		contact.Latitude,
		contact.Longitude,
		contact.NextContactDate,
		contact.CreatedAt,
		contact.CreatedBy,
	)
	if err != nil {
		return mapDBError(err, "failed to insert contact for renewal "+contact.RenewalID)
	}
	return nil
}

// FindContactsByRenewalID lists the contacts of a record, oldest first.
func (r *PgxRenewalRepository) FindContactsByRenewalID(ctx context.Context, renewalID string) ([]domain.RenewalContact, error) {
	query := `SELECT ` + contactColumns + ` FROM renewal_contacts
		WHERE renewal_id = $1
		ORDER BY contact_date, created_at;`
	rows, err := r.DB(ctx).Query(ctx, query, renewalID)
	if err != nil {
		return nil, mapDBError(err, "failed to query contacts for renewal "+renewalID)
	}
	defer rows.Close()

	contacts := []domain.RenewalContact{}
	for rows.Next() {
		var c domain.RenewalContact
		err := rows.Scan(
			&c.ContactID,
			&c.RenewalID,
			&c.ContactMethod,
			&c.ContactDate,
			&c.DurationMinutes,
			&c.Outcome,
			&c.Notes,
			&c.Latitude,
			&c.Longitude,
			&c.NextContactDate,
			&c.CreatedAt,
			&c.CreatedBy,
		)
		if err != nil {
			return nil, mapDBError(err, "failed to scan contact row for renewal "+renewalID)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapDBError(err, "error iterating contact rows for renewal "+renewalID)
	}
	return contacts, nil
}
