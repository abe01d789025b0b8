package pgsql

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/greenpages_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/greenpages_backend/internal/core/ports/repositories"
	"github.com/SscSPs/greenpages_backend/internal/utils/pagination"
)

const journalEntryColumns = `entry_id, description, entry_date, source, source_ref, created_at, created_by`

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entries, their
// lines and the chart of accounts.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// SaveJournalEntry inserts the entry header and all of its lines in one transaction.
func (r *PgxJournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	return r.WithinTx(ctx, func(ctx context.Context) error {
		db := r.DB(ctx)

		entryQuery := `INSERT INTO journal_entries (` + journalEntryColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7);`
		_, err := db.Exec(ctx, entryQuery,
			entry.EntryID,
			entry.Description,
			entry.EntryDate,
			entry.Source,
			entry.SourceRef,
			entry.CreatedAt,
			entry.CreatedBy,
		)
		if err != nil {
			return mapDBError(err, "failed to insert journal entry "+entry.EntryID)
		}

		batch := &pgx.Batch{}
		lineQuery := `
			INSERT INTO journal_lines (entry_id, line_no, account_code, debit, credit, memo)
			VALUES ($1, $2, $3, $4, $5, $6);
		`
		for _, l := range entry.Lines {
			batch.Queue(lineQuery, entry.EntryID, l.LineNo, l.AccountCode, l.Debit, l.Credit, l.Memo)
		}

		// Close reports the first failed insert of the batch
		if err := db.SendBatch(ctx, batch).Close(); err != nil {
			return mapDBError(err, "failed to insert lines of journal entry "+entry.EntryID)
		}
		return nil
	})
}

func scanJournalEntry(row pgx.Row) (domain.JournalEntry, error) {
	var e domain.JournalEntry
	err := row.Scan(&e.EntryID, &e.Description, &e.EntryDate, &e.Source, &e.SourceRef, &e.CreatedAt, &e.CreatedBy)
	return e, err
}

// findLines loads the lines of the given entries keyed by entry id, in line order.
func (r *PgxJournalRepository) findLines(ctx context.Context, entryIDs []string) (map[string][]domain.JournalLine, error) {
	query := `
		SELECT entry_id, line_no, account_code, debit, credit, memo
		FROM journal_lines
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, line_no;
	`
	rows, err := r.DB(ctx).Query(ctx, query, entryIDs)
	if err != nil {
		return nil, mapDBError(err, "failed to query journal lines")
	}
	defer rows.Close()

	lines := make(map[string][]domain.JournalLine, len(entryIDs))
	for rows.Next() {
		var (
			entryID string
			l       domain.JournalLine
		)
		if err := rows.Scan(&entryID, &l.LineNo, &l.AccountCode, &l.Debit, &l.Credit, &l.Memo); err != nil {
			return nil, mapDBError(err, "failed to scan journal line row")
		}
		lines[entryID] = append(lines[entryID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, mapDBError(err, "error iterating journal line rows")
	}
	return lines, nil
}

// FindJournalEntryByID retrieves an entry with its lines.
func (r *PgxJournalRepository) FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries WHERE entry_id = $1;`
	entry, err := scanJournalEntry(r.DB(ctx).QueryRow(ctx, query, entryID))
	if err != nil {
		return nil, mapDBError(err, "failed to find journal entry by ID "+entryID)
	}

	lines, err := r.findLines(ctx, []string{entryID})
	if err != nil {
		return nil, err
	}
	entry.Lines = lines[entryID]
	return &entry, nil
}

// journalListQuery builds the keyset-paginated listing query, newest entry
// date first with entry_id as the tie-breaker.
func journalListQuery(filter domain.JournalFilter, cursor *pagination.Cursor, fetchLimit int) (string, []any) {
	var (
		conds []string
		args  []any
	)
	next := func() string {
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Source != nil {
		args = append(args, *filter.Source)
		conds = append(conds, "source = "+next())
	}
	if filter.FromDate != nil {
		args = append(args, *filter.FromDate)
		conds = append(conds, "entry_date >= "+next())
	}
	if filter.ToDate != nil {
		// ToDate is inclusive of the whole day
		args = append(args, filter.ToDate.AddDate(0, 0, 1))
		conds = append(conds, "entry_date < "+next())
	}
	if cursor != nil {
		args = append(args, cursor.At)
		at := next()
		args = append(args, cursor.ID)
		conds = append(conds, "(entry_date, entry_id) < ("+at+", "+next()+")")
	}

	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	args = append(args, fetchLimit)
	query += " ORDER BY entry_date DESC, entry_id DESC LIMIT " + next() + ";"
	return query, args
}

// ListJournalEntries retrieves a page of entries with their lines using token-based pagination.
func (r *PgxJournalRepository) ListJournalEntries(ctx context.Context, filter domain.JournalFilter, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
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

	query, args := journalListQuery(filter, cursor, limit+1)
	rows, err := r.DB(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, nil, mapDBError(err, "failed to list journal entries")
	}
	entries := []domain.JournalEntry{}
	for rows.Next() {
		e, err := scanJournalEntry(rows)
		if err != nil {
			rows.Close()
			return nil, nil, mapDBError(err, "failed to scan journal entry row")
		}
		entries = append(entries, e)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, nil, mapDBError(err, "error iterating journal entry rows")
	}

	next := pagination.NextToken(len(entries), limit, func() (time.Time, string) {
		last := entries[limit-1]
		return last.EntryDate, last.EntryID
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	if len(entries) == 0 {
		return entries, nil, nil
	}

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.EntryID
	}
	lines, err := r.findLines(ctx, ids)
	if err != nil {
		return nil, nil, err
	}
	for i := range entries {
		entries[i].Lines = lines[entries[i].EntryID]
	}
	return entries, next, nil
}

// FindAccountsByCodes returns the accounts found for codes, keyed by code.
func (r *PgxJournalRepository) FindAccountsByCodes(ctx context.Context, codes []string) (map[string]domain.LedgerAccount, error) {
	query := `
		SELECT code, name, account_type, is_active
		FROM ledger_accounts
		WHERE code = ANY($1);
	`
	rows, err := r.DB(ctx).Query(ctx, query, codes)
	if err != nil {
		return nil, mapDBError(err, "failed to query ledger accounts")
	}
	defer rows.Close()

	accounts := make(map[string]domain.LedgerAccount, len(codes))
	for rows.Next() {
		var a domain.LedgerAccount
		if err := rows.Scan(&a.Code, &a.Name, &a.AccountType, &a.IsActive); err != nil {
			return nil, mapDBError(err, "failed to scan ledger account row")
		}
		accounts[a.Code] = a
	}
	if err := rows.Err(); err != nil {
		return nil, mapDBError(err, "error iterating ledger account rows")
	}
	return accounts, nil
}
