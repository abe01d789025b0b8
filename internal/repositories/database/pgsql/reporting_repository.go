package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/greenpages_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/greenpages_backend/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetTrialBalanceData retrieves per-account totals of entries dated on or before the asOf day.
// Accounts without activity are included with zero totals.
func (r *reportingRepository) GetTrialBalanceData(ctx context.Context, asOf time.Time) ([]domain.TrialBalanceRow, error) {
	query := `
		SELECT
			a.code,
			a.name AS account_name,
			a.account_type,
			COALESCE(t.total_debit, 0) AS total_debit,
			COALESCE(t.total_credit, 0) AS total_credit
		FROM ledger_accounts a
		LEFT JOIN (
			SELECT l.account_code, SUM(l.debit) AS total_debit, SUM(l.credit) AS total_credit
			FROM journal_lines l
			JOIN journal_entries e ON e.entry_id = l.entry_id
			WHERE e.entry_date < $1::timestamptz + INTERVAL '1 day'
			GROUP BY l.account_code
		) t ON t.account_code = a.code
		ORDER BY a.code;
	`
	rows, err := r.DB(ctx).Query(ctx, query, asOf)
	if err != nil {
		return nil, mapDBError(err, "failed to query trial balance data")
	}
	defer rows.Close()

	result := []domain.TrialBalanceRow{}
	for rows.Next() {
		var row domain.TrialBalanceRow
		if err := rows.Scan(&row.AccountCode, &row.AccountName, &row.AccountType, &row.Debit, &row.Credit); err != nil {
			return nil, mapDBError(err, "failed to scan trial balance row")
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, mapDBError(err, "error iterating trial balance rows")
	}
	return result, nil
}

// GetRenewalStatusCounts counts renewal records per status
func (r *reportingRepository) GetRenewalStatusCounts(ctx context.Context) ([]domain.RenewalStatusCount, error) {
	query := `
		SELECT status, COUNT(*)
		FROM renewal_records
		GROUP BY status
		ORDER BY status;
	`
	rows, err := r.DB(ctx).Query(ctx, query)
	if err != nil {
		return nil, mapDBError(err, "failed to query renewal status counts")
	}
	defer rows.Close()

	result := []domain.RenewalStatusCount{}
	for rows.Next() {
		var c domain.RenewalStatusCount
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, mapDBError(err, "failed to scan renewal status count")
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapDBError(err, "error iterating renewal status counts")
	}
	return result, nil
}

// GetAgentWorkloads counts open renewal records per active agent, busiest first
func (r *reportingRepository) GetAgentWorkloads(ctx context.Context) ([]domain.AgentWorkload, error) {
	query := `
		SELECT u.user_id, u.name, COUNT(rr.renewal_id) AS open_records
		FROM users u
		LEFT JOIN renewal_records rr
			ON rr.assigned_agent_id = u.user_id AND rr.status NOT IN ` + terminalStatuses + `
		WHERE u.role = 'AGENT' AND u.is_active
		GROUP BY u.user_id, u.name
		ORDER BY open_records DESC, u.name;
	`
	rows, err := r.DB(ctx).Query(ctx, query)
	if err != nil {
		return nil, mapDBError(err, "failed to query agent workloads")
	}
	defer rows.Close()

	result := []domain.AgentWorkload{}
	for rows.Next() {
		var w domain.AgentWorkload
		if err := rows.Scan(&w.AgentID, &w.AgentName, &w.Open); err != nil {
			return nil, mapDBError(err, "failed to scan agent workload")
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, mapDBError(err, "error iterating agent workloads")
	}
	return result, nil
}
