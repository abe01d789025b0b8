package pgsql

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/greenpages_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/greenpages_backend/internal/core/ports/repositories"
)

type PgxBusinessRepository struct {
	BaseRepository
}

// newPgxBusinessRepository creates a new repository for directory businesses,
// packages and subscriptions.
func newPgxBusinessRepository(pool *pgxpool.Pool) *PgxBusinessRepository {
	return &PgxBusinessRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.BusinessReader         = (*PgxBusinessRepository)(nil)
	_ portsrepo.SubscriptionRepository = (*PgxBusinessRepository)(nil)
)

// FindBusinessByID retrieves a business by its ID.
func (r *PgxBusinessRepository) FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	query := `
		SELECT business_id, name, category, governorate, city, district, is_active
		FROM businesses
		WHERE business_id = $1;
	`
	var b domain.Business
	err := r.DB(ctx).QueryRow(ctx, query, businessID).Scan(
		&b.BusinessID,
		&b.Name,
		&b.Category,
		&b.Governorate,
		&b.City,
		&b.District,
		&b.IsActive,
	)
	if err != nil {
		return nil, mapDBError(err, "failed to find business by ID "+businessID)
	}
	return &b, nil
}

// ListExpiringBusinesses retrieves active businesses whose active subscription
// ends in [endsFrom, endsBefore) and that have no open renewal record, soonest first.
// Subscriptions that ended before endsFrom are left to the expiry job.
func (r *PgxBusinessRepository) ListExpiringBusinesses(ctx context.Context, endsFrom, endsBefore time.Time, limit int) ([]domain.ExpiringBusiness, error) {
	query := `
		SELECT b.business_id, s.subscription_id, s.end_date
		FROM businesses b
		JOIN subscriptions s ON s.business_id = b.business_id AND s.is_active
		WHERE b.is_active
		  AND s.end_date >= $1
		  AND s.end_date < $2
		  AND NOT EXISTS (
		      SELECT 1 FROM renewal_records rr
		      WHERE rr.business_id = b.business_id AND rr.status NOT IN ` + terminalStatuses + `
		  )
		ORDER BY s.end_date, b.business_id
		LIMIT $3;
	`
	rows, err := r.DB(ctx).Query(ctx, query, endsFrom, endsBefore, limit)
	if err != nil {
		return nil, mapDBError(err, "failed to list expiring businesses")
	}
	defer rows.Close()

	out := []domain.ExpiringBusiness{}
	for rows.Next() {
		var eb domain.ExpiringBusiness
		if err := rows.Scan(&eb.BusinessID, &eb.SubscriptionID, &eb.EndDate); err != nil {
			return nil, mapDBError(err, "failed to scan expiring business row")
		}
		out = append(out, eb)
	}
	if err := rows.Err(); err != nil {
		return nil, mapDBError(err, "error iterating expiring business rows")
	}
	return out, nil
}

// FindPackageByID retrieves a subscription package.
func (r *PgxBusinessRepository) FindPackageByID(ctx context.Context, packageID string) (*domain.Package, error) {
	query := `
		SELECT package_id, name, duration_days, price, is_active
		FROM packages
		WHERE package_id = $1;
	`
	var p domain.Package
	err := r.DB(ctx).QueryRow(ctx, query, packageID).Scan(&p.PackageID, &p.Name, &p.DurationDays, &p.Price, &p.IsActive)
	if err != nil {
		return nil, mapDBError(err, "failed to find package by ID "+packageID)
	}
	return &p, nil
}

const subscriptionColumns = `subscription_id, business_id, package_id, start_date, end_date, is_active`

func scanSubscription(row pgx.Row) (*domain.Subscription, error) {
	var s domain.Subscription
	if err := row.Scan(&s.SubscriptionID, &s.BusinessID, &s.PackageID, &s.StartDate, &s.EndDate, &s.IsActive); err != nil {
		return nil, err
	}
	return &s, nil
}

// FindActiveSubscription returns the business's active subscription.
func (r *PgxBusinessRepository) FindActiveSubscription(ctx context.Context, businessID string) (*domain.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE business_id = $1 AND is_active;`
	sub, err := scanSubscription(r.DB(ctx).QueryRow(ctx, query, businessID))
	if err != nil {
		return nil, mapDBError(err, "failed to find active subscription of business "+businessID)
	}
	return sub, nil
}

// AssignPackage deactivates the current subscription of the business and
// creates a new active one ending at endDate.
func (r *PgxBusinessRepository) AssignPackage(ctx context.Context, businessID, packageID string, endDate time.Time, actorID string) (*domain.Subscription, error) {
	var sub *domain.Subscription
	err := r.WithinTx(ctx, func(ctx context.Context) error {
		db := r.DB(ctx)
		deactivate := `
			UPDATE subscriptions SET is_active = FALSE, last_updated_at = NOW(), last_updated_by = $2
			WHERE business_id = $1 AND is_active;
		`
		if _, err := db.Exec(ctx, deactivate, businessID, actorID); err != nil {
			return mapDBError(err, "failed to deactivate subscription of business "+businessID)
		}

		insert := `
			INSERT INTO subscriptions (` + subscriptionColumns + `, created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, $3, NOW(), $4, TRUE, NOW(), $5, NOW(), $5)
			RETURNING ` + subscriptionColumns + `;
		`
		var err error
		sub, err = scanSubscription(db.QueryRow(ctx, insert, uuid.NewString(), businessID, packageID, endDate, actorID))
		if err != nil {
			return mapDBError(err, "failed to create subscription for business "+businessID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sub, nil
}
