package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SscSPs/greenpages_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/greenpages_backend/internal/core/ports/repositories"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserDirectory {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserDirectory
var _ portsrepo.UserDirectory = (*PgxUserRepository)(nil)

// FindUserByID retrieves a dashboard user.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, name, email, role, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM users
		WHERE user_id = $1;
	`
	var u domain.User
	err := r.DB(ctx).QueryRow(ctx, query, userID).Scan(
		&u.UserID,
		&u.Name,
		&u.Email,
		&u.Role,
		&u.IsActive,
		&u.CreatedAt,
		&u.CreatedBy,
		&u.LastUpdatedAt,
		&u.LastUpdatedBy,
	)
	if err != nil {
		return nil, mapDBError(err, "failed to find user by ID "+userID)
	}
	return &u, nil
}
