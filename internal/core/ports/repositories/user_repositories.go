package repositories

import (
	"context"

	"github.com/SscSPs/greenpages_backend/internal/core/domain"
)

// UserDirectory resolves dashboard users. Users are managed by the wider
// platform; this service only reads them to vet assignees.
type UserDirectory interface {
	// FindUserByID returns the user with userID, or ErrNotFound.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
}
