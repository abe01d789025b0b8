package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/greenpages_backend/internal/core/domain"
)

// BusinessReader defines read operations for directory businesses
type BusinessReader interface {
	// FindBusinessByID retrieves a business by its ID.
	FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)

	// ListExpiringBusinesses retrieves active businesses whose active subscription
	// ends in [endsFrom, endsBefore) and that have no open renewal record.
	ListExpiringBusinesses(ctx context.Context, endsFrom, endsBefore time.Time, limit int) ([]domain.ExpiringBusiness, error)
}

// SubscriptionRepository is the package/subscription store
type SubscriptionRepository interface {
	// FindPackageByID retrieves a subscription package.
	FindPackageByID(ctx context.Context, packageID string) (*domain.Package, error)

	// FindActiveSubscription returns the business's active subscription, or ErrNotFound.
	FindActiveSubscription(ctx context.Context, businessID string) (*domain.Subscription, error)

	// AssignPackage deactivates the current subscription of the business and
	// creates a new active one ending at endDate.
	AssignPackage(ctx context.Context, businessID, packageID string, endDate time.Time, actorID string) (*domain.Subscription, error)
}
