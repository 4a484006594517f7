package ports

import (
	"context"

	"github.com/localmark/store-directory/internal/core/domain"
)

// CreateStoreInput carries the data needed to create a store listing.
// OwnerID is honored for admins only; zero means "the caller".
type CreateStoreInput struct {
	Name        string
	Description string
	Location    string
	Phone       string
	Email       string
	Website     string
	OwnerID     int64
}

// UpdateStoreInput uses pointers to distinguish "unset" from zero values.
// IsActive is applied only when the caller is an admin.
type UpdateStoreInput struct {
	Name        *string
	Description *string
	Location    *string
	Phone       *string
	Email       *string
	Website     *string
	IsActive    *bool
}

// StoreDetail is the public single-store view with its ratings attached.
type StoreDetail struct {
	Store         *domain.Store
	Ratings       []*domain.Rating
	AverageRating float64 // 1 decimal, 0 when unrated
	TotalRatings  int
}

// OwnerStoreCount pairs a store_owner account with its listing count.
type OwnerStoreCount struct {
	Username   string
	Email      string
	StoreCount int
}

// StoreStats is the admin-only aggregate view over all stores.
type StoreStats struct {
	TotalStores    int
	ActiveStores   int
	InactiveStores int
	RecentStores   int     // created in the trailing 30 days
	AverageRating  float64 // across active stores' ratings, 2 decimals
	TopStoreOwners []OwnerStoreCount
}

// StoreService defines use-case operations on store listings.
type StoreService interface {
	ListActive(ctx context.Context) ([]*domain.Store, error)
	ListByOwner(ctx context.Context, actor Actor) ([]*domain.Store, error)
	Get(ctx context.Context, id int64) (*StoreDetail, error)
	Create(ctx context.Context, actor Actor, in CreateStoreInput) (*domain.Store, error)
	Update(ctx context.Context, actor Actor, id int64, in UpdateStoreInput) (*domain.Store, error)
	Delete(ctx context.Context, actor Actor, id int64) error
	Stats(ctx context.Context) (*StoreStats, error)
}
