package ports

import (
	"context"

	"github.com/localmark/store-directory/internal/core/domain"
)

// StoreRepository defines persistence operations for store listings.
type StoreRepository interface {
	Create(ctx context.Context, store *domain.Store) (*domain.Store, error)
	FindByID(ctx context.Context, id int64) (*domain.Store, error)
	// FindByOwner returns every store owned by ownerID, active or not.
	FindByOwner(ctx context.Context, ownerID int64) ([]*domain.Store, error)
	// ListActive returns active stores ordered by creation time, newest first.
	ListActive(ctx context.Context) ([]*domain.Store, error)
	// ListAll returns every store regardless of the active flag.
	ListAll(ctx context.Context) ([]*domain.Store, error)
	Update(ctx context.Context, store *domain.Store) (*domain.Store, error)
	Delete(ctx context.Context, id int64) error
}
