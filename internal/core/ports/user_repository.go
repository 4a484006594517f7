package ports

import (
	"context"

	"github.com/localmark/store-directory/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create assigns the next identifier and timestamps, enforcing email
	// uniqueness atomically with the insert.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns all users ordered by creation time, newest first.
	List(ctx context.Context) ([]*domain.User, error)
	// Update persists the mutable fields of user and bumps updated_at.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}
