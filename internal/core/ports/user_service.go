package ports

import (
	"context"

	"github.com/localmark/store-directory/internal/core/domain"
)

// UpdateUserInput carries the updatable user fields. Empty strings mean
// "not provided".
type UpdateUserInput struct {
	Username string
	Role     string // admin only
}

// RoleCount is one bucket of the per-role user distribution.
type RoleCount struct {
	Role  string
	Count int
}

// UserStats is the admin-only aggregate view over all accounts.
type UserStats struct {
	TotalUsers          int
	RoleDistribution    []RoleCount
	RecentRegistrations int // trailing 30 days
	TodayRegistrations  int // same UTC calendar day
}

// UserService defines use-case operations on user accounts.
type UserService interface {
	List(ctx context.Context, actor Actor) ([]*domain.User, error)
	Get(ctx context.Context, actor Actor, id int64) (*domain.User, error)
	Update(ctx context.Context, actor Actor, id int64, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, actor Actor, id int64) error
	Stats(ctx context.Context) (*UserStats, error)
}
