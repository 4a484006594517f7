package ports

import (
	"context"

	"github.com/localmark/store-directory/internal/core/domain"
)

// RatingRepository defines persistence operations for ratings.
type RatingRepository interface {
	// Replace inserts the rating, first removing any prior rating by the
	// same user for the same store. The one-rating-per-(store,user) pair
	// invariant holds atomically with the insert.
	Replace(ctx context.Context, rating *domain.Rating) (*domain.Rating, error)
	FindByID(ctx context.Context, id int64) (*domain.Rating, error)
	// ListByStore returns a store's ratings ordered by creation time, newest first.
	ListByStore(ctx context.Context, storeID int64) ([]*domain.Rating, error)
	// ListByUser returns a user's ratings ordered by creation time, newest first.
	ListByUser(ctx context.Context, userID int64) ([]*domain.Rating, error)
	ListAll(ctx context.Context) ([]*domain.Rating, error)
	Update(ctx context.Context, rating *domain.Rating) (*domain.Rating, error)
	Delete(ctx context.Context, id int64) error
}
