package ports

import (
	"context"

	"github.com/localmark/store-directory/internal/core/domain"
)

// SubmitRatingInput carries a new (or replacing) rating submission.
type SubmitRatingInput struct {
	StoreID int64
	Rating  int
	Comment string
}

// UpdateRatingInput carries a partial rating update. Rating zero means
// "unchanged"; a nil Comment leaves the comment untouched.
type UpdateRatingInput struct {
	Rating  int
	Comment *string
}

// RatingDetail is a rating joined with its author and target store names.
type RatingDetail struct {
	Rating    *domain.Rating
	Username  string
	StoreName string
}

// StoreRating is a rating joined with its author's username.
type StoreRating struct {
	Rating   *domain.Rating
	Username string
}

// UserRating is a rating joined with the rated store's name and location.
type UserRating struct {
	Rating        *domain.Rating
	StoreName     string
	StoreLocation string
}

// RatingCount is one bucket of a store's per-value rating distribution.
type RatingCount struct {
	Rating int
	Count  int
}

// StoreRatingStats summarizes a single store's ratings.
type StoreRatingStats struct {
	AverageRating float64 // 1 decimal, 0 when unrated
	TotalRatings  int
	Distribution  []RatingCount // sorted by rating value, highest first
}

// RatingService defines use-case operations on ratings.
type RatingService interface {
	// Submit creates the actor's rating for a store, replacing any prior
	// rating by the same actor for the same store.
	Submit(ctx context.Context, actor Actor, in SubmitRatingInput) (*domain.Rating, error)
	Get(ctx context.Context, id int64) (*RatingDetail, error)
	Update(ctx context.Context, actor Actor, id int64, in UpdateRatingInput) (*RatingDetail, error)
	Delete(ctx context.Context, actor Actor, id int64) error
	ListByStore(ctx context.Context, storeID int64) ([]StoreRating, *StoreRatingStats, error)
	ListByUser(ctx context.Context, actor Actor, userID int64) ([]UserRating, error)
}
