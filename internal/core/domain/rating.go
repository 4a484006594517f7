package domain

import (
	"errors"
	"time"
)

var (
	ErrRatingNotFound   = errors.New("rating not found")
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
	ErrOwnStoreRating   = errors.New("cannot rate your own store")
)

// Rating is a single user's score for a store. At most one rating exists
// per (store, user) pair; submitting again replaces the previous one.
type Rating struct {
	ID        int64     `json:"id"`
	StoreID   int64     `json:"store_id"`
	UserID    int64     `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
