package memory

import (
	"context"

	"github.com/localmark/store-directory/internal/core/domain"
)

// RatingRepository implements ports.RatingRepository against the in-memory DB.
type RatingRepository struct {
	db *DB
}

func NewRatingRepository(db *DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Replace inserts the rating after dropping any prior rating by the same
// user for the same store, keeping the pair unique under one lock hold.
func (r *RatingRepository) Replace(_ context.Context, rating *domain.Rating) (*domain.Rating, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for id, existing := range r.db.ratings {
		if existing.StoreID == rating.StoreID && existing.UserID == rating.UserID {
			delete(r.db.ratings, id)
			break
		}
	}

	c := cloneRating(rating)
	r.db.ratingSeq++
	c.ID = r.db.ratingSeq
	c.CreatedAt = now()

	r.db.ratings[c.ID] = c
	return cloneRating(c), nil
}

func (r *RatingRepository) FindByID(_ context.Context, id int64) (*domain.Rating, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	rt, ok := r.db.ratings[id]
	if !ok {
		return nil, domain.ErrRatingNotFound
	}
	return cloneRating(rt), nil
}

func (r *RatingRepository) ListByStore(_ context.Context, storeID int64) ([]*domain.Rating, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var out []*domain.Rating
	for _, rt := range r.db.ratings {
		if rt.StoreID == storeID {
			out = append(out, cloneRating(rt))
		}
	}
	sortRatingsNewest(out)
	return out, nil
}

func (r *RatingRepository) ListByUser(_ context.Context, userID int64) ([]*domain.Rating, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var out []*domain.Rating
	for _, rt := range r.db.ratings {
		if rt.UserID == userID {
			out = append(out, cloneRating(rt))
		}
	}
	sortRatingsNewest(out)
	return out, nil
}

func (r *RatingRepository) ListAll(_ context.Context) ([]*domain.Rating, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]*domain.Rating, 0, len(r.db.ratings))
	for _, rt := range r.db.ratings {
		out = append(out, cloneRating(rt))
	}
	sortRatingsNewest(out)
	return out, nil
}

func (r *RatingRepository) Update(_ context.Context, rating *domain.Rating) (*domain.Rating, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	stored, ok := r.db.ratings[rating.ID]
	if !ok {
		return nil, domain.ErrRatingNotFound
	}

	c := cloneRating(rating)
	c.CreatedAt = stored.CreatedAt
	r.db.ratings[c.ID] = c
	return cloneRating(c), nil
}

func (r *RatingRepository) Delete(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.ratings[id]; !ok {
		return domain.ErrRatingNotFound
	}
	delete(r.db.ratings, id)
	return nil
}
