package service

import (
	"context"
	"errors"
	"math"

	"github.com/rs/zerolog"

	"github.com/localmark/store-directory/internal/core/domain"
	"github.com/localmark/store-directory/internal/core/ports"
)

// RatingService implements rating submission, moderation, and listings.
type RatingService struct {
	ratings ports.RatingRepository
	stores  ports.StoreRepository
	users   ports.UserRepository
	logger  zerolog.Logger
}

func NewRatingService(
	ratings ports.RatingRepository,
	stores ports.StoreRepository,
	users ports.UserRepository,
	logger zerolog.Logger,
) *RatingService {
	return &RatingService{ratings: ratings, stores: stores, users: users, logger: logger}
}

// Submit records the actor's rating for a store, replacing any prior one.
// The store must exist and be active, and the actor must not own it.
func (s *RatingService) Submit(ctx context.Context, actor ports.Actor, in ports.SubmitRatingInput) (*domain.Rating, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return nil, domain.ErrRatingOutOfRange
	}

	store, err := s.stores.FindByID(ctx, in.StoreID)
	if err != nil {
		return nil, err
	}
	if !store.IsActive {
		return nil, domain.ErrStoreInactive
	}
	if store.OwnerID == actor.ID {
		return nil, domain.ErrOwnStoreRating
	}

	rating, err := s.ratings.Replace(ctx, &domain.Rating{
		StoreID: in.StoreID,
		UserID:  actor.ID,
		Rating:  in.Rating,
		Comment: in.Comment,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("rating_id", rating.ID).
		Int64("store_id", in.StoreID).
		Int64("user_id", actor.ID).
		Int("value", in.Rating).
		Msg("rating submitted")
	return rating, nil
}

// Get returns one rating joined with its author and store names.
func (s *RatingService) Get(ctx context.Context, id int64) (*ports.RatingDetail, error) {
	rating, err := s.ratings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.detail(ctx, rating), nil
}

// Update changes the value and/or comment for the author or an admin.
func (s *RatingService) Update(ctx context.Context, actor ports.Actor, id int64, in ports.UpdateRatingInput) (*ports.RatingDetail, error) {
	rating, err := s.ratings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && rating.UserID != actor.ID {
		return nil, domain.ErrForbidden
	}

	changed := false
	if in.Rating != 0 {
		if in.Rating < 1 || in.Rating > 5 {
			return nil, domain.ErrRatingOutOfRange
		}
		rating.Rating = in.Rating
		changed = true
	}
	if in.Comment != nil {
		rating.Comment = *in.Comment
		changed = true
	}
	if !changed {
		return nil, domain.ErrNoUpdatableFields
	}

	updated, err := s.ratings.Update(ctx, rating)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("rating_id", id).Int64("actor_id", actor.ID).Msg("rating updated")
	return s.detail(ctx, updated), nil
}

// Delete removes a rating for its author or an admin.
func (s *RatingService) Delete(ctx context.Context, actor ports.Actor, id int64) error {
	rating, err := s.ratings.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && rating.UserID != actor.ID {
		return domain.ErrForbidden
	}

	if err := s.ratings.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("rating_id", id).Int64("actor_id", actor.ID).Msg("rating deleted")
	return nil
}

// ListByStore returns a store's ratings with author usernames plus the
// summary statistics block.
func (s *RatingService) ListByStore(ctx context.Context, storeID int64) ([]ports.StoreRating, *ports.StoreRatingStats, error) {
	if _, err := s.stores.FindByID(ctx, storeID); err != nil {
		return nil, nil, err
	}

	ratings, err := s.ratings.ListByStore(ctx, storeID)
	if err != nil {
		return nil, nil, err
	}

	out := make([]ports.StoreRating, 0, len(ratings))
	dist := make(map[int]int)
	for _, r := range ratings {
		out = append(out, ports.StoreRating{Rating: r, Username: s.username(ctx, r.UserID)})
		dist[r.Rating]++
	}

	stats := &ports.StoreRatingStats{
		AverageRating: round1(meanRating(ratings)),
		TotalRatings:  len(ratings),
	}
	for value := 5; value >= 1; value-- {
		if dist[value] > 0 {
			stats.Distribution = append(stats.Distribution, ports.RatingCount{Rating: value, Count: dist[value]})
		}
	}
	return out, stats, nil
}

// ListByUser returns a user's ratings with the rated stores' names and
// locations. Self or admin only.
func (s *RatingService) ListByUser(ctx context.Context, actor ports.Actor, userID int64) ([]ports.UserRating, error) {
	if !actor.IsAdmin() && actor.ID != userID {
		return nil, domain.ErrForbidden
	}

	ratings, err := s.ratings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]ports.UserRating, 0, len(ratings))
	for _, r := range ratings {
		ur := ports.UserRating{Rating: r}
		if store, err := s.stores.FindByID(ctx, r.StoreID); err == nil {
			ur.StoreName = store.Name
			ur.StoreLocation = store.Location
		}
		out = append(out, ur)
	}
	return out, nil
}

func (s *RatingService) detail(ctx context.Context, r *domain.Rating) *ports.RatingDetail {
	d := &ports.RatingDetail{Rating: r, Username: s.username(ctx, r.UserID)}
	if store, err := s.stores.FindByID(ctx, r.StoreID); err == nil {
		d.StoreName = store.Name
	}
	return d
}

func (s *RatingService) username(ctx context.Context, userID int64) string {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Warn().Err(err).Int64("user_id", userID).Msg("username lookup failed")
		}
		return ""
	}
	return user.Username
}

// meanRating is the unrounded arithmetic mean, 0 for an empty slice.
func meanRating(ratings []*domain.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}
	return float64(sum) / float64(len(ratings))
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
