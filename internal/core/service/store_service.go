package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/localmark/store-directory/internal/core/domain"
	"github.com/localmark/store-directory/internal/core/ports"
)

const topOwnersLimit = 10

// StoreService implements store listing management and the admin store
// statistics.
type StoreService struct {
	stores  ports.StoreRepository
	ratings ports.RatingRepository
	users   ports.UserRepository
	logger  zerolog.Logger
}

func NewStoreService(
	stores ports.StoreRepository,
	ratings ports.RatingRepository,
	users ports.UserRepository,
	logger zerolog.Logger,
) *StoreService {
	return &StoreService{stores: stores, ratings: ratings, users: users, logger: logger}
}

// ListActive returns the public directory: active stores, newest first.
func (s *StoreService) ListActive(ctx context.Context) ([]*domain.Store, error) {
	return s.stores.ListActive(ctx)
}

// ListByOwner returns every store owned by the caller, inactive included.
func (s *StoreService) ListByOwner(ctx context.Context, actor ports.Actor) ([]*domain.Store, error) {
	return s.stores.FindByOwner(ctx, actor.ID)
}

// Get returns one store with its ratings and 1-decimal average attached.
func (s *StoreService) Get(ctx context.Context, id int64) (*ports.StoreDetail, error) {
	store, err := s.stores.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ratings, err := s.ratings.ListByStore(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ports.StoreDetail{
		Store:         store,
		Ratings:       ratings,
		AverageRating: round1(meanRating(ratings)),
		TotalRatings:  len(ratings),
	}, nil
}

// Create adds a listing. The owner defaults to the caller; an admin may
// assign any existing user instead.
func (s *StoreService) Create(ctx context.Context, actor ports.Actor, in ports.CreateStoreInput) (*domain.Store, error) {
	ownerID := actor.ID
	if in.OwnerID != 0 && actor.IsAdmin() {
		if _, err := s.users.FindByID(ctx, in.OwnerID); err != nil {
			return nil, err
		}
		ownerID = in.OwnerID
	}

	store, err := s.stores.Create(ctx, &domain.Store{
		Name:        in.Name,
		Description: in.Description,
		OwnerID:     ownerID,
		Location:    in.Location,
		Phone:       in.Phone,
		Email:       in.Email,
		Website:     in.Website,
		IsActive:    true,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("store_id", store.ID).Int64("owner_id", ownerID).Str("name", store.Name).Msg("store created")
	return store, nil
}

// Update applies field changes for the owner or an admin. The is_active
// flag is admin-only and silently skipped for everyone else.
func (s *StoreService) Update(ctx context.Context, actor ports.Actor, id int64, in ports.UpdateStoreInput) (*domain.Store, error) {
	store, err := s.stores.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && store.OwnerID != actor.ID {
		return nil, domain.ErrForbidden
	}

	changed := false
	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
			changed = true
		}
	}
	apply(&store.Name, in.Name)
	apply(&store.Description, in.Description)
	apply(&store.Location, in.Location)
	apply(&store.Phone, in.Phone)
	apply(&store.Email, in.Email)
	apply(&store.Website, in.Website)
	if in.IsActive != nil && actor.IsAdmin() {
		store.IsActive = *in.IsActive
		changed = true
	}
	if !changed {
		return nil, domain.ErrNoUpdatableFields
	}

	updated, err := s.stores.Update(ctx, store)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("store_id", id).Int64("actor_id", actor.ID).Msg("store updated")
	return updated, nil
}

// Delete removes a listing for the owner or an admin.
func (s *StoreService) Delete(ctx context.Context, actor ports.Actor, id int64) error {
	store, err := s.stores.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() && store.OwnerID != actor.ID {
		return domain.ErrForbidden
	}

	if err := s.stores.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("store_id", id).Int64("actor_id", actor.ID).Msg("store deleted")
	return nil
}

// Stats aggregates directory-wide store figures for admins.
func (s *StoreService) Stats(ctx context.Context) (*ports.StoreStats, error) {
	stores, err := s.stores.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	ratings, err := s.ratings.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -30)

	stats := &ports.StoreStats{TotalStores: len(stores)}
	active := make(map[int64]bool, len(stores))
	ownerCounts := make(map[int64]int)
	for _, st := range stores {
		if st.IsActive {
			stats.ActiveStores++
			active[st.ID] = true
		}
		if st.CreatedAt.After(cutoff) {
			stats.RecentStores++
		}
		ownerCounts[st.OwnerID]++
	}
	stats.InactiveStores = stats.TotalStores - stats.ActiveStores

	// Average across ratings of active stores only, 2 decimals.
	sum, n := 0, 0
	for _, r := range ratings {
		if active[r.StoreID] {
			sum += r.Rating
			n++
		}
	}
	if n > 0 {
		stats.AverageRating = round2(float64(sum) / float64(n))
	}

	// Top store_owner accounts by listing count; owners with no stores count
	// as zero rather than being dropped.
	for _, u := range users {
		if u.Role != domain.RoleStoreOwner {
			continue
		}
		stats.TopStoreOwners = append(stats.TopStoreOwners, ports.OwnerStoreCount{
			Username:   u.Username,
			Email:      u.Email,
			StoreCount: ownerCounts[u.ID],
		})
	}
	sort.Slice(stats.TopStoreOwners, func(i, j int) bool {
		a, b := stats.TopStoreOwners[i], stats.TopStoreOwners[j]
		if a.StoreCount != b.StoreCount {
			return a.StoreCount > b.StoreCount
		}
		return a.Username < b.Username
	})
	if len(stats.TopStoreOwners) > topOwnersLimit {
		stats.TopStoreOwners = stats.TopStoreOwners[:topOwnersLimit]
	}

	return stats, nil
}
