package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/localmark/store-directory/internal/core/domain"
	"github.com/localmark/store-directory/internal/core/ports"
)

// UserService implements account management and the admin user statistics.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) List(ctx context.Context, actor ports.Actor) ([]*domain.User, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, actor ports.Actor, id int64) (*domain.User, error) {
	if !actor.IsAdmin() && actor.ID != id {
		return nil, domain.ErrForbidden
	}
	return s.users.FindByID(ctx, id)
}

// Update applies the permitted field changes: username by the account owner
// or an admin, role by an admin only.
func (s *UserService) Update(ctx context.Context, actor ports.Actor, id int64, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Role != "" && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if in.Username != "" && actor.ID != id && !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	changed := false
	if in.Username != "" {
		user.Username = in.Username
		changed = true
	}
	if in.Role != "" {
		if !domain.ValidRole(in.Role) {
			return nil, domain.ErrInvalidRole
		}
		user.Role = in.Role
		changed = true
	}
	if !changed {
		return nil, domain.ErrNoUpdatableFields
	}

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", id).Int64("actor_id", actor.ID).Msg("user updated")
	return updated, nil
}

// Delete removes an account. Admin only; an admin cannot delete itself.
func (s *UserService) Delete(ctx context.Context, actor ports.Actor, id int64) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	if actor.ID == id {
		return domain.ErrSelfDeletion
	}

	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("user_id", id).Int64("actor_id", actor.ID).Msg("user deleted")
	return nil
}

// Stats aggregates registration counts. Derived on the fly, never stored.
func (s *UserService) Stats(ctx context.Context) (*ports.UserStats, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	cutoff := now.AddDate(0, 0, -30)

	stats := &ports.UserStats{TotalUsers: len(users)}
	counts := make(map[string]int)
	for _, u := range users {
		counts[u.Role]++
		if u.CreatedAt.After(cutoff) {
			stats.RecentRegistrations++
		}
		if sameDay(u.CreatedAt, now) {
			stats.TodayRegistrations++
		}
	}

	for _, role := range []string{domain.RoleAdmin, domain.RoleUser, domain.RoleStoreOwner} {
		if counts[role] > 0 {
			stats.RoleDistribution = append(stats.RoleDistribution, ports.RoleCount{Role: role, Count: counts[role]})
		}
	}
	return stats, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
