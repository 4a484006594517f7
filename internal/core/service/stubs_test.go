package service

import (
	"context"
	"time"

	"github.com/localmark/store-directory/internal/core/domain"
)

// Hand-rolled in-memory stubs shared by the service tests. CreatedAt set by
// the caller is preserved so tests can stage historical records.

type stubUserRepo struct {
	seq   int64
	users map[int64]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	copy := cloneUser(user)
	r.seq++
	copy.ID = r.seq
	if copy.CreatedAt.IsZero() {
		copy.CreatedAt = time.Now().UTC()
	}
	copy.UpdatedAt = copy.CreatedAt
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for id := r.seq; id >= 1; id-- {
		if u, ok := r.users[id]; ok {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	existing, ok := r.users[user.ID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copy := cloneUser(user)
	copy.CreatedAt = existing.CreatedAt
	copy.UpdatedAt = time.Now().UTC()
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubStoreRepo struct {
	seq    int64
	stores map[int64]*domain.Store
}

func newStubStoreRepo() *stubStoreRepo {
	return &stubStoreRepo{stores: make(map[int64]*domain.Store)}
}

func cloneStore(s *domain.Store) *domain.Store {
	if s == nil {
		return nil
	}
	clone := *s
	return &clone
}

func (r *stubStoreRepo) Create(_ context.Context, store *domain.Store) (*domain.Store, error) {
	copy := cloneStore(store)
	r.seq++
	copy.ID = r.seq
	if copy.CreatedAt.IsZero() {
		copy.CreatedAt = time.Now().UTC()
	}
	copy.UpdatedAt = copy.CreatedAt
	r.stores[copy.ID] = cloneStore(copy)
	return copy, nil
}

func (r *stubStoreRepo) FindByID(_ context.Context, id int64) (*domain.Store, error) {
	s, ok := r.stores[id]
	if !ok {
		return nil, domain.ErrStoreNotFound
	}
	return cloneStore(s), nil
}

func (r *stubStoreRepo) FindByOwner(_ context.Context, ownerID int64) ([]*domain.Store, error) {
	out := []*domain.Store{}
	for id := r.seq; id >= 1; id-- {
		if s, ok := r.stores[id]; ok && s.OwnerID == ownerID {
			out = append(out, cloneStore(s))
		}
	}
	return out, nil
}

func (r *stubStoreRepo) ListActive(_ context.Context) ([]*domain.Store, error) {
	out := []*domain.Store{}
	for id := r.seq; id >= 1; id-- {
		if s, ok := r.stores[id]; ok && s.IsActive {
			out = append(out, cloneStore(s))
		}
	}
	return out, nil
}

func (r *stubStoreRepo) ListAll(_ context.Context) ([]*domain.Store, error) {
	out := []*domain.Store{}
	for id := r.seq; id >= 1; id-- {
		if s, ok := r.stores[id]; ok {
			out = append(out, cloneStore(s))
		}
	}
	return out, nil
}

func (r *stubStoreRepo) Update(_ context.Context, store *domain.Store) (*domain.Store, error) {
	existing, ok := r.stores[store.ID]
	if !ok {
		return nil, domain.ErrStoreNotFound
	}
	copy := cloneStore(store)
	copy.CreatedAt = existing.CreatedAt
	copy.UpdatedAt = time.Now().UTC()
	r.stores[copy.ID] = cloneStore(copy)
	return copy, nil
}

func (r *stubStoreRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.stores[id]; !ok {
		return domain.ErrStoreNotFound
	}
	delete(r.stores, id)
	return nil
}

type stubRatingRepo struct {
	seq     int64
	ratings map[int64]*domain.Rating
}

func newStubRatingRepo() *stubRatingRepo {
	return &stubRatingRepo{ratings: make(map[int64]*domain.Rating)}
}

func cloneRating(rt *domain.Rating) *domain.Rating {
	if rt == nil {
		return nil
	}
	clone := *rt
	return &clone
}

func (r *stubRatingRepo) Replace(_ context.Context, rating *domain.Rating) (*domain.Rating, error) {
	for id, existing := range r.ratings {
		if existing.StoreID == rating.StoreID && existing.UserID == rating.UserID {
			delete(r.ratings, id)
		}
	}
	copy := cloneRating(rating)
	r.seq++
	copy.ID = r.seq
	if copy.CreatedAt.IsZero() {
		copy.CreatedAt = time.Now().UTC()
	}
	r.ratings[copy.ID] = cloneRating(copy)
	return copy, nil
}

func (r *stubRatingRepo) FindByID(_ context.Context, id int64) (*domain.Rating, error) {
	rt, ok := r.ratings[id]
	if !ok {
		return nil, domain.ErrRatingNotFound
	}
	return cloneRating(rt), nil
}

func (r *stubRatingRepo) ListByStore(_ context.Context, storeID int64) ([]*domain.Rating, error) {
	out := []*domain.Rating{}
	for id := r.seq; id >= 1; id-- {
		if rt, ok := r.ratings[id]; ok && rt.StoreID == storeID {
			out = append(out, cloneRating(rt))
		}
	}
	return out, nil
}

func (r *stubRatingRepo) ListByUser(_ context.Context, userID int64) ([]*domain.Rating, error) {
	out := []*domain.Rating{}
	for id := r.seq; id >= 1; id-- {
		if rt, ok := r.ratings[id]; ok && rt.UserID == userID {
			out = append(out, cloneRating(rt))
		}
	}
	return out, nil
}

func (r *stubRatingRepo) ListAll(_ context.Context) ([]*domain.Rating, error) {
	out := []*domain.Rating{}
	for id := r.seq; id >= 1; id-- {
		if rt, ok := r.ratings[id]; ok {
			out = append(out, cloneRating(rt))
		}
	}
	return out, nil
}

func (r *stubRatingRepo) Update(_ context.Context, rating *domain.Rating) (*domain.Rating, error) {
	existing, ok := r.ratings[rating.ID]
	if !ok {
		return nil, domain.ErrRatingNotFound
	}
	copy := cloneRating(rating)
	copy.CreatedAt = existing.CreatedAt
	r.ratings[copy.ID] = cloneRating(copy)
	return copy, nil
}

func (r *stubRatingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.ratings[id]; !ok {
		return domain.ErrRatingNotFound
	}
	delete(r.ratings, id)
	return nil
}
