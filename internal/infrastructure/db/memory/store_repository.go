package memory

import (
	"context"

	"github.com/localmark/store-directory/internal/core/domain"
)

// StoreRepository implements ports.StoreRepository against the in-memory DB.
type StoreRepository struct {
	db *DB
}

func NewStoreRepository(db *DB) *StoreRepository {
	return &StoreRepository{db: db}
}

func (r *StoreRepository) Create(_ context.Context, store *domain.Store) (*domain.Store, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	c := cloneStore(store)
	r.db.storeSeq++
	c.ID = r.db.storeSeq
	ts := now()
	c.CreatedAt = ts
	c.UpdatedAt = ts

	r.db.stores[c.ID] = c
	return cloneStore(c), nil
}

func (r *StoreRepository) FindByID(_ context.Context, id int64) (*domain.Store, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	s, ok := r.db.stores[id]
	if !ok {
		return nil, domain.ErrStoreNotFound
	}
	return cloneStore(s), nil
}

func (r *StoreRepository) FindByOwner(_ context.Context, ownerID int64) ([]*domain.Store, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var out []*domain.Store
	for _, s := range r.db.stores {
		if s.OwnerID == ownerID {
			out = append(out, cloneStore(s))
		}
	}
	sortStoresNewest(out)
	return out, nil
}

func (r *StoreRepository) ListActive(_ context.Context) ([]*domain.Store, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var out []*domain.Store
	for _, s := range r.db.stores {
		if s.IsActive {
			out = append(out, cloneStore(s))
		}
	}
	sortStoresNewest(out)
	return out, nil
}

func (r *StoreRepository) ListAll(_ context.Context) ([]*domain.Store, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	out := make([]*domain.Store, 0, len(r.db.stores))
	for _, s := range r.db.stores {
		out = append(out, cloneStore(s))
	}
	sortStoresNewest(out)
	return out, nil
}

func (r *StoreRepository) Update(_ context.Context, store *domain.Store) (*domain.Store, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	stored, ok := r.db.stores[store.ID]
	if !ok {
		return nil, domain.ErrStoreNotFound
	}

	c := cloneStore(store)
	c.CreatedAt = stored.CreatedAt
	c.UpdatedAt = now()
	r.db.stores[c.ID] = c
	return cloneStore(c), nil
}

func (r *StoreRepository) Delete(_ context.Context, id int64) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if _, ok := r.db.stores[id]; !ok {
		return domain.ErrStoreNotFound
	}
	delete(r.db.stores, id)
	return nil
}
