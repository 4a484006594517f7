// Package memory holds the process-local database: three mutex-guarded
// collections with auto-incrementing identifiers. It is the single source
// of truth for users, stores, and ratings — repositories never cache and
// nothing survives a restart.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/localmark/store-directory/internal/core/domain"
)

// DB owns the three collections. A single RWMutex guards all of them so
// cross-collection invariants (email uniqueness, one rating per store/user
// pair) hold under concurrent requests.
type DB struct {
	mu sync.RWMutex

	users   map[int64]*domain.User
	stores  map[int64]*domain.Store
	ratings map[int64]*domain.Rating

	userSeq   int64
	storeSeq  int64
	ratingSeq int64
}

// New returns an empty database.
func New() *DB {
	return &DB{
		users:   make(map[int64]*domain.User),
		stores:  make(map[int64]*domain.Store),
		ratings: make(map[int64]*domain.Rating),
	}
}

// Counts returns the size of each collection. Used by the readiness probe.
func (d *DB) Counts() (users, stores, ratings int) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.users), len(d.stores), len(d.ratings)
}

func now() time.Time { return time.Now().UTC() }

// Clones keep callers from aliasing stored entities.

func cloneUser(u *domain.User) *domain.User {
	c := *u
	return &c
}

func cloneStore(s *domain.Store) *domain.Store {
	c := *s
	return &c
}

func cloneRating(r *domain.Rating) *domain.Rating {
	c := *r
	return &c
}

// sortUsersNewest orders by created_at descending, ID descending on ties
// (seeded records share a timestamp).
func sortUsersNewest(users []*domain.User) {
	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].ID > users[j].ID
		}
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
}

func sortStoresNewest(stores []*domain.Store) {
	sort.Slice(stores, func(i, j int) bool {
		if stores[i].CreatedAt.Equal(stores[j].CreatedAt) {
			return stores[i].ID > stores[j].ID
		}
		return stores[i].CreatedAt.After(stores[j].CreatedAt)
	})
}

func sortRatingsNewest(ratings []*domain.Rating) {
	sort.Slice(ratings, func(i, j int) bool {
		if ratings[i].CreatedAt.Equal(ratings[j].CreatedAt) {
			return ratings[i].ID > ratings[j].ID
		}
		return ratings[i].CreatedAt.After(ratings[j].CreatedAt)
	})
}
