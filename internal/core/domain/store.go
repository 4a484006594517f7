package domain

import (
	"errors"
	"time"
)

var (
	ErrStoreNotFound = errors.New("store not found")
	ErrStoreInactive = errors.New("cannot rate inactive store")
)

// Store is a directory listing owned by a store_owner (or admin) user.
type Store struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     int64     `json:"owner_id"`
	Location    string    `json:"location"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Website     string    `json:"website,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
