package memory

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/localmark/store-directory/internal/core/domain"
)

// Seed installs the fixed demo dataset: one admin, one regular user, one
// store owner with two active stores, and two ratings by the regular user.
// Intended to run once at startup against an empty database.
func Seed(ctx context.Context, db *DB) error {
	users := NewUserRepository(db)
	stores := NewStoreRepository(db)
	ratings := NewRatingRepository(db)

	seedUsers := []struct {
		username string
		email    string
		password string
		role     string
	}{
		{"admin", "admin@example.com", "admin123", domain.RoleAdmin},
		{"john_doe", "john@example.com", "user123", domain.RoleUser},
		{"store_owner1", "owner1@example.com", "owner123", domain.RoleStoreOwner},
	}

	ids := make([]int64, 0, len(seedUsers))
	for _, su := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed: hash password for %s: %w", su.username, err)
		}
		u, err := users.Create(ctx, &domain.User{
			Username:     su.username,
			Email:        su.email,
			PasswordHash: string(hash),
			Role:         su.role,
		})
		if err != nil {
			return fmt.Errorf("seed: create user %s: %w", su.username, err)
		}
		ids = append(ids, u.ID)
	}
	ownerID := ids[2]
	raterID := ids[1]

	seedStores := []*domain.Store{
		{
			Name:        "Tech Paradise",
			Description: "Your one-stop shop for all tech gadgets and accessories",
			OwnerID:     ownerID,
			Location:    "123 Tech Street, Silicon Valley, CA",
			Phone:       "+1-555-0123",
			Email:       "contact@techparadise.com",
			Website:     "https://techparadise.com",
			IsActive:    true,
		},
		{
			Name:        "Green Garden",
			Description: "Fresh organic produce and gardening supplies",
			OwnerID:     ownerID,
			Location:    "456 Garden Ave, Green Valley, CA",
			Phone:       "+1-555-0456",
			Email:       "info@greengarden.com",
			IsActive:    true,
		},
	}

	storeIDs := make([]int64, 0, len(seedStores))
	for _, s := range seedStores {
		created, err := stores.Create(ctx, s)
		if err != nil {
			return fmt.Errorf("seed: create store %s: %w", s.Name, err)
		}
		storeIDs = append(storeIDs, created.ID)
	}

	seedRatings := []*domain.Rating{
		{StoreID: storeIDs[0], UserID: raterID, Rating: 5, Comment: "Excellent service and great products!"},
		{StoreID: storeIDs[1], UserID: raterID, Rating: 4, Comment: "Fresh produce, will visit again."},
	}
	for _, rt := range seedRatings {
		if _, err := ratings.Replace(ctx, rt); err != nil {
			return fmt.Errorf("seed: create rating for store %d: %w", rt.StoreID, err)
		}
	}

	return nil
}
