package memory

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/localmark/store-directory/internal/core/domain"
)

func TestUserRepository_CreateAssignsSequentialIDs(t *testing.T) {
	db := New()
	repo := NewUserRepository(db)

	first, err := repo.Create(context.Background(), &domain.User{Username: "a", Email: "a@example.com", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := repo.Create(context.Background(), &domain.User{Username: "b", Email: "b@example.com", Role: domain.RoleUser})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
	if first.CreatedAt.IsZero() || first.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps assigned: %+v", first)
	}
}

func TestUserRepository_EmailUniqueness(t *testing.T) {
	db := New()
	repo := NewUserRepository(db)

	if _, err := repo.Create(context.Background(), &domain.User{Username: "a", Email: "dup@example.com", Role: domain.RoleUser}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := repo.Create(context.Background(), &domain.User{Username: "b", Email: "dup@example.com", Role: domain.RoleUser}); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserRepository_CloneOnRead(t *testing.T) {
	db := New()
	repo := NewUserRepository(db)

	created, _ := repo.Create(context.Background(), &domain.User{Username: "a", Email: "a@example.com", Role: domain.RoleUser})
	created.Username = "mutated"

	fetched, err := repo.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if fetched.Username != "a" {
		t.Fatalf("stored record aliased by caller: %q", fetched.Username)
	}
}

func TestUserRepository_UpdatePreservesCreatedAt(t *testing.T) {
	db := New()
	repo := NewUserRepository(db)

	created, _ := repo.Create(context.Background(), &domain.User{Username: "a", Email: "a@example.com", Role: domain.RoleUser})

	created.Username = "renamed"
	updated, err := repo.Update(context.Background(), created)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("created_at changed on update")
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Fatalf("updated_at went backwards")
	}
	if updated.Username != "renamed" {
		t.Fatalf("update not applied: %q", updated.Username)
	}
}

func TestUserRepository_ListNewestFirst(t *testing.T) {
	db := New()
	repo := NewUserRepository(db)

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		if _, err := repo.Create(context.Background(), &domain.User{Username: email, Email: email, Role: domain.RoleUser}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	for i := 0; i < len(users)-1; i++ {
		if users[i].ID < users[i+1].ID {
			t.Fatalf("expected newest first, got order %d before %d", users[i].ID, users[i+1].ID)
		}
	}
}

func TestStoreRepository_ListActiveFilters(t *testing.T) {
	db := New()
	repo := NewStoreRepository(db)

	_, _ = repo.Create(context.Background(), &domain.Store{Name: "Open", OwnerID: 1, IsActive: true})
	_, _ = repo.Create(context.Background(), &domain.Store{Name: "Closed", OwnerID: 1, IsActive: false})

	active, err := repo.ListActive(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(active) != 1 || active[0].Name != "Open" {
		t.Fatalf("unexpected active list: %+v", active)
	}

	all, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 stores, got %d", len(all))
	}
}

func TestStoreRepository_FindByOwner(t *testing.T) {
	db := New()
	repo := NewStoreRepository(db)

	_, _ = repo.Create(context.Background(), &domain.Store{Name: "Mine", OwnerID: 3, IsActive: true})
	_, _ = repo.Create(context.Background(), &domain.Store{Name: "Mine Too", OwnerID: 3, IsActive: false})
	_, _ = repo.Create(context.Background(), &domain.Store{Name: "Theirs", OwnerID: 4, IsActive: true})

	mine, err := repo.FindByOwner(context.Background(), 3)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected both stores regardless of active flag, got %d", len(mine))
	}
}

func TestRatingRepository_ReplaceUpserts(t *testing.T) {
	db := New()
	repo := NewRatingRepository(db)

	first, err := repo.Replace(context.Background(), &domain.Rating{StoreID: 1, UserID: 2, Rating: 5, Comment: "great"})
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	second, err := repo.Replace(context.Background(), &domain.Rating{StoreID: 1, UserID: 2, Rating: 2, Comment: "meh"})
	if err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if second.ID == first.ID {
		t.Fatalf("expected a fresh id on replace")
	}

	// A different user rating the same store is a separate record.
	if _, err := repo.Replace(context.Background(), &domain.Rating{StoreID: 1, UserID: 9, Rating: 4}); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	byStore, err := repo.ListByStore(context.Background(), 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(byStore) != 2 {
		t.Fatalf("expected 2 ratings, got %d", len(byStore))
	}

	if _, err := repo.FindByID(context.Background(), first.ID); err != domain.ErrRatingNotFound {
		t.Fatalf("expected replaced rating gone, got %v", err)
	}
}

func TestRatingRepository_ListByUser(t *testing.T) {
	db := New()
	repo := NewRatingRepository(db)

	_, _ = repo.Replace(context.Background(), &domain.Rating{StoreID: 1, UserID: 2, Rating: 5})
	_, _ = repo.Replace(context.Background(), &domain.Rating{StoreID: 2, UserID: 2, Rating: 4})
	_, _ = repo.Replace(context.Background(), &domain.Rating{StoreID: 1, UserID: 3, Rating: 1})

	mine, err := repo.ListByUser(context.Background(), 2)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 ratings, got %d", len(mine))
	}
}

func TestSeed(t *testing.T) {
	db := New()
	if err := Seed(context.Background(), db); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	users, stores, ratings := db.Counts()
	if users != 3 || stores != 2 || ratings != 2 {
		t.Fatalf("unexpected counts: %d users, %d stores, %d ratings", users, stores, ratings)
	}

	userRepo := NewUserRepository(db)
	admin, err := userRepo.FindByEmail(context.Background(), "admin@example.com")
	if err != nil {
		t.Fatalf("admin missing: %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Fatalf("unexpected admin role: %q", admin.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")); err != nil {
		t.Fatalf("admin password hash mismatch: %v", err)
	}

	owner, err := userRepo.FindByEmail(context.Background(), "owner1@example.com")
	if err != nil {
		t.Fatalf("owner missing: %v", err)
	}
	owned, err := NewStoreRepository(db).FindByOwner(context.Background(), owner.ID)
	if err != nil {
		t.Fatalf("find by owner failed: %v", err)
	}
	if len(owned) != 2 {
		t.Fatalf("expected owner to hold both seed stores, got %d", len(owned))
	}
}
