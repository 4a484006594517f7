package ports

import (
	"context"

	"github.com/localmark/store-directory/internal/core/domain"
)

// Actor identifies the authenticated caller for authorization decisions.
// It carries exactly what the auth middleware resolves from the token.
type Actor struct {
	ID    int64
	Email string
	Role  string
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool { return a.Role == domain.RoleAdmin }

// RegisterInput carries the shape-validated registration payload.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Address  string
	Role     string // empty defaults to "user"
}

// AuthService implements registration, login, and token verification.
type AuthService interface {
	// Register creates the account and returns it with a fresh token.
	Register(ctx context.Context, in RegisterInput) (*domain.User, string, error)
	// Login verifies credentials and returns a signed token with the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// CurrentUser resolves the account behind an already-verified token.
	CurrentUser(ctx context.Context, id int64) (*domain.User, error)
}
