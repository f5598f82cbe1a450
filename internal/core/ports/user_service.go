package ports

import (
	"context"

	"github.com/miramar/hotel-api/internal/core/domain"
)

// RegisterInput carries the validated registration payload into the service.
type RegisterInput struct {
	UserName string
	Email    string
	Password string
	Role     string
}

// UpdateProfileInput carries an authenticated user's profile changes. Empty
// fields are left untouched; a non-empty Password is re-hashed.
type UpdateProfileInput struct {
	UserName string
	Password string
}

type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	UpdateProfile(ctx context.Context, email string, input UpdateProfileInput) (*domain.User, error)
}
