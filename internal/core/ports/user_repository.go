package ports

import (
	"context"

	"github.com/miramar/hotel-api/internal/core/domain"
)

// UserRepository is the persistence interface for user accounts. Email
// uniqueness is checked by callers via FindByEmail before Create; the store
// itself does not enforce it.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, email string, user *domain.User) (*domain.User, error)
	PushReservationRef(ctx context.Context, email string, ref domain.ReservationRef) error
}
