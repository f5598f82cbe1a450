package ports

import (
	"context"

	"github.com/miramar/hotel-api/internal/core/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// LoginThrottle counts failed login attempts per email so repeated failures
// can be slowed down. Implementations are expected to expire counters on
// their own after a window.
type LoginThrottle interface {
	Blocked(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
