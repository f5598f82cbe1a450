package ports

import (
	"context"
	"time"

	"github.com/miramar/hotel-api/internal/core/domain"
)

// ReservationRepository is the persistence interface for reservations.
// There is no delete: cancellation sets cancelation_date and the record stays.
type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) (*domain.Reservation, error)
	FindAll(ctx context.Context) ([]domain.Reservation, error)
	FindByUserEmail(ctx context.Context, email string) ([]domain.Reservation, error)
	FindByID(ctx context.Context, id string) (*domain.Reservation, error)
	Update(ctx context.Context, id string, r *domain.Reservation) error
	SetCancelationDate(ctx context.Context, id string, when time.Time) error
}
