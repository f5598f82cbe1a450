package ports

import (
	"context"
	"time"

	"github.com/miramar/hotel-api/internal/core/domain"
)

// GuestInput is the booking user snapshot supplied with a new reservation.
type GuestInput struct {
	Name     string
	Email    string
	UserName string
	Role     string
	Phone    string
}

// ExtraInput is a single priced add-on in a reservation request.
type ExtraInput struct {
	Name  string
	Price float64
}

// ReservationInput carries a candidate reservation into the service, which
// runs the consistency rules before persisting anything.
type ReservationInput struct {
	User          GuestInput
	RoomNumber    int
	CheckInDate   time.Time
	CheckOutDate  time.Time
	PricePerNight float64
	Extras        []ExtraInput
}

type ReservationService interface {
	Create(ctx context.Context, input ReservationInput) (*domain.Reservation, error)
	List(ctx context.Context) ([]domain.Reservation, error)
	ListByUserEmail(ctx context.Context, email string) ([]domain.Reservation, error)
	Update(ctx context.Context, id string, input ReservationInput) (*domain.Reservation, error)
	Cancel(ctx context.Context, id string) (*domain.Reservation, error)
}
