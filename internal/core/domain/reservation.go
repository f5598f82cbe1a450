package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ExtraName identifies a priced add-on attached to a reservation.
type ExtraName string

const (
	ExtraWifi         ExtraName = "wifi"
	ExtraAllInclusive ExtraName = "all_inclusive"
	ExtraGym          ExtraName = "gym"
	ExtraSpa          ExtraName = "spa"
	ExtraParking      ExtraName = "parking"
)

const (
	MinExtras = 1
	MaxExtras = 5
)

var validExtras = map[ExtraName]struct{}{
	ExtraWifi:         {},
	ExtraAllInclusive: {},
	ExtraGym:          {},
	ExtraSpa:          {},
	ExtraParking:      {},
}

var ErrReservationNotFound = errors.New("reservation not found")
var ErrReservationCancelled = errors.New("reservation already cancelled")

// ValidationError collects every violated field of a candidate record, not
// just the first one.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

// Extra is a single priced add-on (wifi, spa, ...).
type Extra struct {
	Name  ExtraName `json:"name" bson:"name"`
	Price float64   `json:"price" bson:"price"`
}

// GuestSnapshot is the copy of the booking user embedded in a reservation.
// It is frozen at booking time and not kept in sync with the user document.
type GuestSnapshot struct {
	Name     string `json:"name" bson:"name"`
	Email    string `json:"email" bson:"email"`
	UserName string `json:"user_name" bson:"user_name"`
	Role     string `json:"role" bson:"role"`
	Phone    string `json:"phone" bson:"phone"`
}

// Reservation is a room booking. Cancellation is modelled by setting
// CancelationDate; reservations are never physically deleted.
type Reservation struct {
	ID              string        `json:"id" bson:"_id,omitempty"`
	User            GuestSnapshot `json:"user" bson:"user"`
	RoomNumber      int           `json:"room_number" bson:"room_number"`
	CheckInDate     time.Time     `json:"check_in_date" bson:"check_in_date"`
	CheckOutDate    time.Time     `json:"check_out_date" bson:"check_out_date"`
	PricePerNight   float64       `json:"price_per_night" bson:"price_per_night"`
	Extras          []Extra       `json:"extras" bson:"extras"`
	CancelationDate *time.Time    `json:"cancelation_date,omitempty" bson:"cancelation_date,omitempty"`
}

// Cancelled reports whether the reservation has a cancelation date set.
func (r *Reservation) Cancelled() bool {
	return r.CancelationDate != nil
}

// Validate checks the consistency rules on a candidate reservation and
// returns a *ValidationError enumerating every violation, or nil when the
// record is acceptable.
func (r *Reservation) Validate() error {
	var violations []string

	if r.User.Name == "" {
		violations = append(violations, "user.name is required")
	}
	if r.User.Email == "" {
		violations = append(violations, "user.email is required")
	}
	if r.User.UserName == "" {
		violations = append(violations, "user.user_name is required")
	}
	if r.RoomNumber <= 0 {
		violations = append(violations, "room_number must be positive")
	}
	if r.CheckInDate.IsZero() {
		violations = append(violations, "check_in_date is required")
	}
	if r.CheckOutDate.IsZero() {
		violations = append(violations, "check_out_date is required")
	}
	if !r.CheckInDate.IsZero() && !r.CheckOutDate.IsZero() && !r.CheckOutDate.After(r.CheckInDate) {
		violations = append(violations, "check_out_date must be after check_in_date")
	}
	if r.PricePerNight < 0 {
		violations = append(violations, "price_per_night must not be negative")
	}

	if n := len(r.Extras); n < MinExtras || n > MaxExtras {
		violations = append(violations, fmt.Sprintf("extras must contain between %d and %d entries, got %d", MinExtras, MaxExtras, n))
	}
	for i, extra := range r.Extras {
		if _, ok := validExtras[extra.Name]; !ok {
			violations = append(violations, fmt.Sprintf("extras[%d].name %q is not a known extra", i, extra.Name))
		}
		if extra.Price < 0 {
			violations = append(violations, fmt.Sprintf("extras[%d].price must not be negative", i))
		}
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}
