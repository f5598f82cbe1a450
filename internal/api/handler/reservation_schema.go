package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type guestRequest struct {
	Name     string `json:"name"      validate:"required"`
	Email    string `json:"email"     validate:"required,email"`
	UserName string `json:"user_name" validate:"required"`
	Role     string `json:"role"      validate:"required"`
	Phone    string `json:"phone"     validate:"required"`
}

type extraRequest struct {
	Name  string  `json:"name"  validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

// createReservationRequest only pins the shape; the consistency rules
// (extras cardinality, enum membership, date ordering) live in the domain
// and are reported all at once from there.
type createReservationRequest struct {
	User          guestRequest   `json:"user"            validate:"required"`
	RoomNumber    int            `json:"room_number"     validate:"required"`
	CheckInDate   time.Time      `json:"check_in_date"   validate:"required"`
	CheckOutDate  time.Time      `json:"check_out_date"  validate:"required"`
	PricePerNight float64        `json:"price_per_night" validate:"gte=0"`
	Extras        []extraRequest `json:"extras"          validate:"required"`
}

type guestResponse struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserName string `json:"user_name"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
}

type extraResponse struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type reservationResponse struct {
	ID              string          `json:"id"`
	User            guestResponse   `json:"user"`
	RoomNumber      int             `json:"room_number"`
	CheckInDate     time.Time       `json:"check_in_date"`
	CheckOutDate    time.Time       `json:"check_out_date"`
	PricePerNight   float64         `json:"price_per_night"`
	Extras          []extraResponse `json:"extras"`
	CancelationDate *time.Time      `json:"cancelation_date,omitempty"`
}
