package domain

import (
	"errors"
	"time"
)

const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superAdmin"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")
var ErrTooManyAttempts = errors.New("too many login attempts")

// ValidRole reports whether role is one of the recognised account roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin || role == RoleSuperAdmin
}

// ReservationRef is the lightweight reservation summary embedded in a user
// document. It is a denormalised copy; the reservations collection holds the
// full record and the two are reconciled eventually, not transactionally.
type ReservationRef struct {
	RoomNumber   int       `json:"room_number" bson:"room_number"`
	CheckInDate  time.Time `json:"check_in_date" bson:"check_in_date"`
	CheckOutDate time.Time `json:"check_out_date" bson:"check_out_date"`
}

// User models a hotel guest or staff account.
type User struct {
	ID           string           `json:"id"`
	UserName     string           `json:"user_name"`
	Email        string           `json:"email"`
	PasswordHash string           `json:"-"`
	Role         string           `json:"role"`
	Reservations []ReservationRef `json:"reservations"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}
