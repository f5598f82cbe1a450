package domain

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func validReservation(numExtras int) *Reservation {
	extras := make([]Extra, 0, numExtras)
	names := []ExtraName{ExtraWifi, ExtraGym, ExtraSpa, ExtraParking, ExtraAllInclusive}
	for i := 0; i < numExtras; i++ {
		extras = append(extras, Extra{Name: names[i%len(names)], Price: 10})
	}

	checkIn := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	return &Reservation{
		User: GuestSnapshot{
			Name:     "Alice Doe",
			Email:    "alice@example.com",
			UserName: "alice1",
			Role:     RoleUser,
			Phone:    "555-0100",
		},
		RoomNumber:    101,
		CheckInDate:   checkIn,
		CheckOutDate:  checkIn.AddDate(0, 0, 4),
		PricePerNight: 150.50,
		Extras:        extras,
	}
}

func TestReservationValidate_ExtrasBoundaries(t *testing.T) {
	cases := []struct {
		extras int
		ok     bool
	}{
		{0, false},
		{1, true},
		{5, true},
		{6, false},
	}
	for _, tc := range cases {
		r := validReservation(tc.extras)
		err := r.Validate()
		if tc.ok && err != nil {
			t.Fatalf("%d extras: unexpected error: %v", tc.extras, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%d extras: expected validation error", tc.extras)
		}
	}
}

func TestReservationValidate_UnknownExtraName(t *testing.T) {
	r := validReservation(1)
	r.Extras[0].Name = "jacuzzi"

	err := r.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "jacuzzi") {
		t.Fatalf("expected message naming the bad extra, got %q", err.Error())
	}
}

func TestReservationValidate_DateOrdering(t *testing.T) {
	r := validReservation(2)
	r.CheckOutDate = r.CheckInDate

	err := r.Validate()
	if err == nil {
		t.Fatalf("expected validation error for check_out_date == check_in_date")
	}
	if !strings.Contains(err.Error(), "check_out_date") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestReservationValidate_NegativePrices(t *testing.T) {
	r := validReservation(2)
	r.PricePerNight = -1
	r.Extras[1].Price = -5

	err := r.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(ve.Violations) != 2 {
		t.Fatalf("expected both price violations reported, got %v", ve.Violations)
	}
}

func TestReservationValidate_EnumeratesAllViolations(t *testing.T) {
	r := &Reservation{}

	err := r.Validate()
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	// name, email, user_name, room_number, both dates, extras length
	if len(ve.Violations) < 7 {
		t.Fatalf("expected every violated field enumerated, got %v", ve.Violations)
	}
}

func TestReservationCancelled(t *testing.T) {
	r := validReservation(1)
	if r.Cancelled() {
		t.Fatalf("fresh reservation must not be cancelled")
	}
	when := time.Now().UTC()
	r.CancelationDate = &when
	if !r.Cancelled() {
		t.Fatalf("expected cancelled after setting cancelation_date")
	}
}
