package handler

import (
	"github.com/miramar/hotel-api/internal/core/domain"
	"github.com/miramar/hotel-api/internal/core/ports"
)

// --- Request → Service input ---

func toReservationInput(req createReservationRequest) ports.ReservationInput {
	extras := make([]ports.ExtraInput, len(req.Extras))
	for i, e := range req.Extras {
		extras[i] = ports.ExtraInput{Name: e.Name, Price: e.Price}
	}
	return ports.ReservationInput{
		User: ports.GuestInput{
			Name:     req.User.Name,
			Email:    req.User.Email,
			UserName: req.User.UserName,
			Role:     req.User.Role,
			Phone:    req.User.Phone,
		},
		RoomNumber:    req.RoomNumber,
		CheckInDate:   req.CheckInDate,
		CheckOutDate:  req.CheckOutDate,
		PricePerNight: req.PricePerNight,
		Extras:        extras,
	}
}

// --- Domain → HTTP response ---

func toReservationResponse(r *domain.Reservation) reservationResponse {
	extras := make([]extraResponse, len(r.Extras))
	for i, e := range r.Extras {
		extras[i] = extraResponse{Name: string(e.Name), Price: e.Price}
	}
	return reservationResponse{
		ID: r.ID,
		User: guestResponse{
			Name:     r.User.Name,
			Email:    r.User.Email,
			UserName: r.User.UserName,
			Role:     r.User.Role,
			Phone:    r.User.Phone,
		},
		RoomNumber:      r.RoomNumber,
		CheckInDate:     r.CheckInDate.UTC(),
		CheckOutDate:    r.CheckOutDate.UTC(),
		PricePerNight:   r.PricePerNight,
		Extras:          extras,
		CancelationDate: r.CancelationDate,
	}
}

func toReservationListResponse(items []domain.Reservation) []reservationResponse {
	out := make([]reservationResponse, len(items))
	for i := range items {
		out[i] = toReservationResponse(&items[i])
	}
	return out
}
