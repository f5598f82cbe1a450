package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/miramar/hotel-api/internal/core/domain"
	"github.com/miramar/hotel-api/internal/core/ports"
)

type ReservationService struct {
	repo     ports.ReservationRepository
	userRepo ports.UserRepository
	logger   zerolog.Logger
}

func NewReservationService(repo ports.ReservationRepository, userRepo ports.UserRepository, logger zerolog.Logger) *ReservationService {
	return &ReservationService{repo: repo, userRepo: userRepo, logger: logger}
}

// Create validates a candidate reservation and persists it. A summary ref is
// then pushed onto the owning user's embedded reservations list as a second,
// independent write; if that write fails the reservation still stands and the
// discrepancy is only logged (single-document atomicity, no transaction).
func (s *ReservationService) Create(ctx context.Context, input ports.ReservationInput) (*domain.Reservation, error) {
	candidate := fromInput(input)
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, candidate)
	if err != nil {
		return nil, err
	}

	ref := domain.ReservationRef{
		RoomNumber:   created.RoomNumber,
		CheckInDate:  created.CheckInDate,
		CheckOutDate: created.CheckOutDate,
	}
	if err := s.userRepo.PushReservationRef(ctx, created.User.Email, ref); err != nil {
		s.logger.Warn().Err(err).
			Str("email", created.User.Email).
			Str("reservation_id", created.ID).
			Msg("reservation stored but user ref update failed")
	}

	s.logger.Info().
		Str("reservation_id", created.ID).
		Str("email", created.User.Email).
		Int("room_number", created.RoomNumber).
		Msg("reservation created")

	return created, nil
}

func (s *ReservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	return s.repo.FindAll(ctx)
}

func (s *ReservationService) ListByUserEmail(ctx context.Context, email string) ([]domain.Reservation, error) {
	return s.repo.FindByUserEmail(ctx, email)
}

// Update replaces the mutable details of an existing reservation after
// running the same consistency rules as Create. The cancelation date, if
// any, is preserved.
func (s *ReservationService) Update(ctx context.Context, id string, input ports.ReservationInput) (*domain.Reservation, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	candidate := fromInput(input)
	if err := candidate.Validate(); err != nil {
		return nil, err
	}
	candidate.ID = existing.ID
	candidate.CancelationDate = existing.CancelationDate

	if err := s.repo.Update(ctx, id, candidate); err != nil {
		return nil, err
	}

	s.logger.Info().Str("reservation_id", id).Msg("reservation updated")
	return candidate, nil
}

// Cancel marks a reservation cancelled by setting its cancelation date.
// Cancelling twice is an error; the record itself is never removed.
func (s *ReservationService) Cancel(ctx context.Context, id string) (*domain.Reservation, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Cancelled() {
		return nil, domain.ErrReservationCancelled
	}

	when := time.Now().UTC()
	if err := s.repo.SetCancelationDate(ctx, id, when); err != nil {
		return nil, err
	}

	existing.CancelationDate = &when
	s.logger.Info().Str("reservation_id", id).Msg("reservation cancelled")
	return existing, nil
}

func fromInput(input ports.ReservationInput) *domain.Reservation {
	extras := make([]domain.Extra, len(input.Extras))
	for i, e := range input.Extras {
		extras[i] = domain.Extra{Name: domain.ExtraName(e.Name), Price: e.Price}
	}
	return &domain.Reservation{
		User: domain.GuestSnapshot{
			Name:     input.User.Name,
			Email:    input.User.Email,
			UserName: input.User.UserName,
			Role:     input.User.Role,
			Phone:    input.User.Phone,
		},
		RoomNumber:    input.RoomNumber,
		CheckInDate:   input.CheckInDate,
		CheckOutDate:  input.CheckOutDate,
		PricePerNight: input.PricePerNight,
		Extras:        extras,
	}
}
