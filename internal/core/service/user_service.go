package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/miramar/hotel-api/internal/core/domain"
	"github.com/miramar/hotel-api/internal/core/password"
	"github.com/miramar/hotel-api/internal/core/ports"
)

type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Register creates a new account. The role defaults to "user" and the
// reservations list starts empty; the password is stored only as a bcrypt
// hash. Email uniqueness is checked by lookup before insertion.
func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, &domain.ValidationError{Violations: []string{"role must be one of: user, admin, superAdmin"}}
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		UserName:     input.UserName,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         role,
		Reservations: []domain.ReservationRef{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", created.Email).Str("role", created.Role).Msg("user registered")
	return created, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

// UpdateProfile applies an authenticated user's changes to their own record.
// A changed password is re-hashed before storage.
func (s *UserService) UpdateProfile(ctx context.Context, email string, input ports.UpdateProfileInput) (*domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if input.UserName != "" {
		user.UserName = input.UserName
	}
	if input.Password != "" {
		hash, err := password.Hash(input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.repo.Update(ctx, email, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("email", email).Msg("profile updated")
	return updated, nil
}
