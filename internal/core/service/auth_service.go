package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/miramar/hotel-api/internal/core/domain"
	"github.com/miramar/hotel-api/internal/core/password"
	"github.com/miramar/hotel-api/internal/core/ports"
	"github.com/miramar/hotel-api/internal/core/token"
)

// AuthService implements the login flow: credential lookup, password
// verification, token issuance. Unknown email and wrong password are both
// reported as ErrInvalidCredentials so the two cases cannot be told apart
// by a caller probing for registered addresses.
type AuthService struct {
	repo     ports.UserRepository
	issuer   *token.Issuer
	throttle ports.LoginThrottle
	logger   zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, issuer *token.Issuer, throttle ports.LoginThrottle, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, issuer: issuer, throttle: throttle, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, email, pass string) (string, *domain.User, error) {
	if email == "" || pass == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if blocked := s.throttled(ctx, email); blocked {
		return "", nil, domain.ErrTooManyAttempts
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !password.Verify(pass, user.PasswordHash) {
		s.recordFailure(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := s.issuer.Issue(token.Claims{Email: user.Email, Role: user.Role})
	if err != nil {
		return "", nil, err
	}

	s.resetThrottle(ctx, email)
	s.logger.Info().Str("email", user.Email).Str("role", user.Role).Msg("login succeeded")

	return signed, user, nil
}

// Throttle failures never block a login outright: if Redis is unreachable
// the service degrades to unthrottled rather than unavailable.
func (s *AuthService) throttled(ctx context.Context, email string) bool {
	if s.throttle == nil {
		return false
	}
	blocked, err := s.throttle.Blocked(ctx, email)
	if err != nil {
		s.logger.Warn().Err(err).Msg("login throttle check failed")
		return false
	}
	return blocked
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login throttle record failed")
	}
}

func (s *AuthService) resetThrottle(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.Reset(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login throttle reset failed")
	}
}
