package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/growtiva/crm-api/internal/core/domain"
	"github.com/growtiva/crm-api/internal/core/ports"
)

// AuthService implements login: credential verification plus token issuance.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenService
	hasher *PasswordHasher
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, hasher *PasswordHasher, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, hasher: hasher, logger: logger}
}

// Login verifies the email/password pair and returns a signed bearer token.
// Unknown email and wrong password are logged with their real cause but both
// surface as domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Info().Str("email", email).Msg("login attempt for unknown email")
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Verify(password, user.HashedPassword) {
		s.logger.Info().Int64("user_id", user.ID).Msg("login attempt with wrong password")
		return "", domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		s.logger.Info().Int64("user_id", user.ID).Msg("login attempt on inactive account")
		return "", domain.ErrAccountInactive
	}

	token, err := s.tokens.Issue(domain.Claims{UserID: user.ID, Role: user.Role, City: user.City})
	if err != nil {
		return "", err
	}

	s.logger.Info().Int64("user_id", user.ID).Str("role", string(user.Role)).Msg("login succeeded")
	return token, nil
}
