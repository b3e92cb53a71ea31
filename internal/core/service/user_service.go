package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/growtiva/crm-api/internal/core/domain"
	"github.com/growtiva/crm-api/internal/core/ports"
)

// UserService implements user management. Role and active-flag mutations are
// admin-only even on self-update and are rejected atomically: a request
// carrying them fails as a whole, no other field is applied.
type UserService struct {
	repo   ports.UserRepository
	hasher *PasswordHasher
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher *PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, logger: logger}
}

func (s *UserService) List(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	return s.repo.List(ctx, skip, normalizeLimit(limit))
}

func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:          input.Email,
		Role:           role,
		HashedPassword: hashed,
		Name:           input.Name,
		City:           input.City,
		IsActive:       true,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("role", string(created.Role)).Msg("user created")
	return created, nil
}

// Get returns the user row. Non-admins may only read their own row.
func (s *UserService) Get(ctx context.Context, claims domain.Claims, id int64) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !claims.CanAccess(user.ID) {
		return nil, domain.ErrForbidden
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, claims domain.Claims, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !claims.CanAccess(user.ID) {
		return nil, domain.ErrForbidden
	}

	// Admin-only fields short-circuit the whole request before any change.
	if (input.Role != nil || input.IsActive != nil) && !claims.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	if input.Role != nil {
		role, err := domain.ParseRole(*input.Role)
		if err != nil {
			return nil, err
		}
		user.Role = role
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}
	if input.Password != "" {
		hashed, err := s.hasher.Hash(input.Password)
		if err != nil {
			return nil, err
		}
		user.HashedPassword = hashed
	}
	user.Email = input.Email
	user.Name = input.Name
	user.City = input.City

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", id).Int64("updated_by", claims.UserID).Msg("user updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}
