package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/growtiva/crm-api/internal/core/domain"
	"github.com/growtiva/crm-api/internal/core/ports"
)

const defaultListLimit = 100

// ClientService implements client CRUD with the ownership policy applied on
// every operation.
type ClientService struct {
	repo   ports.ClientRepository
	logger zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, logger: logger}
}

// List returns the clients visible to the caller. Admins see everything and
// may filter by the owning user's city; everyone else is restricted to their
// own rows, implicitly narrowed to their own city when no filter is given.
func (s *ClientService) List(ctx context.Context, claims domain.Claims, input ports.ListClientsInput) ([]*domain.Client, error) {
	filter := ports.ListClientsFilter{
		City:  input.City,
		Skip:  input.Skip,
		Limit: normalizeLimit(input.Limit),
	}
	if !claims.IsAdmin() {
		filter.OwnerID = claims.UserID
		if filter.City == "" {
			filter.City = claims.City
		}
	}
	return s.repo.List(ctx, filter)
}

// Get fetches by primary key first (not found wins over forbidden), then
// applies the ownership check.
func (s *ClientService) Get(ctx context.Context, claims domain.Claims, id int64) (*domain.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !claims.CanAccess(client.UserID) {
		return nil, domain.ErrForbidden
	}
	return client, nil
}

// Create inserts a new client owned by the caller.
func (s *ClientService) Create(ctx context.Context, claims domain.Claims, input ports.ClientInput) (*domain.Client, error) {
	client := &domain.Client{
		UserID:                  claims.UserID,
		Name:                    input.Name,
		CompanyName:             input.CompanyName,
		BusinessCategory:        input.BusinessCategory,
		ContactEmail:            input.ContactEmail,
		ContactPhone:            input.ContactPhone,
		Status:                  input.Status,
		SignedDate:              input.SignedDate,
		EstimatedMonthlyRevenue: input.EstimatedMonthlyRevenue,
	}

	created, err := s.repo.Create(ctx, client)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", claims.UserID).Msg("failed to create client")
		return nil, err
	}

	s.logger.Info().Int64("client_id", created.ID).Int64("user_id", claims.UserID).Msg("client created")
	return created, nil
}

func (s *ClientService) Update(ctx context.Context, claims domain.Claims, id int64, input ports.ClientInput) (*domain.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !claims.CanAccess(client.UserID) {
		return nil, domain.ErrForbidden
	}

	client.Name = input.Name
	client.CompanyName = input.CompanyName
	client.BusinessCategory = input.BusinessCategory
	client.ContactEmail = input.ContactEmail
	client.ContactPhone = input.ContactPhone
	client.Status = input.Status
	client.SignedDate = input.SignedDate
	client.EstimatedMonthlyRevenue = input.EstimatedMonthlyRevenue

	return s.repo.Update(ctx, client)
}

func (s *ClientService) Delete(ctx context.Context, claims domain.Claims, id int64) error {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !claims.CanAccess(client.UserID) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("client_id", id).Int64("user_id", claims.UserID).Msg("client deleted")
	return nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	return limit
}
