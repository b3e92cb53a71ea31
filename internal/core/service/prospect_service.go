package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/growtiva/crm-api/internal/core/domain"
	"github.com/growtiva/crm-api/internal/core/ports"
)

const defaultRecommendedLimit = 3

// ProspectService implements prospect CRUD plus the follow-up recommendation
// query, with the same ownership policy as clients.
type ProspectService struct {
	repo   ports.ProspectRepository
	logger zerolog.Logger
}

func NewProspectService(repo ports.ProspectRepository, logger zerolog.Logger) *ProspectService {
	return &ProspectService{repo: repo, logger: logger}
}

func (s *ProspectService) List(ctx context.Context, claims domain.Claims, input ports.ListProspectsInput) ([]*domain.Prospect, error) {
	filter := ports.ListProspectsFilter{
		Skip:  input.Skip,
		Limit: normalizeLimit(input.Limit),
	}
	if !claims.IsAdmin() {
		filter.OwnerID = claims.UserID
	}
	return s.repo.List(ctx, filter)
}

// Recommended returns the prospects worth contacting next: still in the new
// or contacted stage, high interest first, earliest follow-up date next.
func (s *ProspectService) Recommended(ctx context.Context, claims domain.Claims, limit int) ([]*domain.Prospect, error) {
	if limit <= 0 {
		limit = defaultRecommendedLimit
	}
	filter := ports.RecommendedFilter{Limit: limit}
	if !claims.IsAdmin() {
		filter.OwnerID = claims.UserID
	}
	return s.repo.ListRecommended(ctx, filter)
}

func (s *ProspectService) Get(ctx context.Context, claims domain.Claims, id int64) (*domain.Prospect, error) {
	prospect, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !claims.CanAccess(prospect.UserID) {
		return nil, domain.ErrForbidden
	}
	return prospect, nil
}

func (s *ProspectService) Create(ctx context.Context, claims domain.Claims, input ports.ProspectInput) (*domain.Prospect, error) {
	prospect := &domain.Prospect{
		UserID:           claims.UserID,
		Name:             input.Name,
		CompanyName:      input.CompanyName,
		BusinessCategory: input.BusinessCategory,
		ContactEmail:     input.ContactEmail,
		ContactPhone:     input.ContactPhone,
		InterestLevel:    input.InterestLevel,
		Status:           input.Status,
		NextFollowUpDate: input.NextFollowUpDate,
		Notes:            input.Notes,
	}

	created, err := s.repo.Create(ctx, prospect)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", claims.UserID).Msg("failed to create prospect")
		return nil, err
	}

	s.logger.Info().Int64("prospect_id", created.ID).Int64("user_id", claims.UserID).Msg("prospect created")
	return created, nil
}

func (s *ProspectService) Update(ctx context.Context, claims domain.Claims, id int64, input ports.ProspectInput) (*domain.Prospect, error) {
	prospect, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !claims.CanAccess(prospect.UserID) {
		return nil, domain.ErrForbidden
	}

	prospect.Name = input.Name
	prospect.CompanyName = input.CompanyName
	prospect.BusinessCategory = input.BusinessCategory
	prospect.ContactEmail = input.ContactEmail
	prospect.ContactPhone = input.ContactPhone
	prospect.InterestLevel = input.InterestLevel
	prospect.Status = input.Status
	prospect.NextFollowUpDate = input.NextFollowUpDate
	prospect.Notes = input.Notes

	return s.repo.Update(ctx, prospect)
}

func (s *ProspectService) Delete(ctx context.Context, claims domain.Claims, id int64) error {
	prospect, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !claims.CanAccess(prospect.UserID) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("prospect_id", id).Int64("user_id", claims.UserID).Msg("prospect deleted")
	return nil
}
