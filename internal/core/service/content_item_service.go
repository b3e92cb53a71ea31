package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/growtiva/crm-api/internal/core/domain"
	"github.com/growtiva/crm-api/internal/core/ports"
)

// ContentItemService implements content item CRUD. Items have no owner column
// of their own: every check goes through the parent client's owner.
type ContentItemService struct {
	repo    ports.ContentItemRepository
	clients ports.ClientRepository
	logger  zerolog.Logger
}

func NewContentItemService(repo ports.ContentItemRepository, clients ports.ClientRepository, logger zerolog.Logger) *ContentItemService {
	return &ContentItemService{repo: repo, clients: clients, logger: logger}
}

func (s *ContentItemService) List(ctx context.Context, claims domain.Claims, input ports.ListContentItemsInput) ([]*domain.ContentItem, error) {
	filter := ports.ListContentItemsFilter{
		ClientID: input.ClientID,
		Skip:     input.Skip,
		Limit:    normalizeLimit(input.Limit),
	}
	if !claims.IsAdmin() {
		filter.OwnerID = claims.UserID
	}
	return s.repo.List(ctx, filter)
}

func (s *ContentItemService) Get(ctx context.Context, claims domain.Claims, id int64) (*domain.ContentItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkClientAccess(ctx, claims, item.ClientID); err != nil {
		return nil, err
	}
	return item, nil
}

// Create attaches a new item to clientID. The client must exist and be
// accessible to the caller before any row is written.
func (s *ContentItemService) Create(ctx context.Context, claims domain.Claims, clientID int64, input ports.ContentItemInput) (*domain.ContentItem, error) {
	if err := s.checkClientAccess(ctx, claims, clientID); err != nil {
		return nil, err
	}

	item := &domain.ContentItem{
		ClientID:         clientID,
		ContentType:      input.ContentType,
		Title:            input.Title,
		Description:      input.Description,
		InstagramPostURL: input.InstagramPostURL,
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		s.logger.Error().Err(err).Int64("client_id", clientID).Msg("failed to create content item")
		return nil, err
	}

	s.logger.Info().Int64("content_item_id", created.ID).Int64("client_id", clientID).Msg("content item created")
	return created, nil
}

func (s *ContentItemService) Update(ctx context.Context, claims domain.Claims, id int64, input ports.ContentItemInput) (*domain.ContentItem, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkClientAccess(ctx, claims, item.ClientID); err != nil {
		return nil, err
	}

	item.ContentType = input.ContentType
	item.Title = input.Title
	item.Description = input.Description
	item.InstagramPostURL = input.InstagramPostURL

	return s.repo.Update(ctx, item)
}

func (s *ContentItemService) Delete(ctx context.Context, claims domain.Claims, id int64) error {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.checkClientAccess(ctx, claims, item.ClientID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("content_item_id", id).Msg("content item deleted")
	return nil
}

// checkClientAccess resolves the parent client (not found wins over
// forbidden) and applies the ownership rule against its owner.
func (s *ContentItemService) checkClientAccess(ctx context.Context, claims domain.Claims, clientID int64) error {
	client, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		return err
	}
	if !claims.CanAccess(client.UserID) {
		return domain.ErrForbidden
	}
	return nil
}
