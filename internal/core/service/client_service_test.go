package service

import (
	"context"
	"errors"
	"testing"

	"github.com/growtiva/crm-api/internal/core/domain"
	"github.com/growtiva/crm-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubClientRepo struct {
	byID       map[int64]*domain.Client
	cities     map[int64]string // owner id -> city, mirrors the users join
	nextID     int64
	lastFilter ports.ListClientsFilter
	createErr  error
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{
		byID:   make(map[int64]*domain.Client),
		cities: make(map[int64]string),
		nextID: 1,
	}
}

func (r *stubClientRepo) seed(c domain.Client) *domain.Client {
	if c.ID == 0 {
		c.ID = r.nextID
	}
	if c.ID >= r.nextID {
		r.nextID = c.ID + 1
	}
	clone := c
	r.byID[c.ID] = &clone
	return &clone
}

func (r *stubClientRepo) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	clone := *c
	clone.ID = r.nextID
	r.nextID++
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubClientRepo) FindByID(_ context.Context, id int64) (*domain.Client, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	clone := *c
	return &clone, nil
}

// List applies the same filters the real Postgres query would use.
func (r *stubClientRepo) List(_ context.Context, f ports.ListClientsFilter) ([]*domain.Client, error) {
	r.lastFilter = f
	out := []*domain.Client{}
	for _, c := range r.byID {
		if f.OwnerID != 0 && c.UserID != f.OwnerID {
			continue
		}
		if f.City != "" && r.cities[c.UserID] != f.City {
			continue
		}
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubClientRepo) Update(_ context.Context, c *domain.Client) (*domain.Client, error) {
	if _, ok := r.byID[c.ID]; !ok {
		return nil, domain.ErrClientNotFound
	}
	clone := *c
	r.byID[c.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubClientRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrClientNotFound
	}
	delete(r.byID, id)
	return nil
}

var _ ports.ClientRepository = (*stubClientRepo)(nil)

// ---------------------------------------------------------------------------
// List tests
// ---------------------------------------------------------------------------

func TestClientService_List_NonAdminRestrictedToOwnRows(t *testing.T) {
	repo := newStubClientRepo()
	// Both owners share the caller's city so only the owner restriction can
	// explain the filtered result.
	repo.cities[2] = userClaims.City
	repo.cities[3] = userClaims.City
	repo.seed(domain.Client{UserID: 2, Name: "mine"})
	repo.seed(domain.Client{UserID: 3, Name: "theirs"})
	svc := NewClientService(repo, discardLogger)

	got, err := svc.List(context.Background(), userClaims, ports.ListClientsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 1 || got[0].Name != "mine" {
		t.Errorf("non-admin must only see own clients, got %d rows", len(got))
	}
	if repo.lastFilter.OwnerID != userClaims.UserID {
		t.Errorf("owner filter must be forced to caller id, got %d", repo.lastFilter.OwnerID)
	}
}

func TestClientService_List_NonAdminCityDefaultsToClaims(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, discardLogger)

	if _, err := svc.List(context.Background(), userClaims, ports.ListClientsInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastFilter.City != userClaims.City {
		t.Errorf("empty city filter must default to the caller's city, got %q", repo.lastFilter.City)
	}
}

func TestClientService_List_AdminSeesEverything(t *testing.T) {
	repo := newStubClientRepo()
	repo.seed(domain.Client{UserID: 2, Name: "a"})
	repo.seed(domain.Client{UserID: 3, Name: "b"})
	svc := NewClientService(repo, discardLogger)

	got, err := svc.List(context.Background(), adminClaims, ports.ListClientsInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Errorf("admin must see all clients, got %d", len(got))
	}
	if repo.lastFilter.OwnerID != 0 {
		t.Errorf("admin list must not carry an owner filter, got %d", repo.lastFilter.OwnerID)
	}
	if repo.lastFilter.City != "" {
		t.Errorf("admin list must not inherit the admin's own city, got %q", repo.lastFilter.City)
	}
}

func TestClientService_List_AdminCityFilter(t *testing.T) {
	repo := newStubClientRepo()
	repo.cities[2] = "Puebla"
	repo.cities[3] = "CDMX"
	repo.seed(domain.Client{UserID: 2, Name: "puebla-client"})
	repo.seed(domain.Client{UserID: 3, Name: "cdmx-client"})
	svc := NewClientService(repo, discardLogger)

	got, err := svc.List(context.Background(), adminClaims, ports.ListClientsInput{City: "Puebla"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "puebla-client" {
		t.Errorf("city filter must match the owning user's city, got %d rows", len(got))
	}
}

func TestClientService_List_DefaultLimit(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, discardLogger)

	if _, err := svc.List(context.Background(), adminClaims, ports.ListClientsInput{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastFilter.Limit != defaultListLimit {
		t.Errorf("expected default limit %d, got %d", defaultListLimit, repo.lastFilter.Limit)
	}
}

// ---------------------------------------------------------------------------
// Get / Update / Delete ownership tests
// ---------------------------------------------------------------------------

func TestClientService_Get_NotFoundBeatsForbidden(t *testing.T) {
	svc := NewClientService(newStubClientRepo(), discardLogger)

	_, err := svc.Get(context.Background(), userClaims, 99)
	if !errors.Is(err, domain.ErrClientNotFound) {
		t.Errorf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientService_Get_OtherOwnerForbidden(t *testing.T) {
	repo := newStubClientRepo()
	repo.seed(domain.Client{ID: 10, UserID: 3})
	svc := NewClientService(repo, discardLogger)

	_, err := svc.Get(context.Background(), userClaims, 10)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestClientService_Get_AdminBypassesOwnership(t *testing.T) {
	repo := newStubClientRepo()
	repo.seed(domain.Client{ID: 10, UserID: 3})
	svc := NewClientService(repo, discardLogger)

	if _, err := svc.Get(context.Background(), adminClaims, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClientService_Create_OwnerIsCaller(t *testing.T) {
	repo := newStubClientRepo()
	svc := NewClientService(repo, discardLogger)

	created, err := svc.Create(context.Background(), userClaims, ports.ClientInput{
		Name:             "Tacos El Güero",
		BusinessCategory: "restaurant",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != userClaims.UserID {
		t.Errorf("owner must be the caller, got %d", created.UserID)
	}
}

func TestClientService_Update_OtherOwnerForbidden(t *testing.T) {
	repo := newStubClientRepo()
	repo.seed(domain.Client{ID: 10, UserID: 3, Name: "original"})
	svc := NewClientService(repo, discardLogger)

	_, err := svc.Update(context.Background(), userClaims, 10, ports.ClientInput{Name: "hijacked"})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if repo.byID[10].Name != "original" {
		t.Error("rejected update must not modify the row")
	}
}

func TestClientService_Update_OwnerKeptOnUpdate(t *testing.T) {
	repo := newStubClientRepo()
	repo.seed(domain.Client{ID: 10, UserID: 2, Name: "original"})
	svc := NewClientService(repo, discardLogger)

	updated, err := svc.Update(context.Background(), userClaims, 10, ports.ClientInput{Name: "renamed", BusinessCategory: "retail"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.UserID != 2 {
		t.Errorf("update must never reassign ownership, got owner %d", updated.UserID)
	}
	if updated.Name != "renamed" {
		t.Errorf("expected name renamed, got %q", updated.Name)
	}
}

func TestClientService_Delete_OtherOwnerForbidden(t *testing.T) {
	repo := newStubClientRepo()
	repo.seed(domain.Client{ID: 10, UserID: 3})
	svc := NewClientService(repo, discardLogger)

	if err := svc.Delete(context.Background(), userClaims, 10); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	if _, ok := repo.byID[10]; !ok {
		t.Error("forbidden delete must leave the row in place")
	}
}

func TestClientService_Delete_Owner(t *testing.T) {
	repo := newStubClientRepo()
	repo.seed(domain.Client{ID: 10, UserID: 2})
	svc := NewClientService(repo, discardLogger)

	if err := svc.Delete(context.Background(), userClaims, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.byID[10]; ok {
		t.Error("row must be gone after delete")
	}
}
