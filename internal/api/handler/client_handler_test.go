package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/growtiva/crm-api/internal/api/middleware"
	"github.com/growtiva/crm-api/internal/core/domain"
	"github.com/growtiva/crm-api/internal/core/ports"
)

// stubClientService records the arguments of the last call and replays
// canned results.
type stubClientService struct {
	lastClaims domain.Claims
	lastInput  ports.ClientInput
	lastList   ports.ListClientsInput
	lastID     int64
	client     *domain.Client
	err        error
}

func (s *stubClientService) List(_ context.Context, claims domain.Claims, input ports.ListClientsInput) ([]*domain.Client, error) {
	s.lastClaims, s.lastList = claims, input
	if s.err != nil {
		return nil, s.err
	}
	return []*domain.Client{s.client}, nil
}

func (s *stubClientService) Get(_ context.Context, claims domain.Claims, id int64) (*domain.Client, error) {
	s.lastClaims, s.lastID = claims, id
	return s.client, s.err
}

func (s *stubClientService) Create(_ context.Context, claims domain.Claims, input ports.ClientInput) (*domain.Client, error) {
	s.lastClaims, s.lastInput = claims, input
	return s.client, s.err
}

func (s *stubClientService) Update(_ context.Context, claims domain.Claims, id int64, input ports.ClientInput) (*domain.Client, error) {
	s.lastClaims, s.lastID, s.lastInput = claims, id, input
	return s.client, s.err
}

func (s *stubClientService) Delete(_ context.Context, claims domain.Claims, id int64) error {
	s.lastClaims, s.lastID = claims, id
	return s.err
}

var _ ports.ClientService = (*stubClientService)(nil)

var testClaims = domain.Claims{UserID: 2, Role: domain.RoleUser, City: "Puebla"}

// newRequestContext builds an echo context with the validator installed and
// claims already injected, the state a protected handler sees in production.
func newRequestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	middleware.SetClaims(c, testClaims)
	return c, rec
}

func TestClientHandler_List_PassesQueryParams(t *testing.T) {
	svc := &stubClientService{client: &domain.Client{ID: 1}}
	h := NewClientHandler(svc)

	c, rec := newRequestContext(http.MethodGet, "/clients?skip=5&limit=20&city=CDMX", "")
	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if svc.lastClaims != testClaims {
		t.Errorf("claims not forwarded: %+v", svc.lastClaims)
	}
	if svc.lastList.Skip != 5 || svc.lastList.Limit != 20 || svc.lastList.City != "CDMX" {
		t.Errorf("query params not forwarded: %+v", svc.lastList)
	}
}

func TestClientHandler_List_PaginationDefaults(t *testing.T) {
	svc := &stubClientService{client: &domain.Client{ID: 1}}
	h := NewClientHandler(svc)

	c, _ := newRequestContext(http.MethodGet, "/clients?skip=-3&limit=bogus", "")
	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.lastList.Skip != 0 || svc.lastList.Limit != defaultLimit {
		t.Errorf("bad params must fall back to defaults, got %+v", svc.lastList)
	}
}

func TestClientHandler_Get_InvalidID(t *testing.T) {
	h := NewClientHandler(&stubClientService{})

	for _, raw := range []string{"abc", "0", "-4"} {
		c, _ := newRequestContext(http.MethodGet, "/clients/"+raw, "")
		c.SetParamNames("id")
		c.SetParamValues(raw)

		err := h.Get(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Errorf("id %q: expected 400, got %v", raw, err)
		}
	}
}

func TestClientHandler_Get_PropagatesServiceErrors(t *testing.T) {
	for _, wantErr := range []error{domain.ErrClientNotFound, domain.ErrForbidden} {
		svc := &stubClientService{err: wantErr}
		h := NewClientHandler(svc)

		c, _ := newRequestContext(http.MethodGet, "/clients/10", "")
		c.SetParamNames("id")
		c.SetParamValues("10")

		if err := h.Get(c); !errors.Is(err, wantErr) {
			t.Errorf("expected %v untouched, got %v", wantErr, err)
		}
	}
}

func TestClientHandler_Create_Success(t *testing.T) {
	svc := &stubClientService{client: &domain.Client{ID: 9, UserID: 2, Name: "Tacos El Güero"}}
	h := NewClientHandler(svc)

	body := `{"name":"Tacos El Güero","business_category":"restaurant","contact_email":"taco@example.com"}`
	c, rec := newRequestContext(http.MethodPost, "/clients", body)
	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}
	if svc.lastInput.Name != "Tacos El Güero" || svc.lastInput.BusinessCategory != "restaurant" {
		t.Errorf("input not forwarded: %+v", svc.lastInput)
	}

	var created domain.Client
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if created.ID != 9 {
		t.Errorf("expected created row echoed back, got id %d", created.ID)
	}
}

func TestClientHandler_Create_ValidationFailures(t *testing.T) {
	h := NewClientHandler(&stubClientService{})

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"business_category":"restaurant"}`},
		{"missing category", `{"name":"X"}`},
		{"bad contact email", `{"name":"X","business_category":"restaurant","contact_email":"not-an-email"}`},
		{"negative revenue", `{"name":"X","business_category":"restaurant","estimated_monthly_revenue":-1}`},
		{"malformed json", `{"name":`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newRequestContext(http.MethodPost, "/clients", tc.body)
			err := h.Create(c)

			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %v", err)
			}
		})
	}
}

func TestClientHandler_Update_ForwardsIDAndInput(t *testing.T) {
	svc := &stubClientService{client: &domain.Client{ID: 10}}
	h := NewClientHandler(svc)

	body := `{"name":"Renamed","business_category":"retail"}`
	c, rec := newRequestContext(http.MethodPut, "/clients/10", body)
	c.SetParamNames("id")
	c.SetParamValues("10")

	if err := h.Update(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if svc.lastID != 10 || svc.lastInput.Name != "Renamed" {
		t.Errorf("update args not forwarded: id=%d input=%+v", svc.lastID, svc.lastInput)
	}
}

func TestClientHandler_Delete_NoContent(t *testing.T) {
	svc := &stubClientService{}
	h := NewClientHandler(svc)

	c, rec := newRequestContext(http.MethodDelete, "/clients/10", "")
	c.SetParamNames("id")
	c.SetParamValues("10")

	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if svc.lastID != 10 {
		t.Errorf("expected delete of id 10, got %d", svc.lastID)
	}
}

func TestClientHandler_WithoutClaims(t *testing.T) {
	h := NewClientHandler(&stubClientService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without claims, got %v", err)
	}
}
