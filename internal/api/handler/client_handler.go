package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/growtiva/crm-api/internal/core/ports"
)

// ClientHandler handles HTTP requests for client operations.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

type clientRequest struct {
	Name                    string     `json:"name" validate:"required"`
	CompanyName             string     `json:"company_name"`
	BusinessCategory        string     `json:"business_category" validate:"required"`
	ContactEmail            string     `json:"contact_email" validate:"omitempty,email"`
	ContactPhone            string     `json:"contact_phone"`
	Status                  string     `json:"status"`
	SignedDate              *time.Time `json:"signed_date"`
	EstimatedMonthlyRevenue float64    `json:"estimated_monthly_revenue" validate:"gte=0"`
}

func (r clientRequest) toInput() ports.ClientInput {
	return ports.ClientInput{
		Name:                    r.Name,
		CompanyName:             r.CompanyName,
		BusinessCategory:        r.BusinessCategory,
		ContactEmail:            r.ContactEmail,
		ContactPhone:            r.ContactPhone,
		Status:                  r.Status,
		SignedDate:              r.SignedDate,
		EstimatedMonthlyRevenue: r.EstimatedMonthlyRevenue,
	}
}

// List handles GET /clients.
//
// @Summary      List clients visible to the caller
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query  int     false  "Rows to skip (default 0)"
// @Param        limit  query  int     false  "Max rows (default 100)"
// @Param        city   query  string  false  "Filter by owning user's city"
// @Success      200  {array}   domain.Client
// @Failure      401  {object}  map[string]string
// @Router       /clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	skip, limit := pagination(c)

	clients, err := h.service.List(c.Request().Context(), claims, ports.ListClientsInput{
		City:  c.QueryParam("city"),
		Skip:  skip,
		Limit: limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// Get handles GET /clients/:id.
func (h *ClientHandler) Get(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	client, err := h.service.Get(c.Request().Context(), claims, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Create handles POST /clients. The new client is owned by the caller.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      clientRequest  true  "Client details"
// @Success      201  {object}  domain.Client
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}

	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.service.Create(c.Request().Context(), claims, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, client)
}

// Update handles PUT /clients/:id.
func (h *ClientHandler) Update(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.service.Update(c.Request().Context(), claims, id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Delete handles DELETE /clients/:id.
func (h *ClientHandler) Delete(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), claims, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
