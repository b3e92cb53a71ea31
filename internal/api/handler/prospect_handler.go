package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/growtiva/crm-api/internal/core/ports"
)

// ProspectHandler handles HTTP requests for prospect operations.
type ProspectHandler struct {
	service ports.ProspectService
}

func NewProspectHandler(service ports.ProspectService) *ProspectHandler {
	return &ProspectHandler{service: service}
}

type prospectRequest struct {
	Name             string     `json:"name" validate:"required"`
	CompanyName      string     `json:"company_name"`
	BusinessCategory string     `json:"business_category" validate:"required"`
	ContactEmail     string     `json:"contact_email" validate:"omitempty,email"`
	ContactPhone     string     `json:"contact_phone"`
	InterestLevel    string     `json:"interest_level" validate:"omitempty,oneof=low medium high"`
	Status           string     `json:"status" validate:"required"`
	NextFollowUpDate *time.Time `json:"next_follow_up_date"`
	Notes            string     `json:"notes"`
}

func (r prospectRequest) toInput() ports.ProspectInput {
	return ports.ProspectInput{
		Name:             r.Name,
		CompanyName:      r.CompanyName,
		BusinessCategory: r.BusinessCategory,
		ContactEmail:     r.ContactEmail,
		ContactPhone:     r.ContactPhone,
		InterestLevel:    r.InterestLevel,
		Status:           r.Status,
		NextFollowUpDate: r.NextFollowUpDate,
		Notes:            r.Notes,
	}
}

// List handles GET /prospects.
func (h *ProspectHandler) List(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	skip, limit := pagination(c)

	prospects, err := h.service.List(c.Request().Context(), claims, ports.ListProspectsInput{
		Skip:  skip,
		Limit: limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, prospects)
}

// Recommended handles GET /prospects/recommended: the prospects worth
// contacting next, ranked by interest and follow-up date.
//
// @Summary      Recommended prospects to follow up
// @Tags         prospects
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query  int  false  "Max rows (default 3)"
// @Success      200  {array}   domain.Prospect
// @Failure      401  {object}  map[string]string
// @Router       /prospects/recommended [get]
func (h *ProspectHandler) Recommended(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}

	prospects, err := h.service.Recommended(c.Request().Context(), claims, queryInt(c, "limit", 0))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, prospects)
}

// Get handles GET /prospects/:id.
func (h *ProspectHandler) Get(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	prospect, err := h.service.Get(c.Request().Context(), claims, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, prospect)
}

// Create handles POST /prospects.
func (h *ProspectHandler) Create(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}

	var req prospectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	prospect, err := h.service.Create(c.Request().Context(), claims, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, prospect)
}

// Update handles PUT /prospects/:id.
func (h *ProspectHandler) Update(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req prospectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	prospect, err := h.service.Update(c.Request().Context(), claims, id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, prospect)
}

// Delete handles DELETE /prospects/:id.
func (h *ProspectHandler) Delete(c echo.Context) error {
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
