package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/growtiva/crm-api/internal/core/ports"
)

// ContentItemHandler handles HTTP requests for content item operations.
type ContentItemHandler struct {
	service ports.ContentItemService
}

func NewContentItemHandler(service ports.ContentItemService) *ContentItemHandler {
	return &ContentItemHandler{service: service}
}

type contentItemRequest struct {
	ContentType      string `json:"content_type" validate:"required"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	InstagramPostURL string `json:"instagram_post_url" validate:"required,url"`
}

func (r contentItemRequest) toInput() ports.ContentItemInput {
	return ports.ContentItemInput{
		ContentType:      r.ContentType,
		Title:            r.Title,
		Description:      r.Description,
		InstagramPostURL: r.InstagramPostURL,
	}
}

// List handles GET /content-items. Optional client_id narrows to one client;
// visibility always follows the parent client's owner.
func (h *ContentItemHandler) List(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	skip, limit := pagination(c)

	var clientID int64
	if raw := c.QueryParam("client_id"); raw != "" {
		clientID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || clientID <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid client_id")
		}
	}

	items, err := h.service.List(c.Request().Context(), claims, ports.ListContentItemsInput{
		ClientID: clientID,
		Skip:     skip,
		Limit:    limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /content-items/:id.
func (h *ContentItemHandler) Get(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	item, err := h.service.Get(c.Request().Context(), claims, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Create handles POST /content-items?client_id=N. The target client must be
// accessible to the caller; nothing is written otherwise.
//
// @Summary      Create a content item under a client
// @Tags         content items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        client_id  query     int                 true  "Parent client id"
// @Param        body       body      contentItemRequest  true  "Content item details"
// @Success      201  {object}  domain.ContentItem
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /content-items [post]
func (h *ContentItemHandler) Create(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}

	clientID, err := strconv.ParseInt(c.QueryParam("client_id"), 10, 64)
	if err != nil || clientID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "client_id query parameter is required")
	}

	var req contentItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.Create(c.Request().Context(), claims, clientID, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// Update handles PUT /content-items/:id.
func (h *ContentItemHandler) Update(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req contentItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.Update(c.Request().Context(), claims, id, req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /content-items/:id.
func (h *ContentItemHandler) Delete(c echo.Context) error {
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
