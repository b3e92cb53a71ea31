package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/growtiva/crm-api/internal/api/metrics"
	"github.com/growtiva/crm-api/internal/core/domain"
	"github.com/growtiva/crm-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login authenticates form credentials and issues a bearer token.
//
// @Summary      Issue an access token
// @Tags         authentication
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "User email"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  tokenResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /token [post]
func (h *AuthHandler) Login(c echo.Context) error {
	email := c.FormValue("username")
	password := c.FormValue("password")
	if email == "" || password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}

	token, err := h.authService.Login(c.Request().Context(), email, password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		case errors.Is(err, domain.ErrAccountInactive):
			metrics.LoginsTotal.WithLabelValues("inactive").Inc()
		default:
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me returns the verified claims of the calling user.
//
// @Summary      Current user claims
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Claims
// @Failure      401  {object}  map[string]string
// @Router       /users/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	claims, err := claimsFrom(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, claims)
}
