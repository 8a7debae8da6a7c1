package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mercadillo/storefront/internal/api/metrics"
	"github.com/mercadillo/storefront/internal/api/middleware"
	"github.com/mercadillo/storefront/internal/core/domain"
	"github.com/mercadillo/storefront/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	cookieTTL   time.Duration
	// secureCookie marks the session cookie Secure in production.
	secureCookie bool
}

func NewAuthHandler(authService ports.AuthService, cookieTTL time.Duration, secureCookie bool) *AuthHandler {
	return &AuthHandler{authService: authService, cookieTTL: cookieTTL, secureCookie: secureCookie}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return err
	}

	user, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username:    req.Username,
		DisplayName: req.DisplayName,
		Password:    req.Password,
		Email:       req.Email,
		Age:         req.Age,
		Role:        req.Role,
		AvatarRef:   req.AvatarRef,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateUser) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		} else {
			metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, authResponse{User: user})
}

// Login authenticates a user and sets the session token cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	signed, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(h.cookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: signed, User: user})
}

// Logout clears the session cookie. Tokens are stateless, so the previous
// token simply ages out at its expiry.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, map[string]string{"status": "logged out"})
}

// Me returns the identity recovered from the caller's session token.
//
// @Summary      Current identity
// @Tags         auth
// @Produce      json
// @Success      200  {object}  identity
// @Failure      401  {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	id, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, id)
}
