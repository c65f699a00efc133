package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hrflow/internal/auth"
	"hrflow/internal/errors"
	"hrflow/internal/service"
)

// AuthHandler handles signup, login and logout.
type AuthHandler struct {
	authService  service.AuthService
	secureCookie bool
}

// NewAuthHandler creates a new auth handler. secureCookie marks the session
// cookie Secure, which production configs must enable.
func NewAuthHandler(authService service.AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		secureCookie: secureCookie,
	}
}

// SignupRequest represents a public signup.
type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required,min=2"`
	Phone    string `json:"phone" validate:"omitempty,max=50"`
}

// LoginRequest represents a login attempt.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SessionResponse is returned after signup or login.
type SessionResponse struct {
	User interface{} `json:"user"`
}

// Signup godoc
// @Summary Create an account and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, token, err := h.authService.Signup(c.Request().Context(), req.Email, req.Password, req.FullName, req.Phone)
	if err != nil {
		return domainError(err)
	}

	c.SetCookie(auth.NewSessionCookie(token, h.secureCookie))
	return c.JSON(http.StatusCreated, SessionResponse{User: user})
}

// Login godoc
// @Summary Authenticate and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if err == service.ErrInvalidCredentials {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: err.Error(),
				Code:  "INVALID_CREDENTIALS",
			})
		}
		return domainError(err)
	}

	c.SetCookie(auth.NewSessionCookie(token, h.secureCookie))
	return c.JSON(http.StatusOK, SessionResponse{User: user})
}

// Logout godoc
// @Summary End the session
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	// Sessions are stateless: logout only clears the cookie.
	c.SetCookie(auth.ClearSessionCookie(h.secureCookie))
	return c.JSON(http.StatusOK, map[string]string{
		"message": "logged out successfully",
	})
}
