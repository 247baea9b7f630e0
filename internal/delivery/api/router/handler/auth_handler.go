package handler

import (
	"log/slog"
	"net/http"
	"time"

	"agrox/internal/delivery/api/response"
	"agrox/internal/domain/entity"
	"agrox/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// AuthHandler holds dependencies for account and session handlers
type AuthHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// SessionResponse is a session without the stored credential.
type SessionResponse struct {
	User      *entity.User `json:"user"`
	StartedAt time.Time    `json:"startedAt"`
}

func newSessionResponse(sess *entity.Session) *SessionResponse {
	return &SessionResponse{
		User:      sess.User.Sanitized(),
		StartedAt: sess.StartedAt,
	}
}

// PasswordStrengthRequest represents the request body of the password meter
type PasswordStrengthRequest struct {
	Password string `json:"password"`
}

// Register handles account creation. The form is checked by the usecase so
// the first failing rule is reported.
func (h *AuthHandler) Register(c echo.Context) error {
	var req usecase.RegisterInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	sess, err := h.sessionUC.Register(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newSessionResponse(sess))
}

// Login handles credential login
func (h *AuthHandler) Login(c echo.Context) error {
	var req usecase.LoginInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	sess, err := h.sessionUC.Login(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSessionResponse(sess))
}

// Logout removes the current user
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.sessionUC.Logout(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, message("Logged out"))
}

// Session returns the logged in user
func (h *AuthHandler) Session(c echo.Context) error {
	sess, err := h.sessionUC.Current(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSessionResponse(sess))
}

// PasswordStrength scores a candidate password
func (h *AuthHandler) PasswordStrength(c echo.Context) error {
	var req PasswordStrengthRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}

	return response.Success(c, http.StatusOK, h.sessionUC.PasswordStrength(req.Password))
}
