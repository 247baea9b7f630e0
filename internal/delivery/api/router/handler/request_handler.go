package handler

import (
	"log/slog"
	"net/http"

	"agrox/internal/delivery/api/response"
	"agrox/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RequestHandlerParams holds dependencies for RequestHandler, injected by Fx.
type RequestHandlerParams struct {
	fx.In

	RequestUC usecase.RequestUsecase
	Logger    *slog.Logger
}

// RequestHandler serves purchase requests and their chat
type RequestHandler struct {
	requestUC usecase.RequestUsecase
	logger    *slog.Logger
}

// NewRequestHandler is the constructor for RequestHandler
func NewRequestHandler(params RequestHandlerParams) *RequestHandler {
	return &RequestHandler{
		requestUC: params.RequestUC,
		logger:    params.Logger,
	}
}

// SendMessageRequest represents a chat line on an approved request
type SendMessageRequest struct {
	Text string `json:"text"`
}

// Create places a purchase request on a listing
func (h *RequestHandler) Create(c echo.Context) error {
	var req usecase.CreateRequestInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request input")
	}

	created, err := h.requestUC.Create(c.Request().Context(), currentSession(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, created)
}

// ListIncoming returns requests on the caller's listings
func (h *RequestHandler) ListIncoming(c echo.Context) error {
	details, err := h.requestUC.ListIncoming(c.Request().Context(), currentSession(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, details)
}

// ListOutgoing returns requests the caller made
func (h *RequestHandler) ListOutgoing(c echo.Context) error {
	details, err := h.requestUC.ListOutgoing(c.Request().Context(), currentSession(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, details)
}

// Get returns one request visible to the caller
func (h *RequestHandler) Get(c echo.Context) error {
	details, err := h.requestUC.Details(c.Request().Context(), currentSession(c), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, details)
}

// Approve answers a pending request positively
func (h *RequestHandler) Approve(c echo.Context) error {
	updated, err := h.requestUC.Approve(c.Request().Context(), currentSession(c), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updated)
}

// Decline answers a pending request negatively
func (h *RequestHandler) Decline(c echo.Context) error {
	updated, err := h.requestUC.Decline(c.Request().Context(), currentSession(c), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updated)
}

// SendMessage appends a chat line to an approved request
func (h *RequestHandler) SendMessage(c echo.Context) error {
	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message")
	}

	updated, err := h.requestUC.SendMessage(c.Request().Context(), currentSession(c), c.Param("id"), req.Text)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, updated)
}
