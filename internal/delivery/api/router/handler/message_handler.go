package handler

import (
	"log/slog"
	"net/http"

	"agrox/internal/delivery/api/response"
	"agrox/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MessageHandlerParams holds dependencies for MessageHandler, injected by Fx.
type MessageHandlerParams struct {
	fx.In

	MessageUC usecase.MessageUsecase
	Logger    *slog.Logger
}

// MessageHandler serves direct messages
type MessageHandler struct {
	messageUC usecase.MessageUsecase
	logger    *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler
func NewMessageHandler(params MessageHandlerParams) *MessageHandler {
	return &MessageHandler{
		messageUC: params.MessageUC,
		logger:    params.Logger,
	}
}

// SendDirectMessageRequest represents a message to another user
type SendDirectMessageRequest struct {
	Content string `json:"content"`
}

// UnreadResponse carries an unread counter
type UnreadResponse struct {
	Unread int `json:"unread"`
}

// Conversations lists the caller's conversations
func (h *MessageHandler) Conversations(c echo.Context) error {
	conversations, err := h.messageUC.Conversations(c.Request().Context(), currentSession(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, conversations)
}

// Open returns the thread with another user and marks it read
func (h *MessageHandler) Open(c echo.Context) error {
	thread, err := h.messageUC.Open(c.Request().Context(), currentSession(c), c.Param("email"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, thread)
}

// Send posts a message to another user
func (h *MessageHandler) Send(c echo.Context) error {
	var req SendDirectMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message")
	}

	msg, err := h.messageUC.Send(c.Request().Context(), currentSession(c), c.Param("email"), req.Content)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, msg)
}

// Unread returns the caller's unread message count
func (h *MessageHandler) Unread(c echo.Context) error {
	count, err := h.messageUC.UnreadCount(c.Request().Context(), currentSession(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &UnreadResponse{Unread: count})
}
