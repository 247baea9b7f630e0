package handler

import (
	"log/slog"
	"net/http"

	"agrox/internal/delivery/api/response"
	"agrox/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves the notification bell
type NotificationHandler struct {
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// ListNotificationsRequest is the query of the notification list
type ListNotificationsRequest struct {
	Limit int `json:"limit" query:"limit" validate:"gte=0"`
}

// MarkAllReadResponse reports how many notifications changed
type MarkAllReadResponse struct {
	Updated int `json:"updated"`
}

// List returns the newest notifications of the caller
func (h *NotificationHandler) List(c echo.Context) error {
	var req ListNotificationsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	notifications, err := h.notificationUC.List(c.Request().Context(), currentSession(c), req.Limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications)
}

// Badge returns the unread counter and its label
func (h *NotificationHandler) Badge(c echo.Context) error {
	badge, err := h.notificationUC.Badge(c.Request().Context(), currentSession(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, badge)
}

// MarkRead marks one notification read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	if err := h.notificationUC.MarkRead(c.Request().Context(), currentSession(c), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// MarkAllRead marks every notification of the caller read
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	updated, err := h.notificationUC.MarkAllRead(c.Request().Context(), currentSession(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &MarkAllReadResponse{Updated: updated})
}
