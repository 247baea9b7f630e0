package handler

import (
	"log/slog"
	"net/http"

	"agrox/internal/delivery/api/response"
	"agrox/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InquiryHandlerParams holds dependencies for InquiryHandler, injected by Fx.
type InquiryHandlerParams struct {
	fx.In

	InquiryUC usecase.InquiryUsecase
	Logger    *slog.Logger
}

// InquiryHandler serves inquiries on facilities and services
type InquiryHandler struct {
	inquiryUC usecase.InquiryUsecase
	logger    *slog.Logger
}

// NewInquiryHandler is the constructor for InquiryHandler
func NewInquiryHandler(params InquiryHandlerParams) *InquiryHandler {
	return &InquiryHandler{
		inquiryUC: params.InquiryUC,
		logger:    params.Logger,
	}
}

// InquiryRequest is the free text sent to a provider
type InquiryRequest struct {
	Message string `json:"message"`
}

// InquireFacility sends an inquiry about a storage facility
func (h *InquiryHandler) InquireFacility(c echo.Context) error {
	var req InquiryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inquiry")
	}

	inquiry, err := h.inquiryUC.InquireFacility(c.Request().Context(), currentSession(c), c.Param("id"), req.Message)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, inquiry)
}

// InquireService sends an inquiry about a logistics service
func (h *InquiryHandler) InquireService(c echo.Context) error {
	var req InquiryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inquiry")
	}

	inquiry, err := h.inquiryUC.InquireService(c.Request().Context(), currentSession(c), c.Param("id"), req.Message)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, inquiry)
}

// ListIncoming returns inquiries addressed to the caller
func (h *InquiryHandler) ListIncoming(c echo.Context) error {
	details, err := h.inquiryUC.ListIncoming(c.Request().Context(), currentSession(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, details)
}
