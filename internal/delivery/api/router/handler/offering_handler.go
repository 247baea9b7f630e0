package handler

import (
	"log/slog"
	"net/http"

	"agrox/internal/delivery/api/response"
	"agrox/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OfferingHandlerParams holds dependencies for OfferingHandler, injected by Fx.
type OfferingHandlerParams struct {
	fx.In

	FacilityUC usecase.FacilityUsecase
	ServiceUC  usecase.ServiceUsecase
	Logger     *slog.Logger
}

// OfferingHandler serves storage facilities and logistics services
type OfferingHandler struct {
	facilityUC usecase.FacilityUsecase
	serviceUC  usecase.ServiceUsecase
	logger     *slog.Logger
}

// NewOfferingHandler is the constructor for OfferingHandler
func NewOfferingHandler(params OfferingHandlerParams) *OfferingHandler {
	return &OfferingHandler{
		facilityUC: params.FacilityUC,
		serviceUC:  params.ServiceUC,
		logger:     params.Logger,
	}
}

// ListFacilities returns every storage facility
func (h *OfferingHandler) ListFacilities(c echo.Context) error {
	facilities, err := h.facilityUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, facilities)
}

// ListMyFacilities returns the caller's facilities
func (h *OfferingHandler) ListMyFacilities(c echo.Context) error {
	facilities, err := h.facilityUC.ListMine(c.Request().Context(), currentSession(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, facilities)
}

// GetFacility returns one facility
func (h *OfferingHandler) GetFacility(c echo.Context) error {
	facility, err := h.facilityUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, facility)
}

// CreateFacility adds a facility owned by the caller
func (h *OfferingHandler) CreateFacility(c echo.Context) error {
	var req usecase.FacilityInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid facility input")
	}

	facility, err := h.facilityUC.Create(c.Request().Context(), currentSession(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, facility)
}

// UpdateFacility replaces the form fields of a facility
func (h *OfferingHandler) UpdateFacility(c echo.Context) error {
	var req usecase.FacilityInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid facility input")
	}

	facility, err := h.facilityUC.Update(c.Request().Context(), currentSession(c), c.Param("id"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, facility)
}

// DeleteFacility removes one of the caller's facilities
func (h *OfferingHandler) DeleteFacility(c echo.Context) error {
	if err := h.facilityUC.Delete(c.Request().Context(), currentSession(c), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListServices returns every logistics service
func (h *OfferingHandler) ListServices(c echo.Context) error {
	services, err := h.serviceUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, services)
}

// ListMyServices returns the caller's services
func (h *OfferingHandler) ListMyServices(c echo.Context) error {
	services, err := h.serviceUC.ListMine(c.Request().Context(), currentSession(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, services)
}

// GetService returns one service
func (h *OfferingHandler) GetService(c echo.Context) error {
	service, err := h.serviceUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, service)
}

// CreateService adds a service owned by the caller
func (h *OfferingHandler) CreateService(c echo.Context) error {
	var req usecase.ServiceInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}

	service, err := h.serviceUC.Create(c.Request().Context(), currentSession(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, service)
}

// UpdateService replaces the form fields of a service
func (h *OfferingHandler) UpdateService(c echo.Context) error {
	var req usecase.ServiceInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}

	service, err := h.serviceUC.Update(c.Request().Context(), currentSession(c), c.Param("id"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, service)
}

// DeleteService removes one of the caller's services
func (h *OfferingHandler) DeleteService(c echo.Context) error {
	if err := h.serviceUC.Delete(c.Request().Context(), currentSession(c), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
