package handler

import (
	"context"
	"log/slog"
	"net/http"

	"agrox/internal/delivery/api/response"
	"agrox/internal/domain/wizard"
	"agrox/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WizardHandlerParams holds dependencies for WizardHandler, injected by Fx.
type WizardHandlerParams struct {
	fx.In

	WizardUC usecase.WizardUsecase
	Logger   *slog.Logger
}

// WizardHandler exposes the listing wizard. The client keeps the wizard
// state and posts it back on every call.
type WizardHandler struct {
	wizardUC usecase.WizardUsecase
	logger   *slog.Logger
}

// NewWizardHandler is the constructor for WizardHandler
func NewWizardHandler(params WizardHandlerParams) *WizardHandler {
	return &WizardHandler{
		wizardUC: params.WizardUC,
		logger:   params.Logger,
	}
}

// ValidateStepRequest asks for the errors of one step
type ValidateStepRequest struct {
	State wizard.State `json:"state"`
	Step  wizard.Step  `json:"step"`
}

// ValidateStepResponse lists the errors of one step
type ValidateStepResponse struct {
	Step   wizard.Step `json:"step"`
	Valid  bool        `json:"valid"`
	Errors []string    `json:"errors"`
}

// Begin starts a new wizard, or an edit when a listing was marked
func (h *WizardHandler) Begin(c echo.Context) error {
	view, err := h.wizardUC.Begin(c.Request().Context(), currentSession(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// Validate checks one step without moving
func (h *WizardHandler) Validate(c echo.Context) error {
	var req ValidateStepRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wizard state")
	}

	errs, err := h.wizardUC.Validate(c.Request().Context(), req.State, req.Step)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &ValidateStepResponse{
		Step:   req.Step,
		Valid:  len(errs) == 0,
		Errors: errs,
	})
}

// Next advances when the current step is valid
func (h *WizardHandler) Next(c echo.Context) error {
	return h.move(c, h.wizardUC.Next)
}

// Prev goes back one step
func (h *WizardHandler) Prev(c echo.Context) error {
	return h.move(c, h.wizardUC.Prev)
}

// Preview renders the listing card of the state
func (h *WizardHandler) Preview(c echo.Context) error {
	return h.move(c, h.wizardUC.Preview)
}

// Submit creates or updates the listing from the review step
func (h *WizardHandler) Submit(c echo.Context) error {
	var state wizard.State
	if err := c.Bind(&state); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wizard state")
	}

	listing, err := h.wizardUC.Submit(c.Request().Context(), currentSession(c), state)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusCreated
	if state.EditingID != "" {
		status = http.StatusOK
	}

	return response.Success(c, status, listing)
}

type wizardMove func(ctx context.Context, state wizard.State) (*usecase.WizardView, error)

func (h *WizardHandler) move(c echo.Context, fn wizardMove) error {
	var state wizard.State
	if err := c.Bind(&state); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wizard state")
	}

	view, err := fn(c.Request().Context(), state)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}
