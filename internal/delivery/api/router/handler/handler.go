// Package handler contains the echo handlers of the marketplace API.
package handler

import (
	"net/http"

	"agrox/internal/delivery/api/middleware"
	"agrox/internal/delivery/api/response"
	"agrox/internal/domain/entity"
	domainerrors "agrox/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// currentSession returns the session set by the session middleware. A nil
// session makes the usecases answer with ErrNotLoggedIn.
func currentSession(c echo.Context) *entity.Session {
	sess, _ := middleware.GetSession(c)

	return sess
}

// bindAndValidate decodes req and checks its validate tags. Binding failures
// are reported as a validation error.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.NewValidationError([]string{"malformed request"})
	}

	return c.Validate(req)
}

func message(text string) map[string]string {
	return map[string]string{"message": text}
}
