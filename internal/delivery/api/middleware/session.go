package middleware

import (
	"log/slog"

	"agrox/internal/delivery/api/response"
	deliverycontext "agrox/internal/delivery/context"
	"agrox/internal/domain/entity"
	domainerrors "agrox/internal/domain/errors"
	"agrox/internal/errors"
	"agrox/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionMiddlewareParams holds dependencies for SessionMiddleware, injected by Fx.
type SessionMiddlewareParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionMiddleware loads the logged in user for protected routes.
type SessionMiddleware struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(params SessionMiddlewareParams) *SessionMiddleware {
	return &SessionMiddleware{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// Authenticate rejects the request with 401 unless a user is logged in.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := m.sessionUC.Current(c.Request().Context())
		if errors.Is(err, domainerrors.ErrNotLoggedIn) {
			return response.Unauthorized(c, domainerrors.ErrNotLoggedIn.ErrorCode(), domainerrors.ErrNotLoggedIn.Message())
		}
		if err != nil {
			return err
		}

		deliverycontext.SetSession(c, sess)

		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger).With(slog.String("user", sess.Email()))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(ctx, logger)))

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the session user has one of roles.
// It must be used AFTER the Authenticate middleware.
func (m *SessionMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, ok := deliverycontext.GetSession(c)
			if !ok {
				return response.Unauthorized(c, domainerrors.ErrNotLoggedIn.ErrorCode(), domainerrors.ErrNotLoggedIn.Message())
			}
			if !sess.HasRole(roles...) {
				return response.Forbidden(c, domainerrors.ErrForbidden.ErrorCode(), domainerrors.ErrForbidden.Message())
			}

			return next(c)
		}
	}
}

// GetSession returns the session stored by Authenticate.
func GetSession(c echo.Context) (*entity.Session, bool) {
	return deliverycontext.GetSession(c)
}
