package context

import (
	"agrox/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeySession is the key for storing the logged in session in echo.Context.
const KeySession ContextKey = "session"

// SetSession stores the session loaded by the session middleware.
func SetSession(c echo.Context, sess *entity.Session) {
	c.Set(string(KeySession), sess)
}

// GetSession returns the session stored by SetSession.
func GetSession(c echo.Context) (*entity.Session, bool) {
	sess, ok := c.Get(string(KeySession)).(*entity.Session)
	if !ok || sess.Email() == "" {
		return nil, false
	}

	return sess, true
}
