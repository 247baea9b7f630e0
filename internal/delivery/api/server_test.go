package api

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"agrox/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestEcho() *echo.Echo {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.Timeouts.ReadTimeout = 5 * time.Second
	cfg.HTTP.Timeouts.IdleTimeout = time.Minute

	return newEcho(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestNewEcho_AppliesTimeouts(t *testing.T) {
	e := newTestEcho()

	assert.Equal(t, 5*time.Second, e.Server.ReadTimeout)
	assert.Equal(t, time.Minute, e.Server.IdleTimeout)
	assert.NotNil(t, e.Validator)
}

func TestNewEcho_RejectsOversizedBody(t *testing.T) {
	e := newTestEcho()
	e.POST("/drafts", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	small := httptest.NewRequest(http.MethodPost, "/drafts", strings.NewReader(`{"title":"Wheat"}`))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, small)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	large := httptest.NewRequest(http.MethodPost, "/drafts", strings.NewReader(strings.Repeat("x", 4096)))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, large)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestNewEcho_RecoversPanics(t *testing.T) {
	e := newTestEcho()
	e.GET("/boom", func(echo.Context) error {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
