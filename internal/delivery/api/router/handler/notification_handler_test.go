package handler

import (
	"net/http"
	"testing"

	"agrox/internal/domain/entity"
	domainerrors "agrox/internal/domain/errors"
	mockUsecase "agrox/internal/mocks/usecase"
	"agrox/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newNotificationHandler(t *testing.T) (*NotificationHandler, *mockUsecase.MockNotificationUsecase) {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)

	return NewNotificationHandler(NotificationHandlerParams{NotificationUC: notificationUC, Logger: newDiscardLogger()}), notificationUC
}

func TestNotificationHandler_List(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantLimit int
	}{
		{name: "default limit", target: "/api/v1/notifications", wantLimit: 0},
		{name: "explicit limit", target: "/api/v1/notifications?limit=3", wantLimit: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, notificationUC := newNotificationHandler(t)
			e := newTestEcho()
			sess := newTestSession("bea@buyer.test", entity.RoleBuyer)

			notificationUC.EXPECT().
				List(mock.Anything, sess, tt.wantLimit).
				Return([]*entity.Notification{{ID: "1", Type: "request_approved"}}, nil).
				Once()

			c, rec := newContext(e, http.MethodGet, tt.target, "", sess)

			require.NoError(t, h.List(c))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, string(decodeEnvelope(t, rec).Data), `"type":"request_approved"`)
		})
	}
}

func TestNotificationHandler_ListRejectsNegativeLimit(t *testing.T) {
	h, _ := newNotificationHandler(t)
	e := newTestEcho()
	sess := newTestSession("bea@buyer.test", entity.RoleBuyer)

	c, rec := newContext(e, http.MethodGet, "/api/v1/notifications?limit=-1", "", sess)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, []string{"limit gte=0"}, env.Error.Details)
}

func TestNotificationHandler_Badge(t *testing.T) {
	h, notificationUC := newNotificationHandler(t)
	e := newTestEcho()
	sess := newTestSession("bea@buyer.test", entity.RoleBuyer)

	notificationUC.EXPECT().
		Badge(mock.Anything, sess).
		Return(&usecase.NotificationBadge{Unread: 120, Label: "99+"}, nil).
		Once()

	c, rec := newContext(e, http.MethodGet, "/api/v1/notifications/badge", "", sess)

	require.NoError(t, h.Badge(c))
	assert.JSONEq(t, `{"unread":120,"label":"99+"}`, string(decodeEnvelope(t, rec).Data))
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	h, notificationUC := newNotificationHandler(t)
	e := newTestEcho()
	sess := newTestSession("bea@buyer.test", entity.RoleBuyer)

	notificationUC.EXPECT().MarkRead(mock.Anything, sess, "1").Return(nil).Once()
	notificationUC.EXPECT().MarkRead(mock.Anything, sess, "2").Return(domainerrors.ErrNotificationNotFound).Once()

	c, rec := newContext(e, http.MethodPost, "/api/v1/notifications/1/read", "", sess)
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.MarkRead(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	c, rec = newContext(e, http.MethodPost, "/api/v1/notifications/2/read", "", sess)
	c.SetParamNames("id")
	c.SetParamValues("2")
	require.NoError(t, h.MarkRead(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNotificationHandler_MarkAllRead(t *testing.T) {
	h, notificationUC := newNotificationHandler(t)
	e := newTestEcho()
	sess := newTestSession("bea@buyer.test", entity.RoleBuyer)

	notificationUC.EXPECT().MarkAllRead(mock.Anything, sess).Return(4, nil).Once()

	c, rec := newContext(e, http.MethodPost, "/api/v1/notifications/read-all", "", sess)

	require.NoError(t, h.MarkAllRead(c))
	assert.JSONEq(t, `{"updated":4}`, string(decodeEnvelope(t, rec).Data))
}
