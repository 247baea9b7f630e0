package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyLabel(t *testing.T) {
	assert.Equal(t, "listings", KeyLabel("listings"))
	assert.Equal(t, "notifications_*", KeyLabel("notifications_ann@farm.test"))
	assert.Equal(t, "bookmarks_*", KeyLabel("bookmarks_bob@shop.test"))
}

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.StoreMalformed("listings")
	m.StoreMalformed("notifications_a@b.c")
	m.StoreMalformed("notifications_x@y.z")
	m.NotificationDelivered("request_approved")
	m.StorageError("set")

	assert.InDelta(t, 1, testutil.ToFloat64(m.storeMalformed.WithLabelValues("listings")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.storeMalformed.WithLabelValues("notifications_*")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.notifications.WithLabelValues("request_approved")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.storageErrors.WithLabelValues("set")), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.NotificationDelivered("new_request")

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `agrox_notifications_total{type="new_request"} 1`)
}
