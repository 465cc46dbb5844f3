package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Exposition(t *testing.T) {
	t.Parallel()

	c := NewCollector()
	c.RecordRequest(http.MethodGet, "/api/products", http.StatusOK)
	c.RecordRequest(http.MethodGet, "/api/products", http.StatusOK)
	c.RecordRequest(http.MethodPut, "/api/orders/:id", http.StatusNotFound)
	c.RecordLatency(42 * time.Millisecond)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	c.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "storefront_http_requests_total")
	assert.Contains(t, body, `route="/api/products"`)
	assert.Contains(t, body, `status_code="404"`)
	assert.Contains(t, body, "storefront_http_request_duration_seconds")
}
