package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsUsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics)
	r.Post("/charge", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodPost, "/charge", "400"))

	req := httptest.NewRequest(http.MethodPost, "/charge", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodPost, "/charge", "400")))
}

func TestRecorderCounters(t *testing.T) {
	var rec Recorder

	sent := testutil.ToFloat64(notificationsSent.WithLabelValues("sent"))
	failed := testutil.ToFloat64(notificationsSent.WithLabelValues("failed"))
	epayco := testutil.ToFloat64(integrationErrors.WithLabelValues("epayco"))

	rec.RecordNotification(true)
	rec.RecordNotification(false)
	rec.RecordNotification(false)
	rec.RecordIntegrationError("epayco")

	assert.Equal(t, sent+1, testutil.ToFloat64(notificationsSent.WithLabelValues("sent")))
	assert.Equal(t, failed+2, testutil.ToFloat64(notificationsSent.WithLabelValues("failed")))
	assert.Equal(t, epayco+1, testutil.ToFloat64(integrationErrors.WithLabelValues("epayco")))
}
