package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct{ closed bool }

func (c fakeConn) IsClosed() bool { return c.closed }

func TestHealthHandler(t *testing.T) {
	services := map[string]string{
		"epayco":        "https://api.secure.payco.co",
		"ms-negocio":    "http://negocio:8081",
		"notifications": "",
	}

	t.Run("Healthy", func(t *testing.T) {
		handler := NewHealthHandler(fakeConn{}, services)
		w := httptest.NewRecorder()
		handler.Handle(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var resp HealthResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "healthy", resp.Dependencies["rabbitmq"])
		assert.Equal(t, "configured", resp.Dependencies["ms-negocio"])
		assert.Equal(t, "not configured", resp.Dependencies["notifications"])
	})

	t.Run("RabbitMQ Closed", func(t *testing.T) {
		handler := NewHealthHandler(fakeConn{closed: true}, services)
		w := httptest.NewRecorder()
		handler.Handle(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("Without RabbitMQ", func(t *testing.T) {
		handler := NewHealthHandler(nil, nil)
		w := httptest.NewRecorder()
		handler.Handle(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		var resp HealthResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "not configured", resp.Dependencies["rabbitmq"])
	})
}
