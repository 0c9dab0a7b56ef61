package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoint(t *testing.T) {
	deps := newTestDeps()
	deps.Config.Server.Version = "3.1.0"
	deps.Config.RateLimit.Requests = 1
	router := New(deps)

	t.Run("returns correct JSON structure", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, HealthPath, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)

		assert.Equal(t, "healthy", response["status"])
		assert.Equal(t, "3.1.0", response["version"])
	})

	t.Run("returns valid RFC3339 timestamp", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, HealthPath, nil)
		w := httptest.NewRecorder()

		beforeRequest := time.Now().UTC()
		router.ServeHTTP(w, req)
		afterRequest := time.Now().UTC()

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)

		timestampStr, ok := response["timestamp"].(string)
		require.True(t, ok, "timestamp should be a string")

		timestamp, err := time.Parse(time.RFC3339, timestampStr)
		require.NoError(t, err, "timestamp should be valid RFC3339 format")

		assert.True(t, timestamp.After(beforeRequest.Add(-time.Second)), "timestamp should be after request start")
		assert.True(t, timestamp.Before(afterRequest.Add(time.Second)), "timestamp should be before request end")
	})

	t.Run("includes request ID in response headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, HealthPath, nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), "should include X-Request-ID header")
	})

	t.Run("accepts custom request ID", func(t *testing.T) {
		customID := "test-request-id-123"
		req := httptest.NewRequest(http.MethodGet, HealthPath, nil)
		req.Header.Set("X-Request-ID", customID)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, customID, w.Header().Get("X-Request-ID"), "should preserve custom request ID")
	})

	t.Run("is not rate limited", func(t *testing.T) {
		const numRequests = 10
		results := make(chan int, numRequests)

		for i := 0; i < numRequests; i++ {
			go func() {
				req := httptest.NewRequest(http.MethodGet, HealthPath, nil)
				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)
				results <- w.Code
			}()
		}

		for i := 0; i < numRequests; i++ {
			assert.Equal(t, http.StatusOK, <-results)
		}
	})

	t.Run("does not accept other methods", func(t *testing.T) {
		for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
			req := httptest.NewRequest(method, HealthPath, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusNotFound, w.Code, method)
		}
	})
}

func TestRequestIDOnGreetingRoutes(t *testing.T) {
	router := New(newTestDeps())

	req := httptest.NewRequest(http.MethodDelete, "/goodbye", nil)
	req.Header.Set("X-Request-ID", "goodbye-1")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "goodbye-1", w.Header().Get("X-Request-ID"))
}
