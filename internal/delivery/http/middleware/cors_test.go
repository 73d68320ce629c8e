package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS([]string{" https://rsvp.example.com/ ", ""}, next)

	t.Run("preflight from allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/rsvp", nil)
		req.Header.Set("Origin", "https://rsvp.example.com")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusNoContent, rr.Code)
		assert.Equal(t, "https://rsvp.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, corsAllowMethods, rr.Header().Get("Access-Control-Allow-Methods"))
		assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), "Authorization")
		assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("preflight from unknown origin gets no headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/rsvp", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("allowed origin on a real request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/rsvp", nil)
		req.Header.Set("Origin", "https://rsvp.example.com")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "https://rsvp.example.com", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin passes through without headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/rsvp", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})
}
