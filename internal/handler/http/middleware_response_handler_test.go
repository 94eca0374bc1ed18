package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter(t *testing.T) {
	t.Run("first status wins", func(t *testing.T) {
		rr := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rr}

		w.WriteHeader(http.StatusForbidden)
		w.WriteHeader(http.StatusOK)

		assert.Equal(t, http.StatusForbidden, w.status)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("write implies 200 and counts bytes", func(t *testing.T) {
		rr := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rr}

		n, err := w.Write([]byte("abc"))
		assert.NoError(t, err)
		assert.Equal(t, 3, n)
		_, _ = w.Write([]byte("de"))

		assert.Equal(t, http.StatusOK, w.status)
		assert.Equal(t, 5, w.size)
		assert.Equal(t, "abcde", rr.Body.String())
	})

	t.Run("unwrap", func(t *testing.T) {
		rr := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rr}

		assert.Same(t, rr, w.Unwrap())
		assert.NoError(t, http.NewResponseController(w).Flush())
		assert.True(t, rr.Flushed)
	})
}
