package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping() error { return s.err }

func TestSystemHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("health always reports ok", func(t *testing.T) {
		engine := gin.New()
		NewSystemHandler(&stubPinger{err: errors.New("down")}, "1.2.3").RegisterRoutes(engine)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "1.2.3")
	})

	t.Run("ready reports ok when database reachable", func(t *testing.T) {
		engine := gin.New()
		NewSystemHandler(&stubPinger{}, "dev").RegisterRoutes(engine)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ready degrades when database down", func(t *testing.T) {
		engine := gin.New()
		NewSystemHandler(&stubPinger{err: errors.New("down")}, "dev").RegisterRoutes(engine)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("ready without database", func(t *testing.T) {
		engine := gin.New()
		NewSystemHandler(nil, "dev").RegisterRoutes(engine)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
