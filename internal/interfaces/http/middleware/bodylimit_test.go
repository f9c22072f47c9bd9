package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestBodyLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(limit int64) *gin.Engine {
		router := gin.New()
		router.Use(BodyLimit(limit))
		router.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })
		return router
	}

	t.Run("allows bodies within limit", func(t *testing.T) {
		router := newRouter(100)

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("small body"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects oversized bodies", func(t *testing.T) {
		router := newRouter(4)

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("this body is too large"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_PAYLOAD_TOO_LARGE")
	})
}
