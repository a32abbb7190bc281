package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/", Locale(), func(c *gin.Context) {
		c.String(http.StatusOK, Language(c))
	})

	t.Run("defaults to English", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, "en", w.Body.String())
	})

	t.Run("cookie wins", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: "lang", Value: "si"})
		req.Header.Set("Accept-Language", "ta")
		router.ServeHTTP(w, req)

		assert.Equal(t, "si", w.Body.String())
	})

	t.Run("accept-language fallback", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/", nil)
		req.Header.Set("Accept-Language", "ta-LK,ta;q=0.9,en;q=0.8")
		router.ServeHTTP(w, req)

		assert.Equal(t, "ta", w.Body.String())
	})

	t.Run("unsupported language normalized to English", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: "lang", Value: "de"})
		router.ServeHTTP(w, req)

		assert.Equal(t, "en", w.Body.String())
	})
}
