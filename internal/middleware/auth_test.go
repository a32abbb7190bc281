package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidnetlk/aidnet/internal/auth"
	appConfig "github.com/aidnetlk/aidnet/internal/config"
)

func testTokens() *auth.TokenManager {
	return auth.NewTokenManager(appConfig.AuthConfig{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := testTokens()

	newRouter := func() *gin.Engine {
		router := gin.New()
		router.GET("/me", RequireAuth(tokens), func(c *gin.Context) {
			id, ok := AccountID(c)
			require.True(t, ok)
			c.JSON(http.StatusOK, gin.H{"account_id": id})
		})
		return router
	}

	t.Run("valid token passes", func(t *testing.T) {
		token, err := tokens.Issue(9, "a@b.co")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"account_id":9`)
	})

	t.Run("missing header rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/me", nil)
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
	})

	t.Run("malformed header rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Token abcdef")
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOptionalAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := testTokens()

	router := gin.New()
	router.GET("/public", OptionalAuth(tokens), func(c *gin.Context) {
		if id, ok := AccountID(c); ok {
			c.JSON(http.StatusOK, gin.H{"account_id": id})
			return
		}
		c.JSON(http.StatusOK, gin.H{"anonymous": true})
	})

	t.Run("anonymous passes through", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/public", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "anonymous")
	})

	t.Run("valid token resolved", func(t *testing.T) {
		token, err := tokens.Issue(4, "a@b.co")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/public", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"account_id":4`)
	})
}
