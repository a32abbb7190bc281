// Package middleware provides HTTP middleware functions.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aidnetlk/aidnet/internal/auth"
)

// ContextKeyAccountID is the gin context key holding the authenticated
// account id.
const ContextKeyAccountID = "account_id"

// RequireAuth verifies the bearer token and stores the account id in the
// request context. Requests without a valid token are rejected with 401.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(c, tokens)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "a valid bearer token is required",
				},
			})
			return
		}

		c.Set(ContextKeyAccountID, claims.AccountID)
		c.Next()
	}
}

// OptionalAuth resolves the account id when a valid bearer token is
// present and passes the request through either way.
func OptionalAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := bearerClaims(c, tokens); ok {
			c.Set(ContextKeyAccountID, claims.AccountID)
		}
		c.Next()
	}
}

func bearerClaims(c *gin.Context, tokens *auth.TokenManager) (*auth.Claims, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, false
	}

	claims, err := tokens.Verify(parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}

// AccountID retrieves the authenticated account id from the context.
func AccountID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ContextKeyAccountID)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}
