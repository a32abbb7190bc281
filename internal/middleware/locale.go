package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aidnetlk/aidnet/internal/localize"
)

// ContextKeyLanguage is the gin context key holding the request language.
const ContextKeyLanguage = "language"

// langCookie is the cookie carrying the selected UI language.
const langCookie = "lang"

// Locale resolves the request language from the lang cookie, falling
// back to the Accept-Language header, then English.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := ""
		if cookie, err := c.Cookie(langCookie); err == nil {
			lang = cookie
		}
		if lang == "" {
			lang = firstAcceptLanguage(c.GetHeader("Accept-Language"))
		}

		c.Set(ContextKeyLanguage, localize.Normalize(lang))
		c.Next()
	}
}

// firstAcceptLanguage extracts the first tag of an Accept-Language header.
func firstAcceptLanguage(header string) string {
	if header == "" {
		return ""
	}
	first := strings.Split(header, ",")[0]
	return strings.TrimSpace(strings.Split(first, ";")[0])
}

// Language retrieves the resolved request language from the context.
func Language(c *gin.Context) string {
	if value, exists := c.Get(ContextKeyLanguage); exists {
		if lang, ok := value.(string); ok {
			return lang
		}
	}
	return localize.DefaultLanguage
}
