package localize

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the localization routes.
func RegisterRoutes(r *gin.Engine) {
	r.GET("/localization/:lang", getTable)
}

// getTable handles GET /localization/:lang request.
// Returns the merged string table so clients need not embed it.
func getTable(c *gin.Context) {
	lang := c.Param("lang")

	c.JSON(http.StatusOK, gin.H{
		"language": Normalize(lang),
		"strings":  Table(lang),
	})
}
