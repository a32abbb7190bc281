package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aidnetlk/aidnet/internal/middleware"
	"github.com/aidnetlk/aidnet/internal/validate"
)

// ErrorResponse represents the error response body.
type ErrorResponse struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields,omitempty"`
	} `json:"error"`
}

// errorResponse writes an error response body.
func errorResponse(c *gin.Context, code string, message string, statusCode int) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	c.JSON(statusCode, resp)
}

// notFoundResponse writes a 404 error response.
func notFoundResponse(c *gin.Context, message string) {
	errorResponse(c, "NOT_FOUND", message, http.StatusNotFound)
}

// validationResponse writes a 400 with per-field messages localized for
// the request's language.
func validationResponse(c *gin.Context, verr *validate.Error) {
	lang := middleware.Language(c)

	resp := ErrorResponse{}
	resp.Error.Code = "VALIDATION"
	resp.Error.Message = "validation failed"
	resp.Error.Fields = verr.Fields.Localize(lang)
	c.JSON(http.StatusBadRequest, resp)
}
