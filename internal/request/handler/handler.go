// Package handler provides HTTP handlers for request endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aidnetlk/aidnet/internal/middleware"
	organizationModel "github.com/aidnetlk/aidnet/internal/organization/model"
	requestModel "github.com/aidnetlk/aidnet/internal/request/model"
	"github.com/aidnetlk/aidnet/internal/request/service"
	"github.com/aidnetlk/aidnet/internal/validate"
)

// Handler handles HTTP requests for request endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new request handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// filterFromQuery builds a listing filter from query parameters.
func filterFromQuery(c *gin.Context) requestModel.Filter {
	return requestModel.Filter{
		RequestType:      c.Query("requestType"),
		IncludeCompleted: c.Query("includeCompleted") == "true",
		PlaceID:          c.Query("placeId"),
		Query:            c.Query("q"),
	}
}

// ListMine handles GET /requests.
func (h *Handler) ListMine(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "a valid bearer token is required", http.StatusUnauthorized)
		return
	}

	requests, err := h.service.ListMine(c.Request.Context(), accountID, filterFromQuery(c))
	if err != nil {
		h.writeError(c, err, "request listing failed")
		return
	}
	c.JSON(http.StatusOK, requestModel.ListResponse{Requests: requests})
}

// ListPublic handles GET /organizations/:id/requests.
func (h *Handler) ListPublic(c *gin.Context) {
	organizationID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid organization id", http.StatusBadRequest)
		return
	}

	requests, svcErr := h.service.ListPublic(c.Request.Context(), uint(organizationID), filterFromQuery(c))
	if svcErr != nil {
		h.writeError(c, svcErr, "public request listing failed")
		return
	}
	c.JSON(http.StatusOK, requestModel.ListResponse{Requests: requests})
}

// Create handles POST /requests.
func (h *Handler) Create(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "a valid bearer token is required", http.StatusUnauthorized)
		return
	}

	var req requestModel.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(c.Request.Context(), accountID, &req)
	if err != nil {
		h.writeError(c, err, "request creation failed")
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update handles PUT /requests/:id.
func (h *Handler) Update(c *gin.Context) {
	accountID, id, ok := h.authedID(c)
	if !ok {
		return
	}

	var req requestModel.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), accountID, id, &req)
	if err != nil {
		h.writeError(c, err, "request update failed")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Fulfill handles POST /requests/:id/fulfill.
func (h *Handler) Fulfill(c *gin.Context) {
	accountID, id, ok := h.authedID(c)
	if !ok {
		return
	}

	fulfilled, err := h.service.Fulfill(c.Request.Context(), accountID, id)
	if err != nil {
		if errors.Is(err, requestModel.ErrAlreadyCompleted) {
			errorResponse(c, "ALREADY_COMPLETED", "request is already completed", http.StatusConflict)
			return
		}
		h.writeError(c, err, "request fulfill failed")
		return
	}
	c.JSON(http.StatusOK, fulfilled)
}

// Delete handles DELETE /requests/:id.
func (h *Handler) Delete(c *gin.Context) {
	accountID, id, ok := h.authedID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), accountID, id); err != nil {
		h.writeError(c, err, "request deletion failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) authedID(c *gin.Context) (accountID, id uint, ok bool) {
	accountID, authed := middleware.AccountID(c)
	if !authed {
		errorResponse(c, "UNAUTHORIZED", "a valid bearer token is required", http.StatusUnauthorized)
		return 0, 0, false
	}

	parsed, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request id", http.StatusBadRequest)
		return 0, 0, false
	}
	return accountID, uint(parsed), true
}

func (h *Handler) writeError(c *gin.Context, err error, logMessage string) {
	var verr *validate.Error
	if errors.As(err, &verr) {
		validationResponse(c, verr)
		return
	}
	if errors.Is(err, requestModel.ErrRequestNotFound) {
		notFoundResponse(c, "request not found")
		return
	}
	if errors.Is(err, organizationModel.ErrOrganizationNotFound) {
		notFoundResponse(c, "organization not found")
		return
	}
	h.logger.Errorw(logMessage, "error", err)
	errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
}
