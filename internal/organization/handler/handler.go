// Package handler provides HTTP handlers for organization endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aidnetlk/aidnet/internal/middleware"
	organizationModel "github.com/aidnetlk/aidnet/internal/organization/model"
	"github.com/aidnetlk/aidnet/internal/organization/service"
	"github.com/aidnetlk/aidnet/internal/validate"
)

// Handler handles HTTP requests for organization endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new organization handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetMine handles GET /organizations/me.
func (h *Handler) GetMine(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "a valid bearer token is required", http.StatusUnauthorized)
		return
	}

	org, err := h.service.GetMine(c.Request.Context(), accountID)
	if err != nil {
		h.writeError(c, err, "organization lookup failed")
		return
	}
	c.JSON(http.StatusOK, org)
}

// GetPublic handles GET /organizations/:id.
func (h *Handler) GetPublic(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid organization id", http.StatusBadRequest)
		return
	}

	org, err := h.service.GetPublic(c.Request.Context(), uint(id))
	if err != nil {
		h.writeError(c, err, "public organization lookup failed")
		return
	}
	c.JSON(http.StatusOK, org)
}

// UpdateDetails handles PUT /organizations/me/details.
func (h *Handler) UpdateDetails(c *gin.Context) {
	var req organizationModel.DetailsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}
	h.update(c, func(accountID uint) (*organizationModel.Organization, error) {
		return h.service.UpdateDetails(c.Request.Context(), accountID, &req)
	})
}

// UpdateContact handles PUT /organizations/me/contact.
func (h *Handler) UpdateContact(c *gin.Context) {
	var req organizationModel.ContactUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}
	h.update(c, func(accountID uint) (*organizationModel.Organization, error) {
		return h.service.UpdateContact(c.Request.Context(), accountID, &req)
	})
}

// UpdateBank handles PUT /organizations/me/bank.
func (h *Handler) UpdateBank(c *gin.Context) {
	var req organizationModel.BankUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}
	h.update(c, func(accountID uint) (*organizationModel.Organization, error) {
		return h.service.UpdateBank(c.Request.Context(), accountID, &req)
	})
}

// UpdateLocations handles PUT /organizations/me/locations.
func (h *Handler) UpdateLocations(c *gin.Context) {
	var req organizationModel.LocationsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}
	h.update(c, func(accountID uint) (*organizationModel.Organization, error) {
		return h.service.UpdateLocations(c.Request.Context(), accountID, &req)
	})
}

func (h *Handler) update(c *gin.Context, run func(accountID uint) (*organizationModel.Organization, error)) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "a valid bearer token is required", http.StatusUnauthorized)
		return
	}

	org, err := run(accountID)
	if err != nil {
		h.writeError(c, err, "organization update failed")
		return
	}
	c.JSON(http.StatusOK, org)
}

func (h *Handler) writeError(c *gin.Context, err error, logMessage string) {
	var verr *validate.Error
	if errors.As(err, &verr) {
		validationResponse(c, verr)
		return
	}
	if errors.Is(err, organizationModel.ErrOrganizationNotFound) {
		notFoundResponse(c, "organization not found")
		return
	}
	h.logger.Errorw(logMessage, "error", err)
	errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
}
