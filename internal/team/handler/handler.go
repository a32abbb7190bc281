// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aidnetlk/aidnet/internal/middleware"
	organizationModel "github.com/aidnetlk/aidnet/internal/organization/model"
	teamModel "github.com/aidnetlk/aidnet/internal/team/model"
	"github.com/aidnetlk/aidnet/internal/team/service"
	"github.com/aidnetlk/aidnet/internal/validate"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new team handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// GetTeam handles GET /team.
func (h *Handler) GetTeam(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "a valid bearer token is required", http.StatusUnauthorized)
		return
	}

	team, err := h.service.GetTeam(c.Request.Context(), accountID)
	if err != nil {
		h.writeError(c, err, "team listing failed")
		return
	}
	c.JSON(http.StatusOK, team)
}

// Invite handles POST /team/invitations.
func (h *Handler) Invite(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "a valid bearer token is required", http.StatusUnauthorized)
		return
	}

	var req teamModel.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	invitation, err := h.service.Invite(c.Request.Context(), accountID, &req)
	if err != nil {
		if errors.Is(err, teamModel.ErrInviteExists) {
			errorResponse(c, "INVITE_EXISTS", "a pending invitation already exists for this email", http.StatusConflict)
			return
		}
		h.writeError(c, err, "invitation creation failed")
		return
	}
	c.JSON(http.StatusCreated, invitation)
}

// Resend handles POST /team/invitations/:id/resend.
func (h *Handler) Resend(c *gin.Context) {
	accountID, id, ok := h.authedID(c)
	if !ok {
		return
	}

	if err := h.service.Resend(c.Request.Context(), accountID, id); err != nil {
		if errors.Is(err, teamModel.ErrInvitationUsed) {
			errorResponse(c, "INVITATION_USED", "invitation has already been accepted", http.StatusConflict)
			return
		}
		h.writeError(c, err, "invitation resend failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteInvite handles DELETE /team/invitations/:id.
func (h *Handler) DeleteInvite(c *gin.Context) {
	accountID, id, ok := h.authedID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteInvite(c.Request.Context(), accountID, id); err != nil {
		h.writeError(c, err, "invitation deletion failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// Accept handles POST /team/invitations/accept.
func (h *Handler) Accept(c *gin.Context) {
	var req teamModel.AcceptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Accept(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, teamModel.ErrInvitationUsed) {
			errorResponse(c, "INVITATION_USED", "invitation has already been accepted", http.StatusConflict)
			return
		}
		h.writeError(c, err, "invitation acceptance failed")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) authedID(c *gin.Context) (accountID, id uint, ok bool) {
	accountID, authed := middleware.AccountID(c)
	if !authed {
		errorResponse(c, "UNAUTHORIZED", "a valid bearer token is required", http.StatusUnauthorized)
		return 0, 0, false
	}

	parsed, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid invitation id", http.StatusBadRequest)
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
	if errors.Is(err, teamModel.ErrInvitationNotFound) {
		notFoundResponse(c, "invitation not found")
		return
	}
	if errors.Is(err, organizationModel.ErrOrganizationNotFound) {
		notFoundResponse(c, "organization not found")
		return
	}
	h.logger.Errorw(logMessage, "error", err)
	errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
}
