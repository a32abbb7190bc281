// Package handler provides HTTP handlers for auth and account endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	accountModel "github.com/aidnetlk/aidnet/internal/account/model"
	"github.com/aidnetlk/aidnet/internal/account/service"
	"github.com/aidnetlk/aidnet/internal/middleware"
	"github.com/aidnetlk/aidnet/internal/validate"
)

// Handler handles HTTP requests for auth and account endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new account handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// SignUp handles POST /auth/signup.
func (h *Handler) SignUp(c *gin.Context) {
	var req accountModel.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.SignUp(c.Request.Context(), &req)
	if err != nil {
		var verr *validate.Error
		if errors.As(err, &verr) {
			validationResponse(c, verr)
			return
		}
		if errors.Is(err, accountModel.ErrEmailTaken) {
			errorResponse(c, "EMAIL_TAKEN", "an account with this email already exists", http.StatusConflict)
			return
		}
		h.logger.Errorw("sign up failed", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// SignIn handles POST /auth/signin.
func (h *Handler) SignIn(c *gin.Context) {
	var req accountModel.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.SignIn(c.Request.Context(), &req)
	if err != nil {
		var verr *validate.Error
		if errors.As(err, &verr) {
			validationResponse(c, verr)
			return
		}
		if errors.Is(err, accountModel.ErrInvalidCredentials) {
			errorResponse(c, "INVALID_CREDENTIALS", "email or password is incorrect", http.StatusUnauthorized)
			return
		}
		if errors.Is(err, accountModel.ErrAccountInactive) {
			errorResponse(c, "ACCOUNT_INACTIVE", "this account has been deactivated", http.StatusForbidden)
			return
		}
		h.logger.Errorw("sign in failed", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ForgotPassword handles POST /auth/forgot-password.
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req accountModel.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.ForgotPassword(c.Request.Context(), &req); err != nil {
		var verr *validate.Error
		if errors.As(err, &verr) {
			validationResponse(c, verr)
			return
		}
		h.logger.Errorw("forgot password failed", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, accountModel.SuccessResponse{Success: true})
}

// ResetPassword handles POST /auth/reset-password.
func (h *Handler) ResetPassword(c *gin.Context) {
	var req accountModel.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.ResetPassword(c.Request.Context(), &req); err != nil {
		var verr *validate.Error
		if errors.As(err, &verr) {
			validationResponse(c, verr)
			return
		}
		if errors.Is(err, accountModel.ErrResetTokenInvalid) {
			errorResponse(c, "RESET_TOKEN_INVALID", "the reset link is invalid or has expired", http.StatusBadRequest)
			return
		}
		h.logger.Errorw("reset password failed", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, accountModel.SuccessResponse{Success: true})
}

// SignOut handles POST /auth/signout. Tokens are stateless, so this
// only acknowledges; clients drop the token.
func (h *Handler) SignOut(c *gin.Context) {
	c.JSON(http.StatusOK, accountModel.SuccessResponse{Success: true})
}

// Me handles GET /me.
func (h *Handler) Me(c *gin.Context) {
	accountID, ok := middleware.AccountID(c)
	if !ok {
		errorResponse(c, "UNAUTHORIZED", "a valid bearer token is required", http.StatusUnauthorized)
		return
	}

	resp, err := h.service.Me(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, accountModel.ErrAccountNotFound) {
			errorResponse(c, "NOT_FOUND", "account not found", http.StatusNotFound)
			return
		}
		h.logger.Errorw("me lookup failed", "account_id", accountID, "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, resp)
}
