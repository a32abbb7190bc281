// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aidnetlk/aidnet/internal/auth"
	appConfig "github.com/aidnetlk/aidnet/internal/config"
	"github.com/aidnetlk/aidnet/internal/mail"
	"github.com/aidnetlk/aidnet/internal/middleware"
	organizationRepository "github.com/aidnetlk/aidnet/internal/organization/repository"
	"github.com/aidnetlk/aidnet/internal/team/handler"
	"github.com/aidnetlk/aidnet/internal/team/repository"
	"github.com/aidnetlk/aidnet/internal/team/service"
)

// RegisterRoutes registers team module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, tokens *auth.TokenManager, mailer mail.Mailer, cfg appConfig.AuthConfig, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	orgRepo := organizationRepository.New(db)
	svc := service.New(repo, orgRepo, db, tokens, mailer, cfg, logger)
	h := handler.New(svc, logger)

	r.POST("/team/invitations/accept", h.Accept)

	authed := r.Group("", middleware.RequireAuth(tokens))
	authed.GET("/team", h.GetTeam)
	authed.POST("/team/invitations", h.Invite)
	authed.POST("/team/invitations/:id/resend", h.Resend)
	authed.DELETE("/team/invitations/:id", h.DeleteInvite)
}
