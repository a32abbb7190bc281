// Package router provides account module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aidnetlk/aidnet/internal/account/handler"
	"github.com/aidnetlk/aidnet/internal/account/repository"
	"github.com/aidnetlk/aidnet/internal/account/service"
	"github.com/aidnetlk/aidnet/internal/auth"
	appConfig "github.com/aidnetlk/aidnet/internal/config"
	"github.com/aidnetlk/aidnet/internal/mail"
	"github.com/aidnetlk/aidnet/internal/middleware"
)

// RegisterRoutes registers auth and account routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, tokens *auth.TokenManager, mailer mail.Mailer, cfg appConfig.AuthConfig, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, db, tokens, mailer, cfg, logger)
	h := handler.New(svc, logger)

	r.POST("/auth/signup", h.SignUp)
	r.POST("/auth/signin", h.SignIn)
	r.POST("/auth/forgot-password", h.ForgotPassword)
	r.POST("/auth/reset-password", h.ResetPassword)
	r.POST("/auth/signout", h.SignOut)

	r.GET("/me", middleware.RequireAuth(tokens), h.Me)
}
