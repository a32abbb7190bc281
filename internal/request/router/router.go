// Package router provides request module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aidnetlk/aidnet/internal/auth"
	"github.com/aidnetlk/aidnet/internal/events"
	"github.com/aidnetlk/aidnet/internal/middleware"
	organizationRepository "github.com/aidnetlk/aidnet/internal/organization/repository"
	"github.com/aidnetlk/aidnet/internal/request/handler"
	"github.com/aidnetlk/aidnet/internal/request/repository"
	"github.com/aidnetlk/aidnet/internal/request/service"
)

// RegisterRoutes registers request module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, tokens *auth.TokenManager, bus *events.Bus, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	orgRepo := organizationRepository.New(db)
	svc := service.New(repo, orgRepo, db, bus, logger)
	h := handler.New(svc, logger)

	r.GET("/organizations/:id/requests", h.ListPublic)

	authed := r.Group("", middleware.RequireAuth(tokens))
	authed.GET("/requests", h.ListMine)
	authed.POST("/requests", h.Create)
	authed.PUT("/requests/:id", h.Update)
	authed.POST("/requests/:id/fulfill", h.Fulfill)
	authed.DELETE("/requests/:id", h.Delete)
}
