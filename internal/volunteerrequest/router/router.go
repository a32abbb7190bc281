// Package router provides volunteerrequest module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aidnetlk/aidnet/internal/auth"
	"github.com/aidnetlk/aidnet/internal/events"
	"github.com/aidnetlk/aidnet/internal/middleware"
	organizationRepository "github.com/aidnetlk/aidnet/internal/organization/repository"
	"github.com/aidnetlk/aidnet/internal/volunteerrequest/handler"
	"github.com/aidnetlk/aidnet/internal/volunteerrequest/repository"
	"github.com/aidnetlk/aidnet/internal/volunteerrequest/service"
)

// RegisterRoutes registers volunteerrequest module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, tokens *auth.TokenManager, bus *events.Bus, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	orgRepo := organizationRepository.New(db)
	svc := service.New(repo, orgRepo, db, bus, logger)
	h := handler.New(svc, logger)

	r.GET("/organizations/:id/volunteer-requests", h.ListPublic)

	authed := r.Group("", middleware.RequireAuth(tokens))
	authed.GET("/volunteer-requests", h.ListMine)
	authed.POST("/volunteer-requests", h.Create)
	authed.PUT("/volunteer-requests/:id", h.Update)
	authed.POST("/volunteer-requests/:id/fulfill", h.Fulfill)
	authed.DELETE("/volunteer-requests/:id", h.Delete)
}
