// Package router provides organization module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aidnetlk/aidnet/internal/auth"
	"github.com/aidnetlk/aidnet/internal/events"
	"github.com/aidnetlk/aidnet/internal/middleware"
	"github.com/aidnetlk/aidnet/internal/organization/handler"
	"github.com/aidnetlk/aidnet/internal/organization/repository"
	"github.com/aidnetlk/aidnet/internal/organization/service"
)

// RegisterRoutes registers organization module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, tokens *auth.TokenManager, bus *events.Bus, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, db, bus, logger)
	h := handler.New(svc, logger)

	r.GET("/organizations/:id", h.GetPublic)

	authed := r.Group("", middleware.RequireAuth(tokens))
	authed.GET("/organizations/me", h.GetMine)
	authed.PUT("/organizations/me/details", h.UpdateDetails)
	authed.PUT("/organizations/me/contact", h.UpdateContact)
	authed.PUT("/organizations/me/bank", h.UpdateBank)
	authed.PUT("/organizations/me/locations", h.UpdateLocations)
}
