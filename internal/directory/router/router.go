// Package router provides directory module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appConfig "github.com/aidnetlk/aidnet/internal/config"
	"github.com/aidnetlk/aidnet/internal/directory/cache"
	"github.com/aidnetlk/aidnet/internal/directory/handler"
	"github.com/aidnetlk/aidnet/internal/directory/repository"
	"github.com/aidnetlk/aidnet/internal/directory/service"
	"github.com/aidnetlk/aidnet/internal/events"
)

// RegisterRoutes registers directory module routes.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, bus *events.Bus, cfg appConfig.DirectoryConfig, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	c := cache.New(cfg.CacheTTL, bus)
	svc := service.New(repo, c, cfg, logger)
	h := handler.New(svc, logger)

	r.GET("/directory", h.List)
}
