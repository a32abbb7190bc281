// Package service provides business logic layer for the directory module.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	appConfig "github.com/aidnetlk/aidnet/internal/config"
	"github.com/aidnetlk/aidnet/internal/directory/cache"
	directoryModel "github.com/aidnetlk/aidnet/internal/directory/model"
	"github.com/aidnetlk/aidnet/internal/directory/repository"
	organizationModel "github.com/aidnetlk/aidnet/internal/organization/model"
)

// Service defines the interface for directory business logic operations.
type Service interface {
	// List returns the public directory, optionally filtered by query.
	List(ctx context.Context, query string) (*directoryModel.DirectoryResponse, error)
}

type service struct {
	repo   repository.Repository
	cache  *cache.Cache
	cfg    appConfig.DirectoryConfig
	logger *zap.SugaredLogger
}

// New creates a new directory service instance.
func New(repo repository.Repository, c *cache.Cache, cfg appConfig.DirectoryConfig, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		cache:  c,
		cfg:    cfg,
		logger: logger,
	}
}

// List returns the public directory, optionally filtered by query. The
// full approved listing is cached; filtering happens per request.
func (s *service) List(ctx context.Context, query string) (*directoryModel.DirectoryResponse, error) {
	organizations := s.cache.Get()
	if organizations == nil {
		loaded, err := s.repo.ListApproved(ctx)
		if err != nil {
			return nil, err
		}
		s.cache.Set(loaded)
		organizations = loaded
	}

	if query != "" {
		organizations = filterByQuery(organizations, query)
	}

	public := make([]organizationModel.PublicOrganization, 0, len(organizations))
	markers := make([]directoryModel.Marker, 0, len(organizations))
	for i := range organizations {
		org := &organizations[i]
		public = append(public, *org.Public())

		for _, loc := range org.Locations {
			if !s.cfg.Contains(loc.Lat, loc.Lon) {
				continue
			}
			markers = append(markers, directoryModel.Marker{
				Lat:              loc.Lat,
				Lon:              loc.Lon,
				OrganizationID:   org.ID,
				OrganizationName: org.Name,
				PlaceID:          loc.PlaceID,
			})
		}
	}

	return &directoryModel.DirectoryResponse{
		Organizations: public,
		Markers:       markers,
		BoundingBox: directoryModel.BoundingBox{
			MinLat: s.cfg.MinLat,
			MinLon: s.cfg.MinLon,
			MaxLat: s.cfg.MaxLat,
			MaxLon: s.cfg.MaxLon,
		},
	}, nil
}

// filterByQuery keeps organizations whose name or summary contains the
// query, case-insensitively.
func filterByQuery(organizations []organizationModel.Organization, query string) []organizationModel.Organization {
	needle := strings.ToLower(query)

	matched := make([]organizationModel.Organization, 0, len(organizations))
	for _, org := range organizations {
		if strings.Contains(strings.ToLower(org.Name), needle) ||
			strings.Contains(strings.ToLower(org.Summary), needle) {
			matched = append(matched, org)
		}
	}
	return matched
}
