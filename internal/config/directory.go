package config

import (
	"fmt"
	"time"
)

// DirectoryConfig holds public directory configuration.
// The bounding box defaults to Sri Lanka; markers outside it are dropped.
type DirectoryConfig struct {
	// MinLat, MinLon, MaxLat, MaxLon define the map bounding box.
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
	// CacheTTL caps how long a cached listing may be served even
	// without an invalidation event.
	CacheTTL time.Duration
}

// LoadDirectoryConfigFromEnv loads directory configuration from environment variables.
func LoadDirectoryConfigFromEnv() DirectoryConfig {
	return DirectoryConfig{
		MinLat:   GetEnvFloat("DIRECTORY_MIN_LAT", 5.7),
		MinLon:   GetEnvFloat("DIRECTORY_MIN_LON", 79.4),
		MaxLat:   GetEnvFloat("DIRECTORY_MAX_LAT", 10.1),
		MaxLon:   GetEnvFloat("DIRECTORY_MAX_LON", 82.1),
		CacheTTL: GetEnvDuration("DIRECTORY_CACHE_TTL", 5*time.Minute),
	}
}

// Validate validates directory configuration.
func (c DirectoryConfig) Validate() error {
	if c.MinLat >= c.MaxLat {
		return fmt.Errorf("MinLat (%v) must be less than MaxLat (%v)", c.MinLat, c.MaxLat)
	}
	if c.MinLon >= c.MaxLon {
		return fmt.Errorf("MinLon (%v) must be less than MaxLon (%v)", c.MinLon, c.MaxLon)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("CacheTTL must be greater than 0")
	}
	return nil
}

// Contains reports whether a coordinate falls inside the bounding box.
func (c DirectoryConfig) Contains(lat, lon float64) bool {
	return lat >= c.MinLat && lat <= c.MaxLat && lon >= c.MinLon && lon <= c.MaxLon
}
