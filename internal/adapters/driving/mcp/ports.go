package mcp

import (
	"github.com/custodia-labs/evsearch/internal/core/domain"
	"github.com/custodia-labs/evsearch/internal/core/ports/driven"
	"github.com/custodia-labs/evsearch/internal/core/ports/driving"
	"github.com/custodia-labs/evsearch/internal/logger"
)

// Ports aggregates the ports required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides search and directory listing.
	Search driving.SearchService

	// Settings supplies per-search defaults and the settings resource.
	// Nil uses the built-in defaults.
	Settings driving.SettingsService

	// Inspector reports SDK details.
	Inspector driven.ServiceInspector
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	// Settings and Inspector are optional
	return nil
}

// settings returns the current settings, or the defaults.
func (p *Ports) settings() domain.AppSettings {
	if p.Settings == nil {
		return domain.DefaultAppSettings()
	}
	s, err := p.Settings.Get()
	if err != nil {
		logger.Warn("mcp: reading settings: %v", err)
		return domain.DefaultAppSettings()
	}
	return *s
}

// queryOptions returns the configured options for mode, or for the
// configured mode when mode is empty.
func (p *Ports) queryOptions(mode domain.TransportMode) domain.QueryOptions {
	s := p.settings()
	if mode != "" {
		s.Search.Mode = mode
	}
	return s.QueryOptions()
}
