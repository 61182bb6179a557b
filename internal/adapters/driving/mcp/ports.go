package mcp

import (
	"github.com/veridian-labs/dirsearch/internal/core/ports/driven"
	"github.com/veridian-labs/dirsearch/internal/core/ports/driving"
)

// Ports aggregates all port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides tenant-scoped directory search. Required.
	Search driving.SearchService

	// Collections backs the collection listing resource. Optional.
	Collections driven.CollectionStore

	// Schemas backs the per-collection guidance resource. Optional.
	Schemas driven.SchemaRegistry

	// TenantID scopes every tool call and resource read. Required.
	TenantID string
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.TenantID == "" {
		return ErrMissingTenant
	}
	// Collections and Schemas only enrich resources
	return nil
}
