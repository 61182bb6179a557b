// Package mcp provides an MCP (Model Context Protocol) server adapter
// for the directory search engine. It lets AI assistants query tenant
// collections through a single search tool.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrMissingTenant is returned when no tenant ID is configured.
// The tenant is fixed at server startup; it is never taken from tool
// input, so a misbehaving client cannot reach another tenant's data.
var ErrMissingTenant = errors.New("mcp: tenant ID is required")
