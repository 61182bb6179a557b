package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/veridian-labs/dirsearch/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for directory resources.
	uriScheme = "dirsearch://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing the tenant's collections.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "collections",
		Name:        "collections",
		Description: "List of directory collections accessible to this tenant",
		MIMEType:    "application/json",
	}, s.handleCollectionsResource)

	// Template for per-collection search guidance.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "collections/{name}/guidance",
		Name:        "collection-guidance",
		Description: "Search guidance and filterable fields for a collection",
		MIMEType:    "text/plain",
	}, s.handleGuidanceResource)
}

// handleCollectionsResource returns the tenant's collection list.
func (s *Server) handleCollectionsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Collections == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	collections, err := s.ports.Collections.ListByTenant(ctx, s.ports.TenantID)
	if err != nil {
		return nil, fmt.Errorf("listing collections: %w", err)
	}

	type collectionInfo struct {
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
		EntryType   string `json:"entry_type"`
	}

	infos := make([]collectionInfo, len(collections))
	for i, c := range collections {
		infos[i] = collectionInfo{
			Name:        c.Name,
			Description: c.Description,
			EntryType:   c.EntryType,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling collections: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleGuidanceResource renders a collection's schema guidance text.
func (s *Server) handleGuidanceResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := collectionNameFromURI(req.Params.URI)
	if name == "" {
		return nil, fmt.Errorf("invalid resource URI: %s", req.Params.URI)
	}

	if s.ports.Collections == nil || s.ports.Schemas == nil {
		return nil, domain.ErrSchemaNotFound
	}

	collection, err := s.ports.Collections.GetByName(ctx, s.ports.TenantID, name)
	if err != nil {
		return nil, fmt.Errorf("looking up collection %s: %w", name, err)
	}
	if collection.SchemaFile == "" {
		return nil, domain.ErrSchemaNotFound
	}

	schema, err := s.ports.Schemas.LoadSchema(collection.SchemaFile)
	if err != nil {
		return nil, fmt.Errorf("loading schema for %s: %w", name, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     schema.ToolGuidance(),
		}},
	}, nil
}

// collectionNameFromURI extracts the collection name from
// dirsearch://collections/{name}/guidance.
func collectionNameFromURI(uri string) string {
	rest, ok := strings.CutPrefix(uri, uriScheme+"collections/")
	if !ok {
		return ""
	}
	name, ok := strings.CutSuffix(rest, "/guidance")
	if !ok {
		return ""
	}
	return name
}
