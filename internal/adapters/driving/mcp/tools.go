package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/veridian-labs/dirsearch/internal/core/domain"
)

// SearchInput is the input schema for the search_directory tool.
type SearchInput struct {
	Collections []string          `json:"collections" jsonschema:"collection names to search within"`
	Query       string            `json:"query,omitempty" jsonschema:"free-text query against entry names"`
	Tags        []string          `json:"tags,omitempty" jsonschema:"match entries carrying any of these tags"`
	Filters     map[string]string `json:"filters,omitempty" jsonschema:"structured field filters, e.g. specialty=Cardiology"`
	Mode        string            `json:"mode,omitempty" jsonschema:"search mode: exact, substring (default) or fulltext"`
	Limit       int               `json:"limit,omitempty" jsonschema:"maximum number of results (default 20)"`
}

// SearchOutput is the output schema for the search_directory tool.
type SearchOutput struct {
	Status  string        `json:"status"`
	Message string        `json:"message,omitempty"`
	Count   int           `json:"count"`
	Entries []EntryOutput `json:"entries"`
}

// EntryOutput represents a single directory entry in tool output.
type EntryOutput struct {
	Name        string            `json:"name"`
	Tags        []string          `json:"tags,omitempty"`
	ContactInfo map[string]string `json:"contact_info,omitempty"`
	EntryData   map[string]any    `json:"entry_data,omitempty"`
	Score       float64           `json:"score,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "search_directory",
		Description: "Search the organization's directory collections. " +
			"Inaccessible collections are reported with the available alternatives.",
	}, s.handleSearch)
}

// handleSearch handles the search_directory tool invocation. Outcomes
// the assistant should react to (inaccessible collections, no matches)
// come back as statuses, not errors.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	resp, err := s.ports.Search.Query(ctx, s.ports.TenantID, domain.QueryRequest{
		Collections: input.Collections,
		NameQuery:   input.Query,
		Tags:        input.Tags,
		Filters:     input.Filters,
		Mode:        domain.ParseSearchMode(input.Mode),
		Limit:       input.Limit,
	})
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Status:  string(resp.Status),
		Message: resp.Message,
		Count:   len(resp.Results),
		Entries: make([]EntryOutput, len(resp.Results)),
	}

	for i := range resp.Results {
		entry := resp.Results[i].Entry
		output.Entries[i] = EntryOutput{
			Name:        entry.Name,
			Tags:        entry.Tags,
			ContactInfo: entry.ContactInfo,
			EntryData:   entry.EntryData,
			Score:       resp.Results[i].Score,
		}
	}

	return nil, output, nil
}
