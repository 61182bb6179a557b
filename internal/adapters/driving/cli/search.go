package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veridian-labs/dirsearch/internal/core/domain"
)

var (
	searchCollections []string
	searchTags        []string
	searchFilters     []string
	searchMode        string
	searchLimit       int
	searchJSON        bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search directory collections",
	Long: `Searches the tenant's collections for matching entries.

Modes:
  substring  case-insensitive substring match on names (default)
  exact      exact name match
  fulltext   ranked full-text search over names, tags and fields

Structured filters match field values at word boundaries, so
--filter specialty=Urology matches "Urologic Surgery" but not
"Neurology".`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringSliceVarP(&searchCollections, "collections", "c", nil, "collection names to search (required)")
	searchCmd.Flags().StringSliceVarP(&searchTags, "tag", "t", nil, "match entries carrying any of these tags")
	searchCmd.Flags().StringSliceVarP(&searchFilters, "filter", "f", nil, "structured filters as field=value")
	searchCmd.Flags().StringVarP(&searchMode, "mode", "m", "substring", "search mode: exact, substring or fulltext")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (default 20)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	tenant := currentTenant()
	if tenant == "" {
		return errors.New("tenant ID required: pass --tenant or set tenant.id in config")
	}
	if len(searchCollections) == 0 {
		return errors.New("at least one --collections name is required")
	}

	var query string
	if len(args) > 0 {
		query = args[0]
	}

	filters, err := parseFilters(searchFilters)
	if err != nil {
		return err
	}

	resp, err := searchService.Query(cmd.Context(), tenant, domain.QueryRequest{
		Collections: searchCollections,
		NameQuery:   query,
		Tags:        searchTags,
		Filters:     filters,
		Mode:        domain.ParseSearchMode(searchMode),
		Limit:       searchLimit,
	})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, resp)
	}
	return outputSearchTable(cmd, resp)
}

// parseFilters converts field=value pairs into a filter map.
func parseFilters(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	filters := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		field, value, ok := strings.Cut(pair, "=")
		if !ok || field == "" {
			return nil, fmt.Errorf("invalid filter %q: expected field=value", pair)
		}
		filters[field] = value
	}
	return filters, nil
}

func outputSearchJSON(cmd *cobra.Command, resp *domain.QueryResponse) error {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, resp *domain.QueryResponse) error {
	if resp.Status != domain.QueryStatusOK {
		cmd.Println(resp.Message)
		return nil
	}

	cmd.Printf("%s:\n\n", resp.Message)
	for i := range resp.Results {
		entry := resp.Results[i].Entry
		cmd.Printf("[%d] %s", i+1, entry.Name)
		if resp.Results[i].Score != 0 {
			cmd.Printf(" (%.2f)", resp.Results[i].Score)
		}
		cmd.Println()
		if len(entry.Tags) > 0 {
			cmd.Printf("    tags: %s\n", strings.Join(entry.Tags, ", "))
		}
		for key, value := range entry.ContactInfo {
			cmd.Printf("    %s: %s\n", key, value)
		}
	}
	return nil
}
