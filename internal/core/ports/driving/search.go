package driving

import (
	"context"

	"github.com/veridian-labs/dirsearch/internal/core/domain"
)

// SearchService resolves tenant access and executes directory searches.
type SearchService interface {
	// Search resolves the requested collection names for the tenant and
	// runs the query within the accessible subset. Unresolvable names
	// are dropped, not erred; an empty accessible set yields an empty
	// result.
	Search(ctx context.Context, tenantID string, req domain.QueryRequest) ([]domain.ScoredEntry, error)

	// Query is the tool-facing variant: it returns a formatted response
	// with explicit "not accessible" / "no entries found" sentinels and
	// never surfaces access failures as errors.
	Query(ctx context.Context, tenantID string, req domain.QueryRequest) (*domain.QueryResponse, error)
}
