package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/veridian-labs/dirsearch/internal/core/domain"
	"github.com/veridian-labs/dirsearch/internal/core/ports/driven"
	"github.com/veridian-labs/dirsearch/internal/core/ports/driving"
	"github.com/veridian-labs/dirsearch/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService resolves tenant access and executes directory searches.
// Access resolution happens here and nowhere else: the entry store only
// ever sees collection IDs that already passed the tenant check.
type SearchService struct {
	collectionStore driven.CollectionStore
	entryStore      driven.EntryStore
}

// NewSearchService creates a new search service.
func NewSearchService(
	collectionStore driven.CollectionStore,
	entryStore driven.EntryStore,
) *SearchService {
	return &SearchService{
		collectionStore: collectionStore,
		entryStore:      entryStore,
	}
}

// Search resolves the requested collection names for the tenant and
// runs the query within the accessible subset.
func (s *SearchService) Search(
	ctx context.Context, tenantID string, req domain.QueryRequest,
) ([]domain.ScoredEntry, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenant ID is required", domain.ErrInvalidInput)
	}

	accessible, err := s.collectionStore.ResolveAccessible(ctx, tenantID, req.Collections)
	if err != nil {
		return nil, fmt.Errorf("resolving collections: %w", err)
	}
	if len(accessible) == 0 {
		return []domain.ScoredEntry{}, nil
	}

	ids := make([]string, 0, len(accessible))
	for _, c := range accessible {
		ids = append(ids, c.ID)
	}

	logger.Debug("Searching %d collections for tenant %s (mode=%s)",
		len(ids), tenantID, req.Mode)

	results, err := s.entryStore.Search(ctx, domain.SearchQuery{
		CollectionIDs: ids,
		NameQuery:     req.NameQuery,
		Tags:          req.Tags,
		Filters:       req.Filters,
		Mode:          req.Mode,
		Limit:         req.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("searching entries: %w", err)
	}

	return results, nil
}

// Query is the tool-facing variant. Outcomes a tool consumer must
// distinguish are reported as explicit status sentinels, never as
// errors: an LLM caller retries on "not accessible" with different
// collection names, but gives up on a hard failure.
func (s *SearchService) Query(
	ctx context.Context, tenantID string, req domain.QueryRequest,
) (*domain.QueryResponse, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenant ID is required", domain.ErrInvalidInput)
	}

	accessible, err := s.collectionStore.ResolveAccessible(ctx, tenantID, req.Collections)
	if err != nil {
		return nil, fmt.Errorf("resolving collections: %w", err)
	}

	if len(accessible) == 0 {
		available, err := s.collectionStore.ListByTenant(ctx, tenantID)
		if err != nil {
			return nil, fmt.Errorf("listing collections: %w", err)
		}
		names := make([]string, 0, len(available))
		for _, c := range available {
			names = append(names, c.Name)
		}
		return &domain.QueryResponse{
			Status: domain.QueryStatusNotAccessible,
			Message: fmt.Sprintf("requested collections are not accessible; available: [%s]",
				strings.Join(names, ", ")),
		}, nil
	}

	ids := make([]string, 0, len(accessible))
	for _, c := range accessible {
		ids = append(ids, c.ID)
	}

	results, err := s.entryStore.Search(ctx, domain.SearchQuery{
		CollectionIDs: ids,
		NameQuery:     req.NameQuery,
		Tags:          req.Tags,
		Filters:       req.Filters,
		Mode:          req.Mode,
		Limit:         req.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("searching entries: %w", err)
	}

	if len(results) == 0 {
		return &domain.QueryResponse{
			Status:  domain.QueryStatusNoEntries,
			Message: "no entries found matching the query",
		}, nil
	}

	return &domain.QueryResponse{
		Status:  domain.QueryStatusOK,
		Message: fmt.Sprintf("%d entries found", len(results)),
		Results: results,
	}, nil
}
