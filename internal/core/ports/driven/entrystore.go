package driven

import (
	"context"

	"github.com/veridian-labs/dirsearch/internal/core/domain"
)

// EntryStore persists entries and executes search queries against the
// store's native full-text and JSON operators.
type EntryStore interface {
	// ReplaceEntries atomically replaces all entries of a collection
	// with the given batch in a single transaction. Used by the import
	// path so partial imports are either fully visible or fully absent.
	ReplaceEntries(ctx context.Context, collectionID string, entries []domain.Entry) error

	// Search executes one query within the tenant-filtered candidate
	// collections. An empty candidate set short-circuits to an empty
	// result without querying. Full-text mode orders by descending
	// relevance; exact and substring modes return store-native order.
	Search(ctx context.Context, query domain.SearchQuery) ([]domain.ScoredEntry, error)

	// CountByCollection returns the number of entries in a collection.
	CountByCollection(ctx context.Context, collectionID string) (int, error)
}
