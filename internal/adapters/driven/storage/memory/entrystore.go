package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/veridian-labs/dirsearch/internal/core/domain"
	"github.com/veridian-labs/dirsearch/internal/core/ports/driven"
)

// Ensure EntryStore implements the interface.
var _ driven.EntryStore = (*EntryStore)(nil)

// EntryStore is an in-memory implementation of driven.EntryStore. It
// mirrors the SQLite store's search semantics closely enough for
// service-level tests: same modes, same tag overlap, same filter
// behaviour, same limit handling.
type EntryStore struct {
	mu      sync.RWMutex
	entries map[string][]domain.Entry // keyed by collection ID
}

// NewEntryStore creates a new in-memory entry store.
func NewEntryStore() *EntryStore {
	return &EntryStore{
		entries: make(map[string][]domain.Entry),
	}
}

// ReplaceEntries atomically replaces all entries of a collection.
func (s *EntryStore) ReplaceEntries(_ context.Context, collectionID string, entries []domain.Entry) error {
	if collectionID == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[collectionID] = append([]domain.Entry(nil), entries...)
	return nil
}

// CountByCollection returns the number of entries in a collection.
func (s *EntryStore) CountByCollection(_ context.Context, collectionID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries[collectionID]), nil
}

// Search executes one query within the tenant-filtered candidate set.
func (s *EntryStore) Search(_ context.Context, q domain.SearchQuery) ([]domain.ScoredEntry, error) {
	if len(q.CollectionIDs) == 0 {
		return []domain.ScoredEntry{}, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	candidates := make([]domain.Entry, 0)
	for _, id := range q.CollectionIDs {
		candidates = append(candidates, s.entries[id]...)
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Name < candidates[j].Name })

	if q.Mode == domain.SearchModeFullText {
		return fullTextResults(candidates, q), nil
	}

	results := make([]domain.ScoredEntry, 0)
	limit := q.EffectiveLimit()
	for _, entry := range candidates {
		if !matchesName(entry.Name, q.NameQuery, q.Mode) {
			continue
		}
		if !entry.HasAnyTag(q.Tags) {
			continue
		}
		if !entry.MatchesFilters(q.Filters) {
			continue
		}
		results = append(results, domain.ScoredEntry{Entry: entry})
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}

func matchesName(name, query string, mode domain.SearchMode) bool {
	if query == "" {
		return true
	}
	if mode == domain.SearchModeExact {
		return name == query
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(query))
}

// fullTextResults ranks entries by how often the combined query and
// filter terms occur in the entry's search text. Every term must occur
// at least once.
func fullTextResults(candidates []domain.Entry, q domain.SearchQuery) []domain.ScoredEntry {
	terms := strings.Fields(strings.ToLower(q.NameQuery))
	for _, value := range q.Filters {
		terms = append(terms, strings.Fields(strings.ToLower(value))...)
	}

	results := make([]domain.ScoredEntry, 0)
	for _, entry := range candidates {
		if !entry.HasAnyTag(q.Tags) {
			continue
		}
		text := strings.ToLower(entry.SearchText())
		score := 0.0
		matched := true
		for _, term := range terms {
			n := strings.Count(text, term)
			if n == 0 {
				matched = false
				break
			}
			score += float64(n)
		}
		if !matched {
			continue
		}
		results = append(results, domain.ScoredEntry{Entry: entry, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if limit := q.EffectiveLimit(); len(results) > limit {
		results = results[:limit]
	}
	return results
}
