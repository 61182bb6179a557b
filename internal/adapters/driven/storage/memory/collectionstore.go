package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/veridian-labs/dirsearch/internal/core/domain"
	"github.com/veridian-labs/dirsearch/internal/core/ports/driven"
)

// Ensure CollectionStore implements the interface.
var _ driven.CollectionStore = (*CollectionStore)(nil)

// CollectionStore is an in-memory implementation of driven.CollectionStore.
type CollectionStore struct {
	mu          sync.RWMutex
	collections map[string]domain.Collection
}

// NewCollectionStore creates a new in-memory collection store.
func NewCollectionStore() *CollectionStore {
	return &CollectionStore{
		collections: make(map[string]domain.Collection),
	}
}

// Save stores or updates a collection.
func (s *CollectionStore) Save(_ context.Context, collection domain.Collection) error {
	if collection.ID == "" || collection.TenantID == "" || collection.Name == "" {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection.ID] = collection
	return nil
}

// Get retrieves a collection by ID.
func (s *CollectionStore) Get(_ context.Context, id string) (*domain.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	collection, ok := s.collections[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &collection, nil
}

// GetByName retrieves a tenant's collection by name.
func (s *CollectionStore) GetByName(_ context.Context, tenantID, name string) (*domain.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, collection := range s.collections {
		if collection.TenantID == tenantID && collection.Name == name {
			return &collection, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ResolveAccessible returns the subset of the requested names owned by
// the tenant. Unresolved names are dropped, never erred.
func (s *CollectionStore) ResolveAccessible(
	_ context.Context, tenantID string, names []string,
) ([]domain.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byName := make(map[string]domain.Collection)
	for _, collection := range s.collections {
		if collection.TenantID == tenantID {
			byName[collection.Name] = collection
		}
	}

	resolved := make([]domain.Collection, 0, len(names))
	for _, name := range names {
		if collection, ok := byName[name]; ok {
			resolved = append(resolved, collection)
		}
	}
	return resolved, nil
}

// ListByTenant returns all collections owned by the tenant, ordered by name.
func (s *CollectionStore) ListByTenant(_ context.Context, tenantID string) ([]domain.Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Collection, 0)
	for _, collection := range s.collections {
		if collection.TenantID == tenantID {
			result = append(result, collection)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

// Delete removes a collection.
func (s *CollectionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.collections, id)
	return nil
}
