package driven

import (
	"context"

	"github.com/veridian-labs/dirsearch/internal/core/domain"
)

// CollectionStore persists collections.
// Backed by SQLite.
type CollectionStore interface {
	// Save stores or updates a collection.
	Save(ctx context.Context, collection domain.Collection) error

	// Get retrieves a collection by ID.
	Get(ctx context.Context, id string) (*domain.Collection, error)

	// GetByName retrieves a tenant's collection by name.
	GetByName(ctx context.Context, tenantID, name string) (*domain.Collection, error)

	// ResolveAccessible returns the subset of the requested collection
	// names that belong to the tenant. This is the only tenant-isolation
	// enforcement point: every search must take its candidate set from
	// this result. Names that do not resolve are silently dropped.
	ResolveAccessible(ctx context.Context, tenantID string, names []string) ([]domain.Collection, error)

	// ListByTenant returns all collections owned by the tenant.
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Collection, error)

	// Delete removes a collection and, by cascade, its entries.
	Delete(ctx context.Context, id string) error
}
