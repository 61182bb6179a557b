package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/veridian-labs/dirsearch/internal/core/domain"
	"github.com/veridian-labs/dirsearch/internal/core/ports/driven"
	"github.com/veridian-labs/dirsearch/internal/logger"
)

// collectionStore implements driven.CollectionStore.
type collectionStore struct {
	store *Store
}

var _ driven.CollectionStore = (*collectionStore)(nil)

// Save stores or updates a collection.
func (s *collectionStore) Save(ctx context.Context, collection domain.Collection) error {
	if collection.ID == "" || collection.TenantID == "" || collection.Name == "" {
		return domain.ErrInvalidInput
	}

	now := time.Now().UTC()
	if collection.CreatedAt.IsZero() {
		collection.CreatedAt = now
	}
	collection.UpdatedAt = now

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO collections (id, tenant_id, name, description, entry_type, schema_file, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			entry_type = excluded.entry_type,
			schema_file = excluded.schema_file,
			updated_at = excluded.updated_at
	`, collection.ID, collection.TenantID, collection.Name, collection.Description,
		collection.EntryType, collection.SchemaFile, collection.CreatedAt, collection.UpdatedAt)

	if err != nil {
		return fmt.Errorf("saving collection: %w", err)
	}
	return nil
}

// Get retrieves a collection by ID.
func (s *collectionStore) Get(ctx context.Context, id string) (*domain.Collection, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, tenant_id, name, description, entry_type, schema_file, created_at, updated_at
		FROM collections WHERE id = ?
	`, id)

	return scanCollection(row)
}

// GetByName retrieves a tenant's collection by name.
func (s *collectionStore) GetByName(ctx context.Context, tenantID, name string) (*domain.Collection, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, tenant_id, name, description, entry_type, schema_file, created_at, updated_at
		FROM collections WHERE tenant_id = ? AND name = ?
	`, tenantID, name)

	return scanCollection(row)
}

// ResolveAccessible returns the subset of the requested names that
// belong to the tenant. A single query enforces tenant isolation;
// unresolved names are logged and dropped, never erred.
func (s *collectionStore) ResolveAccessible(
	ctx context.Context, tenantID string, names []string,
) ([]domain.Collection, error) {
	if len(names) == 0 {
		return []domain.Collection{}, nil
	}

	args := make([]any, 0, len(names)+1)
	args = append(args, tenantID)
	for _, name := range names {
		args = append(args, name)
	}

	query := fmt.Sprintf(`
		SELECT id, tenant_id, name, description, entry_type, schema_file, created_at, updated_at
		FROM collections WHERE tenant_id = ? AND name IN (%s)
	`, placeholders(len(names)))

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("resolving accessible collections: %w", err)
	}
	defer rows.Close()

	collections, err := scanCollections(rows)
	if err != nil {
		return nil, err
	}

	if len(collections) < len(names) {
		resolved := make(map[string]bool, len(collections))
		for _, c := range collections {
			resolved[c.Name] = true
		}
		var dropped []string
		for _, name := range names {
			if !resolved[name] {
				dropped = append(dropped, name)
			}
		}
		logger.Info("Dropped inaccessible collections for tenant %s: %s",
			tenantID, strings.Join(dropped, ", "))
	}

	return collections, nil
}

// ListByTenant returns all collections owned by the tenant.
func (s *collectionStore) ListByTenant(ctx context.Context, tenantID string) ([]domain.Collection, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, tenant_id, name, description, entry_type, schema_file, created_at, updated_at
		FROM collections WHERE tenant_id = ?
		ORDER BY name
	`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("querying collections: %w", err)
	}
	defer rows.Close()

	return scanCollections(rows)
}

// Delete removes a collection; entries cascade via foreign key.
func (s *collectionStore) Delete(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM collections WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting collection: %w", err)
	}
	return nil
}

// scanCollection scans a single collection row.
func scanCollection(row *sql.Row) (*domain.Collection, error) {
	var c domain.Collection
	var createdAt, updatedAt sql.NullTime
	if err := row.Scan(&c.ID, &c.TenantID, &c.Name, &c.Description,
		&c.EntryType, &c.SchemaFile, &createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning collection: %w", err)
	}

	if createdAt.Valid {
		c.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		c.UpdatedAt = updatedAt.Time
	}

	return &c, nil
}

// scanCollections scans multiple collection rows.
func scanCollections(rows *sql.Rows) ([]domain.Collection, error) {
	var collections []domain.Collection //nolint:prealloc // size unknown from query
	for rows.Next() {
		var c domain.Collection
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&c.ID, &c.TenantID, &c.Name, &c.Description,
			&c.EntryType, &c.SchemaFile, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning collection: %w", err)
		}

		if createdAt.Valid {
			c.CreatedAt = createdAt.Time
		}
		if updatedAt.Valid {
			c.UpdatedAt = updatedAt.Time
		}
		collections = append(collections, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating collections: %w", err)
	}

	return collections, nil
}
