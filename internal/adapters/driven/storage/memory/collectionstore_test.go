package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridian-labs/dirsearch/internal/core/domain"
)

func TestCollectionStore_SaveAndGet(t *testing.T) {
	store := NewCollectionStore()
	ctx := context.Background()

	col := domain.Collection{ID: "c1", TenantID: "tenant-a", Name: "providers"}
	require.NoError(t, store.Save(ctx, col))

	got, err := store.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "providers", got.Name)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCollectionStore_SaveValidation(t *testing.T) {
	store := NewCollectionStore()

	err := store.Save(context.Background(), domain.Collection{ID: "c1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCollectionStore_GetByName(t *testing.T) {
	store := NewCollectionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Collection{ID: "c1", TenantID: "tenant-a", Name: "providers"}))
	require.NoError(t, store.Save(ctx, domain.Collection{ID: "c2", TenantID: "tenant-b", Name: "providers"}))

	got, err := store.GetByName(ctx, "tenant-b", "providers")
	require.NoError(t, err)
	assert.Equal(t, "c2", got.ID)

	_, err = store.GetByName(ctx, "tenant-c", "providers")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCollectionStore_ResolveAccessible(t *testing.T) {
	store := NewCollectionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Collection{ID: "c1", TenantID: "tenant-a", Name: "providers"}))
	require.NoError(t, store.Save(ctx, domain.Collection{ID: "c2", TenantID: "tenant-b", Name: "pharmacy"}))

	resolved, err := store.ResolveAccessible(ctx, "tenant-a", []string{"providers", "pharmacy", "nope"})
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, "c1", resolved[0].ID)
}

func TestCollectionStore_ListByTenantOrdered(t *testing.T) {
	store := NewCollectionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Collection{ID: "c1", TenantID: "tenant-a", Name: "providers"}))
	require.NoError(t, store.Save(ctx, domain.Collection{ID: "c2", TenantID: "tenant-a", Name: "departments"}))

	list, err := store.ListByTenant(ctx, "tenant-a")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "departments", list[0].Name)
	assert.Equal(t, "providers", list[1].Name)
}

func TestCollectionStore_Delete(t *testing.T) {
	store := NewCollectionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.Collection{ID: "c1", TenantID: "tenant-a", Name: "providers"}))
	require.NoError(t, store.Delete(ctx, "c1"))

	_, err := store.Get(ctx, "c1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
