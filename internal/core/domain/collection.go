package domain

import "time"

// Collection is a named, tenant-owned grouping of directory entries.
// Every collection holds entries of exactly one entry type (e.g. a
// "doctors" collection of type "medical_professional") and references
// the schema file that governs its entries.
type Collection struct {
	// ID is the unique identifier for the collection.
	ID string

	// TenantID identifies the owning tenant account. A collection
	// belongs to exactly one tenant for its lifetime.
	TenantID string

	// Name is the human-readable name callers use to address the
	// collection (e.g. "doctors"). Unique per tenant, not globally.
	Name string

	// Description is an optional free-text description.
	Description string

	// EntryType is the schema identity of the collection
	// (e.g. "medical_professional", "pharmaceutical").
	EntryType string

	// SchemaFile is the filename of the YAML schema definition that
	// validates entries imported into this collection.
	SchemaFile string

	// CreatedAt is when the collection was first imported.
	CreatedAt time.Time

	// UpdatedAt is when the collection was last re-imported.
	UpdatedAt time.Time
}
