package domain

// ImportStats counts the outcome of one CSV import run. Malformed rows
// are skipped, never fatal: Parsed + Skipped always equals Total.
type ImportStats struct {
	// Parsed is the number of rows that mapped and validated cleanly.
	Parsed int

	// Skipped is the number of rows dropped by mapper or validation
	// failures.
	Skipped int

	// Total is the number of data rows processed (header excluded).
	Total int
}

// ImportRequest describes one administrative CSV import run.
type ImportRequest struct {
	// Path is the CSV file to ingest. A missing or unreadable file is
	// the only fatal condition.
	Path string

	// TenantID identifies the tenant the collection belongs to.
	TenantID string

	// CollectionName is the tenant-visible collection name.
	CollectionName string

	// Description is an optional collection description.
	Description string

	// EntryType selects the field mapper and governs the schema.
	EntryType string

	// SchemaFile optionally names the YAML schema to validate against.
	// Empty skips schema validation.
	SchemaFile string
}

// ImportResult is the outcome of one import run.
type ImportResult struct {
	Collection Collection
	Stats      ImportStats
}
