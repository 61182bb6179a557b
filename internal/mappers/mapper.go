// Package mappers converts raw CSV rows into directory entry fields.
// One mapper is registered per entry type; each is a pure function from
// a header-keyed row to the entry's name, tags, contact info and
// structured data bag.
package mappers

// MappedEntry is the mapper output for one CSV row, before schema
// validation and entry construction.
type MappedEntry struct {
	// Name is the entry display name. Always required downstream.
	Name string

	// Tags is the free-form tag list.
	Tags []string

	// ContactInfo holds phone/email/location-style pairs.
	ContactInfo map[string]string

	// EntryData is the schema-governed structured data bag.
	EntryData map[string]any
}

// FieldMapper maps one CSV row to entry fields for a given entry type.
type FieldMapper interface {
	// EntryType returns the entry type this mapper handles
	// (e.g. "medical_professional").
	EntryType() string

	// Map converts a header-keyed row. Implementations return an error
	// for rows they cannot interpret; callers skip such rows without
	// aborting the batch.
	Map(row map[string]string) (*MappedEntry, error)
}
