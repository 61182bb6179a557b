package domain

import (
	"fmt"
	"strings"
	"time"
)

// Entry is one record within a collection. Entries are created in bulk
// by the importer and never mutated by search.
type Entry struct {
	// ID is the unique identifier for the entry.
	ID string

	// CollectionID links to the owning Collection. The reference is
	// non-owning: deletion cascades from the collection, never from here.
	CollectionID string

	// Name is the display name. Always required.
	Name string

	// Tags is an unordered set of free-form tags. Deduplication is
	// not enforced.
	Tags []string

	// ContactInfo holds phone/email/location-style key-value pairs.
	ContactInfo map[string]string

	// EntryData is the open structured-data bag whose keys are defined
	// by the collection's schema (e.g. "specialty", "drug_class").
	EntryData map[string]any

	// CreatedAt is when the entry was imported.
	CreatedAt time.Time

	// UpdatedAt is when the entry was last re-imported.
	UpdatedAt time.Time
}

// DataString returns the entry_data value for field rendered as text.
// Array values are joined with ", "; missing fields yield "".
func (e *Entry) DataString(field string) string {
	val, ok := e.EntryData[field]
	if !ok || val == nil {
		return ""
	}
	switch v := val.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprintf("%v", item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}

// HasAnyTag reports whether the entry's tag set intersects the requested
// tags (set-overlap semantics, case-insensitive).
func (e *Entry) HasAnyTag(tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, want := range tags {
		for _, have := range e.Tags {
			if strings.EqualFold(have, want) {
				return true
			}
		}
	}
	return false
}

// SearchText returns the concatenated text the full-text index covers:
// name, tags and all entry_data values.
func (e *Entry) SearchText() string {
	var b strings.Builder
	b.WriteString(e.Name)
	for _, tag := range e.Tags {
		b.WriteByte(' ')
		b.WriteString(tag)
	}
	for field := range e.EntryData {
		if text := e.DataString(field); text != "" {
			b.WriteByte(' ')
			b.WriteString(text)
		}
	}
	return b.String()
}
