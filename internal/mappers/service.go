package mappers

import (
	"github.com/veridian-labs/dirsearch/internal/core/domain"
)

var _ FieldMapper = (*ServiceMapper)(nil)

// ServiceMapper maps offered-service rows.
// Expected columns: name, category, description, price (numeric with
// string fallback), duration_minutes (numeric), phone, tags
// (comma-separated).
type ServiceMapper struct{}

// EntryType returns the entry type this mapper handles.
func (m *ServiceMapper) EntryType() string {
	return EntryTypeService
}

// Map converts one service row.
func (m *ServiceMapper) Map(row map[string]string) (*MappedEntry, error) {
	if row == nil {
		return nil, domain.ErrInvalidInput
	}

	data := make(map[string]any)
	setString(data, "category", row["category"])
	setString(data, "description", row["description"])
	setNumber(data, "price", row["price"])
	setNumber(data, "duration_minutes", row["duration_minutes"])

	return &MappedEntry{
		Name:        row["name"],
		Tags:        splitTags(row["tags"]),
		ContactInfo: contactInfo(row, "phone"),
		EntryData:   data,
	}, nil
}
