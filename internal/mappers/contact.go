package mappers

import (
	"github.com/veridian-labs/dirsearch/internal/core/domain"
)

var _ FieldMapper = (*ContactMapper)(nil)

// ContactMapper maps staff contact rows.
// Expected columns: name, role, department, office, phone, email,
// tags (comma-separated).
type ContactMapper struct{}

// EntryType returns the entry type this mapper handles.
func (m *ContactMapper) EntryType() string {
	return EntryTypeContact
}

// Map converts one contact row.
func (m *ContactMapper) Map(row map[string]string) (*MappedEntry, error) {
	if row == nil {
		return nil, domain.ErrInvalidInput
	}

	data := make(map[string]any)
	setString(data, "role", row["role"])
	setString(data, "department", row["department"])

	return &MappedEntry{
		Name:        row["name"],
		Tags:        splitTags(row["tags"]),
		ContactInfo: contactInfo(row, "phone", "email", "office"),
		EntryData:   data,
	}, nil
}
