package mappers

import (
	"github.com/veridian-labs/dirsearch/internal/core/domain"
)

var _ FieldMapper = (*DepartmentMapper)(nil)

// DepartmentMapper maps organisational department rows.
// Expected columns: name, description, building, floor, head,
// services (pipe-separated), phone, email, tags (comma-separated).
type DepartmentMapper struct{}

// EntryType returns the entry type this mapper handles.
func (m *DepartmentMapper) EntryType() string {
	return EntryTypeDepartment
}

// Map converts one department row.
func (m *DepartmentMapper) Map(row map[string]string) (*MappedEntry, error) {
	if row == nil {
		return nil, domain.ErrInvalidInput
	}

	data := make(map[string]any)
	setString(data, "description", row["description"])
	setString(data, "building", row["building"])
	setString(data, "floor", row["floor"])
	setString(data, "head", row["head"])
	setList(data, "services", row["services"])

	return &MappedEntry{
		Name:        row["name"],
		Tags:        splitTags(row["tags"]),
		ContactInfo: contactInfo(row, "phone", "email"),
		EntryData:   data,
	}, nil
}
