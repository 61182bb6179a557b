package mappers

import (
	"github.com/veridian-labs/dirsearch/internal/core/domain"
)

var _ FieldMapper = (*ClassSeminarMapper)(nil)

// ClassSeminarMapper maps class and seminar rows.
// Expected columns: name, instructor, schedule, capacity (numeric),
// price (numeric with string fallback), registration_required,
// topics (pipe-separated), tags (comma-separated), phone, email.
type ClassSeminarMapper struct{}

// EntryType returns the entry type this mapper handles.
func (m *ClassSeminarMapper) EntryType() string {
	return EntryTypeClassSeminar
}

// Map converts one class/seminar row.
func (m *ClassSeminarMapper) Map(row map[string]string) (*MappedEntry, error) {
	if row == nil {
		return nil, domain.ErrInvalidInput
	}

	data := make(map[string]any)
	setString(data, "instructor", row["instructor"])
	setString(data, "schedule", row["schedule"])
	setNumber(data, "capacity", row["capacity"])
	setNumber(data, "price", row["price"])
	setBool(data, "registration_required", row["registration_required"])
	setList(data, "topics", row["topics"])

	return &MappedEntry{
		Name:        row["name"],
		Tags:        splitTags(row["tags"]),
		ContactInfo: contactInfo(row, "phone", "email"),
		EntryData:   data,
	}, nil
}
