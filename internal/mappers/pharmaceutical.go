package mappers

import (
	"github.com/veridian-labs/dirsearch/internal/core/domain"
)

var _ FieldMapper = (*PharmaceuticalMapper)(nil)

// PharmaceuticalMapper maps drug directory rows.
// Expected columns: name, drug_class, generic_name, manufacturer,
// dosage_forms (pipe-separated), requires_prescription, tags
// (comma-separated).
type PharmaceuticalMapper struct{}

// EntryType returns the entry type this mapper handles.
func (m *PharmaceuticalMapper) EntryType() string {
	return EntryTypePharmaceutical
}

// Map converts one drug row.
func (m *PharmaceuticalMapper) Map(row map[string]string) (*MappedEntry, error) {
	if row == nil {
		return nil, domain.ErrInvalidInput
	}

	data := make(map[string]any)
	setString(data, "drug_class", row["drug_class"])
	setString(data, "generic_name", row["generic_name"])
	setString(data, "manufacturer", row["manufacturer"])
	setList(data, "dosage_forms", row["dosage_forms"])
	setBool(data, "requires_prescription", row["requires_prescription"])

	return &MappedEntry{
		Name:        row["name"],
		Tags:        splitTags(row["tags"]),
		ContactInfo: map[string]string{},
		EntryData:   data,
	}, nil
}
