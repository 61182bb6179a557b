package mappers

import (
	"github.com/veridian-labs/dirsearch/internal/core/domain"
)

var _ FieldMapper = (*ExpertConsultantMapper)(nil)

// ExpertConsultantMapper maps expert and consultant rows.
// Expected columns: name, organization, bio, expertise
// (pipe-separated), hourly_rate (numeric with string fallback),
// languages (comma-separated, becomes tags), phone, email.
type ExpertConsultantMapper struct{}

// EntryType returns the entry type this mapper handles.
func (m *ExpertConsultantMapper) EntryType() string {
	return EntryTypeExpertConsultant
}

// Map converts one expert/consultant row.
func (m *ExpertConsultantMapper) Map(row map[string]string) (*MappedEntry, error) {
	if row == nil {
		return nil, domain.ErrInvalidInput
	}

	data := make(map[string]any)
	setString(data, "organization", row["organization"])
	setString(data, "bio", row["bio"])
	setList(data, "expertise", row["expertise"])
	setNumber(data, "hourly_rate", row["hourly_rate"])

	return &MappedEntry{
		Name:        row["name"],
		Tags:        splitTags(row["languages"]),
		ContactInfo: contactInfo(row, "phone", "email"),
		EntryData:   data,
	}, nil
}
