package mappers

import (
	"github.com/veridian-labs/dirsearch/internal/core/domain"
)

// Ensure MedicalProfessionalMapper implements the interface.
var _ FieldMapper = (*MedicalProfessionalMapper)(nil)

// MedicalProfessionalMapper maps medical staff rows.
// Expected columns: name, department, specialty, title, gender,
// languages (comma-separated, becomes tags), certifications
// (pipe-separated), accepting_new_patients, phone, email, location.
type MedicalProfessionalMapper struct{}

// EntryType returns the entry type this mapper handles.
func (m *MedicalProfessionalMapper) EntryType() string {
	return EntryTypeMedicalProfessional
}

// Map converts one medical staff row.
func (m *MedicalProfessionalMapper) Map(row map[string]string) (*MappedEntry, error) {
	if row == nil {
		return nil, domain.ErrInvalidInput
	}

	data := make(map[string]any)
	setString(data, "department", row["department"])
	setString(data, "specialty", row["specialty"])
	setString(data, "title", row["title"])
	setString(data, "gender", row["gender"])
	setList(data, "certifications", row["certifications"])
	setBool(data, "accepting_new_patients", row["accepting_new_patients"])

	return &MappedEntry{
		Name:        row["name"],
		Tags:        splitTags(row["languages"]),
		ContactInfo: contactInfo(row, "phone", "email", "location"),
		EntryData:   data,
	}, nil
}
