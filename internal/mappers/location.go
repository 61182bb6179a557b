package mappers

import (
	"github.com/veridian-labs/dirsearch/internal/core/domain"
)

var _ FieldMapper = (*LocationMapper)(nil)

// LocationMapper maps physical location rows.
// Expected columns: name, address, city, region, postal_code, hours,
// services (pipe-separated), phone, email, tags (comma-separated).
type LocationMapper struct{}

// EntryType returns the entry type this mapper handles.
func (m *LocationMapper) EntryType() string {
	return EntryTypeLocation
}

// Map converts one location row.
func (m *LocationMapper) Map(row map[string]string) (*MappedEntry, error) {
	if row == nil {
		return nil, domain.ErrInvalidInput
	}

	data := make(map[string]any)
	setString(data, "address", row["address"])
	setString(data, "city", row["city"])
	setString(data, "region", row["region"])
	setString(data, "postal_code", row["postal_code"])
	setString(data, "hours", row["hours"])
	setList(data, "services", row["services"])

	return &MappedEntry{
		Name:        row["name"],
		Tags:        splitTags(row["tags"]),
		ContactInfo: contactInfo(row, "phone", "email"),
		EntryData:   data,
	}, nil
}
