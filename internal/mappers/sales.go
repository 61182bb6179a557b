package mappers

import (
	"github.com/veridian-labs/dirsearch/internal/core/domain"
)

var _ FieldMapper = (*SalesMapper)(nil)

// SalesMapper maps recommendation rows for the cross-sell, up-sell and
// competitive-sell entry types. The three variants share a column set
// and differ only in which product column anchors the recommendation.
// Expected columns: name, <anchor column>, category, price (numeric
// with string fallback), pitch, tags (comma-separated).
type SalesMapper struct {
	entryType    string
	anchorColumn string
}

// NewSalesMapper creates a sales mapper for one recommendation variant.
// anchorColumn names the CSV column carrying the anchoring product
// (e.g. "related_product" for cross-sell).
func NewSalesMapper(entryType, anchorColumn string) *SalesMapper {
	return &SalesMapper{
		entryType:    entryType,
		anchorColumn: anchorColumn,
	}
}

// EntryType returns the entry type this mapper handles.
func (m *SalesMapper) EntryType() string {
	return m.entryType
}

// Map converts one recommendation row.
func (m *SalesMapper) Map(row map[string]string) (*MappedEntry, error) {
	if row == nil {
		return nil, domain.ErrInvalidInput
	}

	data := make(map[string]any)
	setString(data, m.anchorColumn, row[m.anchorColumn])
	setString(data, "category", row["category"])
	setString(data, "pitch", row["pitch"])
	setNumber(data, "price", row["price"])

	return &MappedEntry{
		Name:        row["name"],
		Tags:        splitTags(row["tags"]),
		ContactInfo: map[string]string{},
		EntryData:   data,
	}, nil
}
