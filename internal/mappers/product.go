package mappers

import (
	"github.com/veridian-labs/dirsearch/internal/core/domain"
)

var _ FieldMapper = (*ProductMapper)(nil)

// ProductMapper maps product catalogue rows.
// Expected columns: name, category, brand, sku, price (numeric with
// string fallback), in_stock, features (pipe-separated), tags
// (comma-separated).
type ProductMapper struct{}

// EntryType returns the entry type this mapper handles.
func (m *ProductMapper) EntryType() string {
	return EntryTypeProduct
}

// Map converts one product row.
func (m *ProductMapper) Map(row map[string]string) (*MappedEntry, error) {
	if row == nil {
		return nil, domain.ErrInvalidInput
	}

	data := make(map[string]any)
	setString(data, "category", row["category"])
	setString(data, "brand", row["brand"])
	setString(data, "sku", row["sku"])
	setNumber(data, "price", row["price"])
	setBool(data, "in_stock", row["in_stock"])
	setList(data, "features", row["features"])

	return &MappedEntry{
		Name:        row["name"],
		Tags:        splitTags(row["tags"]),
		ContactInfo: map[string]string{},
		EntryData:   data,
	}, nil
}
