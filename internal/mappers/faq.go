package mappers

import (
	"github.com/veridian-labs/dirsearch/internal/core/domain"
)

var _ FieldMapper = (*FAQMapper)(nil)

// FAQMapper maps question/answer rows. The question doubles as the
// entry name.
// Expected columns: question, answer, category, topics
// (comma-separated, becomes tags).
type FAQMapper struct{}

// EntryType returns the entry type this mapper handles.
func (m *FAQMapper) EntryType() string {
	return EntryTypeFAQ
}

// Map converts one FAQ row.
func (m *FAQMapper) Map(row map[string]string) (*MappedEntry, error) {
	if row == nil {
		return nil, domain.ErrInvalidInput
	}

	data := make(map[string]any)
	setString(data, "answer", row["answer"])
	setString(data, "category", row["category"])

	return &MappedEntry{
		Name:        row["question"],
		Tags:        splitTags(row["topics"]),
		ContactInfo: map[string]string{},
		EntryData:   data,
	}, nil
}
