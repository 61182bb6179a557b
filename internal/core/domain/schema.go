package domain

import (
	"fmt"
	"strings"
)

// SchemaDef is the parsed YAML schema definition for one entry type.
// Schema files are deployment-time artifacts: read-only input to the
// registry and importer, never written by this system.
type SchemaDef struct {
	// EntryType names the entry type this schema governs.
	EntryType string `yaml:"entry_type"`

	// RequiredFields lists entry_data keys that must be non-empty at
	// import time. Name is always required and is not listed here.
	RequiredFields []string `yaml:"required_fields"`

	// TagsUsage documents how tags are used. Descriptive only.
	TagsUsage TagsUsage `yaml:"tags_usage"`

	// SearchableFields documents which entry_data keys are filterable.
	SearchableFields map[string]FieldUsage `yaml:"searchable_fields"`

	// SearchStrategy carries natural-language guidance and lay-term to
	// formal-term synonym mappings. Used for tool documentation
	// generation, never for query execution.
	SearchStrategy SearchStrategy `yaml:"search_strategy"`
}

// TagsUsage documents tag semantics for an entry type.
type TagsUsage struct {
	Description string   `yaml:"description"`
	Examples    []string `yaml:"examples"`
}

// FieldUsage documents one searchable entry_data field.
type FieldUsage struct {
	Description string   `yaml:"description"`
	Examples    []string `yaml:"examples"`
}

// SearchStrategy is advisory search guidance for the tool layer.
type SearchStrategy struct {
	Guidance        string           `yaml:"guidance"`
	SynonymMappings []SynonymMapping `yaml:"synonym_mappings"`
	Examples        []string         `yaml:"examples"`
}

// SynonymMapping maps lay terms to formal terms (e.g. "heart doctor"
// to "Cardiology").
type SynonymMapping struct {
	LayTerms    []string `yaml:"lay_terms"`
	FormalTerms []string `yaml:"formal_terms"`
}

// ValidateEntry checks a mapped entry against the schema: name must be
// non-blank and every required field must be present and non-empty in
// entry_data. Returns the first failing field name and an error.
func (s *SchemaDef) ValidateEntry(name string, entryData map[string]any) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "name", fmt.Errorf("%w: name is blank", ErrInvalidInput)
	}
	for _, field := range s.RequiredFields {
		val, ok := entryData[field]
		if !ok || val == nil {
			return field, fmt.Errorf("%w: required field %q is missing", ErrInvalidInput, field)
		}
		if str, isStr := val.(string); isStr && strings.TrimSpace(str) == "" {
			return field, fmt.Errorf("%w: required field %q is blank", ErrInvalidInput, field)
		}
	}
	return "", nil
}

// ToolGuidance renders the schema's search strategy and searchable
// fields into documentation text for the tool layer.
func (s *SchemaDef) ToolGuidance() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Entry type: %s\n", s.EntryType)
	if s.SearchStrategy.Guidance != "" {
		fmt.Fprintf(&b, "Guidance: %s\n", s.SearchStrategy.Guidance)
	}
	if len(s.SearchableFields) > 0 {
		b.WriteString("Filterable fields:\n")
		for field, usage := range s.SearchableFields {
			fmt.Fprintf(&b, "  %s: %s", field, usage.Description)
			if len(usage.Examples) > 0 {
				fmt.Fprintf(&b, " (e.g. %s)", strings.Join(usage.Examples, ", "))
			}
			b.WriteByte('\n')
		}
	}
	if s.TagsUsage.Description != "" {
		fmt.Fprintf(&b, "Tags: %s", s.TagsUsage.Description)
		if len(s.TagsUsage.Examples) > 0 {
			fmt.Fprintf(&b, " (e.g. %s)", strings.Join(s.TagsUsage.Examples, ", "))
		}
		b.WriteByte('\n')
	}
	for _, m := range s.SearchStrategy.SynonymMappings {
		fmt.Fprintf(&b, "Synonyms: %s -> %s\n",
			strings.Join(m.LayTerms, ", "), strings.Join(m.FormalTerms, ", "))
	}
	return b.String()
}
