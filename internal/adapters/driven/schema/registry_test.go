package schema

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridian-labs/dirsearch/internal/core/domain"
)

const medicalSchema = `entry_type: medical_professional
required_fields: [department, specialty]
tags_usage:
  description: "Spoken languages"
  examples: ["Spanish", "French"]
searchable_fields:
  specialty:
    description: "Medical specialty"
    examples: ["Cardiology", "Neurology"]
  department:
    description: "Hospital department"
search_strategy:
  guidance: "Prefer specialty filters over free text."
  synonym_mappings:
    - lay_terms: ["heart doctor"]
      formal_terms: ["Cardiology"]
  examples: ["find a heart doctor who speaks Spanish"]
`

func writeSchema(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0600))
}

func TestRegistry_LoadSchema(t *testing.T) {
	dir := t.TempDir()
	writeSchema(t, dir, "medical_professional.yaml", medicalSchema)

	r := NewRegistry(dir)
	def, err := r.LoadSchema("medical_professional.yaml")
	require.NoError(t, err)

	assert.Equal(t, "medical_professional", def.EntryType)
	assert.Equal(t, []string{"department", "specialty"}, def.RequiredFields)
	assert.Equal(t, "Spoken languages", def.TagsUsage.Description)
	assert.Equal(t, "Medical specialty", def.SearchableFields["specialty"].Description)
	require.Len(t, def.SearchStrategy.SynonymMappings, 1)
	assert.Equal(t, []string{"heart doctor"}, def.SearchStrategy.SynonymMappings[0].LayTerms)
}

func TestRegistry_CachesByFilename(t *testing.T) {
	dir := t.TempDir()
	writeSchema(t, dir, "medical_professional.yaml", medicalSchema)

	r := NewRegistry(dir)
	first, err := r.LoadSchema("medical_professional.yaml")
	require.NoError(t, err)

	// Deleting the file must not matter: schema files are deployment
	// artifacts and cached definitions stay valid.
	require.NoError(t, os.Remove(filepath.Join(dir, "medical_professional.yaml")))

	second, err := r.LoadSchema("medical_professional.yaml")
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestRegistry_SchemaNotFound(t *testing.T) {
	r := NewRegistry(t.TempDir())
	_, err := r.LoadSchema("missing.yaml")
	assert.True(t, errors.Is(err, domain.ErrSchemaNotFound))
}

func TestRegistry_SchemaParseError(t *testing.T) {
	dir := t.TempDir()
	writeSchema(t, dir, "broken.yaml", "entry_type: [unclosed")

	r := NewRegistry(dir)
	_, err := r.LoadSchema("broken.yaml")
	assert.True(t, errors.Is(err, domain.ErrSchemaParse))
}

func TestRegistry_RejectsPathTraversal(t *testing.T) {
	r := NewRegistry(t.TempDir())

	_, err := r.LoadSchema("../outside.yaml")
	assert.True(t, errors.Is(err, domain.ErrSchemaNotFound))

	_, err = r.LoadSchema("")
	assert.True(t, errors.Is(err, domain.ErrSchemaNotFound))
}
