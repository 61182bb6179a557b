package driven

import (
	"github.com/veridian-labs/dirsearch/internal/core/domain"
)

// SchemaRegistry loads YAML schema definitions by filename.
// Schema files are deployment artifacts, so results are safe to cache
// indefinitely; implementations are read-through caches.
type SchemaRegistry interface {
	// LoadSchema reads the schema definition for the given filename.
	// Returns domain.ErrSchemaNotFound if the file is absent and
	// domain.ErrSchemaParse on malformed YAML.
	LoadSchema(schemaFile string) (*domain.SchemaDef, error)
}
