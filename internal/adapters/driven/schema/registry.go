// Package schema loads YAML schema definitions from the schema
// directory. Schema files are deployment-time artifacts, so parsed
// definitions are cached indefinitely keyed by filename.
package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/veridian-labs/dirsearch/internal/core/domain"
	"github.com/veridian-labs/dirsearch/internal/core/ports/driven"
	"github.com/veridian-labs/dirsearch/internal/logger"
)

// Ensure Registry implements the interface.
var _ driven.SchemaRegistry = (*Registry)(nil)

// Registry is a read-through schema cache over a fixed directory.
// Safe for concurrent use; entries are immutable once loaded.
type Registry struct {
	dir   string
	mu    sync.RWMutex
	cache map[string]*domain.SchemaDef
}

// NewRegistry creates a registry reading from the given schema
// directory.
func NewRegistry(dir string) *Registry {
	return &Registry{
		dir:   dir,
		cache: make(map[string]*domain.SchemaDef),
	}
}

// LoadSchema reads and caches the schema definition for schemaFile.
// The filename is resolved against the registry's schema directory;
// path separators in the name are rejected so callers cannot escape it.
func (r *Registry) LoadSchema(schemaFile string) (*domain.SchemaDef, error) {
	if schemaFile == "" || schemaFile != filepath.Base(schemaFile) {
		return nil, fmt.Errorf("%w: invalid schema filename %q", domain.ErrSchemaNotFound, schemaFile)
	}

	r.mu.RLock()
	def, ok := r.cache[schemaFile]
	r.mu.RUnlock()
	if ok {
		return def, nil
	}

	data, err := os.ReadFile(filepath.Join(r.dir, schemaFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSchemaNotFound, schemaFile)
		}
		return nil, fmt.Errorf("reading schema %s: %w", schemaFile, err)
	}

	def = &domain.SchemaDef{}
	if err := yaml.Unmarshal(data, def); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrSchemaParse, schemaFile, err)
	}

	logger.Debug("Loaded schema %s (entry type %s, %d required fields)",
		schemaFile, def.EntryType, len(def.RequiredFields))

	r.mu.Lock()
	r.cache[schemaFile] = def
	r.mu.Unlock()

	return def, nil
}

// Dir returns the schema directory path.
func (r *Registry) Dir() string {
	return r.dir
}
