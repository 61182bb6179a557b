// Command dirsearch is the entry point for the directory search engine.
// It wires the SQLite store, schema registry and config store into the
// core services and hands control to the CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/veridian-labs/dirsearch/internal/adapters/driven/config/file"
	"github.com/veridian-labs/dirsearch/internal/adapters/driven/schema"
	"github.com/veridian-labs/dirsearch/internal/adapters/driven/storage/sqlite"
	"github.com/veridian-labs/dirsearch/internal/adapters/driving/cli"
	"github.com/veridian-labs/dirsearch/internal/core/services"
	"github.com/veridian-labs/dirsearch/internal/mappers"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}

	store, err := sqlite.NewStore(configStore.GetString("storage.data_dir"))
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}
	defer store.Close()

	schemaDir := configStore.GetString("schema.dir")
	if schemaDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("getting home directory: %w", err)
		}
		schemaDir = filepath.Join(home, ".dirsearch", "schemas")
	}
	schemaRegistry := schema.NewRegistry(schemaDir)

	collectionStore := store.CollectionStore()
	entryStore := store.EntryStore()

	cli.Setup(cli.Deps{
		Search:      services.NewSearchService(collectionStore, entryStore),
		Import:      services.NewImportService(collectionStore, entryStore, schemaRegistry, mappers.NewDefaultRegistry()),
		Collections: collectionStore,
		Schemas:     schemaRegistry,
		Config:      configStore,
		Version:     version,
	})

	return cli.Execute()
}
