// Package cli implements the cobra command tree. Commands hold no
// business logic; they parse flags, call the injected services and
// format output.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/veridian-labs/dirsearch/internal/core/ports/driven"
	"github.com/veridian-labs/dirsearch/internal/core/ports/driving"
	"github.com/veridian-labs/dirsearch/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services injected at startup.
var (
	searchService   driving.SearchService
	importService   driving.ImportService
	collectionStore driven.CollectionStore
	schemaRegistry  driven.SchemaRegistry
	configStore     driven.ConfigStore
)

var (
	verbose    bool
	tenantFlag string
)

var rootCmd = &cobra.Command{
	Use:   "dirsearch",
	Short: "Multi-tenant directory search engine",
	Long: `dirsearch imports CSV directories into tenant-scoped collections
and serves schema-aware searches over them, either directly or through
an MCP server for AI assistants.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&tenantFlag, "tenant", "", "tenant ID (defaults to tenant.id from config)")
}

// Deps aggregates everything the command tree needs.
type Deps struct {
	Search      driving.SearchService
	Import      driving.ImportService
	Collections driven.CollectionStore
	Schemas     driven.SchemaRegistry
	Config      driven.ConfigStore
	Version     string
}

// Setup injects service dependencies into the command tree.
// Must be called before Execute.
func Setup(deps Deps) {
	searchService = deps.Search
	importService = deps.Import
	collectionStore = deps.Collections
	schemaRegistry = deps.Schemas
	configStore = deps.Config
	if deps.Version != "" {
		version = deps.Version
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// currentTenant resolves the tenant ID: the --tenant flag wins, then
// the tenant.id config key.
func currentTenant() string {
	if tenantFlag != "" {
		return tenantFlag
	}
	if configStore != nil {
		return configStore.GetString("tenant.id")
	}
	return ""
}
