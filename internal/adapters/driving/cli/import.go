package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veridian-labs/dirsearch/internal/core/domain"
)

var (
	importCollection  string
	importDescription string
	importEntryType   string
	importSchemaFile  string
)

var importCmd = &cobra.Command{
	Use:   "import [csv-file]",
	Short: "Import a CSV file into a collection",
	Long: `Imports a CSV directory file into a tenant collection.

The entry type selects the column mapper. Rows the mapper or schema
rejects are skipped and counted; re-importing replaces the collection's
entries.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVarP(&importCollection, "collection", "c", "", "collection name (required)")
	importCmd.Flags().StringVarP(&importDescription, "description", "d", "", "collection description")
	importCmd.Flags().StringVarP(&importEntryType, "entry-type", "e", "", "entry type selecting the column mapper (required)")
	importCmd.Flags().StringVarP(&importSchemaFile, "schema", "s", "", "YAML schema file to validate against")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if importService == nil {
		return errors.New("import service not configured")
	}

	tenant := currentTenant()
	if tenant == "" {
		return errors.New("tenant ID required: pass --tenant or set tenant.id in config")
	}
	if importCollection == "" || importEntryType == "" {
		return errors.New("--collection and --entry-type are required")
	}

	result, err := importService.ImportCSV(cmd.Context(), domain.ImportRequest{
		Path:           args[0],
		TenantID:       tenant,
		CollectionName: importCollection,
		Description:    importDescription,
		EntryType:      importEntryType,
		SchemaFile:     importSchemaFile,
	})
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	cmd.Printf("Imported %d/%d rows into %s (%d skipped)\n",
		result.Stats.Parsed, result.Stats.Total,
		result.Collection.Name, result.Stats.Skipped)
	return nil
}
