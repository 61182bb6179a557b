package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var collectionCmd = &cobra.Command{
	Use:   "collection",
	Short: "Manage directory collections",
}

var collectionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tenant's collections",
	RunE:  runCollectionList,
}

var collectionDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a collection and all its entries",
	Args:  cobra.ExactArgs(1),
	RunE:  runCollectionDelete,
}

func init() {
	collectionCmd.AddCommand(collectionListCmd)
	collectionCmd.AddCommand(collectionDeleteCmd)
	rootCmd.AddCommand(collectionCmd)
}

func runCollectionList(cmd *cobra.Command, _ []string) error {
	if collectionStore == nil {
		return errors.New("collection store not configured")
	}

	tenant := currentTenant()
	if tenant == "" {
		return errors.New("tenant ID required: pass --tenant or set tenant.id in config")
	}

	collections, err := collectionStore.ListByTenant(cmd.Context(), tenant)
	if err != nil {
		return fmt.Errorf("listing collections: %w", err)
	}

	if len(collections) == 0 {
		cmd.Println("No collections found.")
		return nil
	}

	for _, c := range collections {
		cmd.Printf("%s (%s)", c.Name, c.EntryType)
		if c.Description != "" {
			cmd.Printf(" - %s", c.Description)
		}
		cmd.Println()
	}
	return nil
}

func runCollectionDelete(cmd *cobra.Command, args []string) error {
	if collectionStore == nil {
		return errors.New("collection store not configured")
	}

	tenant := currentTenant()
	if tenant == "" {
		return errors.New("tenant ID required: pass --tenant or set tenant.id in config")
	}

	collection, err := collectionStore.GetByName(cmd.Context(), tenant, args[0])
	if err != nil {
		return fmt.Errorf("looking up collection: %w", err)
	}

	if err := collectionStore.Delete(cmd.Context(), collection.ID); err != nil {
		return fmt.Errorf("deleting collection: %w", err)
	}

	cmd.Printf("Deleted collection %s\n", collection.Name)
	return nil
}
