// Delete command removes a record by ID.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/casefile/pkg/types"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <collection> <id>",
	Short: "Remove a record by ID",
	Long: `Delete removes the record with the given ID. Deleting an ID that does
not exist still succeeds. Deleting a case also removes every evidence,
timeline, and document record referencing it.

Example:
  casefile delete vehicles 0190a6e2-...
  casefile delete cases 0190a6e2-...`,
	Args: cobra.ExactArgs(2),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	collection, id := args[0], args[1]

	store, err := openStore()
	if err != nil {
		return err
	}

	if err := deleteFromCollection(store, collection, id); err != nil {
		return fmt.Errorf("delete %s record: %w", collection, err)
	}

	if flagJSON {
		return printJSON(map[string]any{"deleted": id, "collection": collection})
	}
	fmt.Printf("Deleted %s record: %s\n", collection, id)
	if collection == types.CasesCollection {
		fmt.Println("Related evidence, timeline, and document records were removed.")
	}
	return nil
}
