// Get command fetches one record by ID.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/casefile/pkg/types"
)

var getCmd = &cobra.Command{
	Use:   "get <collection> <id>",
	Short: "Fetch a record by ID",
	Long: `Get prints the record with the given ID from the named collection.

Example:
  casefile get cases 0190a6e2-...
  casefile get evidence 0190a6e2-... --json`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	collection, id := args[0], args[1]

	store, err := openStore()
	if err != nil {
		return err
	}

	rec, err := getFromCollection(store, collection, id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("no %s record with id %s", collection, id)
		}
		return fmt.Errorf("get %s record: %w", collection, err)
	}
	return printJSON(rec)
}
