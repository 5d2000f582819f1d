// Update command merges fields into an existing record.
package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/casefile/pkg/types"
)

var updateData string

var updateCmd = &cobra.Command{
	Use:   "update <collection> <id>",
	Short: "Merge fields into an existing record",
	Long: `Update shallow-merges the --data field bag over the record with the
given ID. The id and createdAt fields cannot be changed; updatedAt is
refreshed automatically.

Example:
  casefile update cases 0190a6e2-... --data '{"status": "closed"}'
  casefile update suspects 0190a6e2-... --data '{"lastSeenLocation": "Dock 4"}'`,
	Args: cobra.ExactArgs(2),
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateData, "data", "", "fields to merge as JSON, or - for stdin (required)")
	_ = updateCmd.MarkFlagRequired("data")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	collection, id := args[0], args[1]

	raw, err := readData(updateData)
	if err != nil {
		return err
	}
	var patch map[string]any
	if err := json.Unmarshal(raw, &patch); err != nil {
		return fmt.Errorf("parse patch: %w", err)
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	rec, err := updateInCollection(store, collection, id, patch)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("no %s record with id %s", collection, id)
		}
		return fmt.Errorf("update %s record: %w", collection, err)
	}
	return printRecord("Updated", collection, id, rec)
}
