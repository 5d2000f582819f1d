// Add command creates a record in a collection.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addData string

var addCmd = &cobra.Command{
	Use:   "add <collection>",
	Short: "Create a record in a collection",
	Long: `Add parses --data as a JSON record of the named collection and stores
it. The store assigns the ID and timestamps; caller-supplied values for them
are ignored.

Example:
  casefile add cases --data '{"caseNumber": "CASE-42", "title": "Warehouse theft"}'
  casefile add timeline --data '{"caseId": "...", "dateTime": "2024-03-01T14:00"}'
  cat suspect.json | casefile add suspects --data -`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addData, "data", "", "record fields as JSON, or - for stdin (required)")
	_ = addCmd.MarkFlagRequired("data")
}

func runAdd(cmd *cobra.Command, args []string) error {
	collection := args[0]

	raw, err := readData(addData)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}

	id, rec, err := addToCollection(store, collection, raw)
	if err != nil {
		return fmt.Errorf("add %s record: %w", collection, err)
	}
	return printRecord("Created", collection, id, rec)
}
