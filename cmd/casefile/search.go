// Search command scans every searchable collection.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/casefile/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search across all collections",
	Long: `Search runs a case-insensitive substring scan over the searchable
fields of cases, evidence, suspects, witnesses, timeline, documents, and
vehicles, and prints the hits grouped by collection.

Example:
  casefile search warehouse
  casefile search "CASE-42" --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	results, err := store.Search(args[0])
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if flagJSON {
		return printJSON(results)
	}
	printSearchResults(results)
	return nil
}

func printSearchResults(results types.SearchResults) {
	total := 0
	section := func(collection string, rows []listRow) {
		total += len(rows)
		if len(rows) == 0 {
			return
		}
		fmt.Printf("%s (%d):\n", collection, len(rows))
		for _, row := range rows {
			fmt.Printf("  %s  %s\n", row.id, row.label)
		}
	}

	section(types.CasesCollection, rowsOf(results.Cases, func(c types.Case) string { return c.Title }))
	section(types.EvidenceCollection, rowsOf(results.Evidence, func(e types.Evidence) string { return e.ItemNumber }))
	section(types.SuspectsCollection, rowsOf(results.Suspects, func(s types.Suspect) string { return s.Name }))
	section(types.WitnessesCollection, rowsOf(results.Witnesses, func(w types.Witness) string { return w.Name }))
	section(types.TimelineCollection, rowsOf(results.Timeline, func(t types.TimelineEvent) string { return t.Description }))
	section(types.DocumentsCollection, rowsOf(results.Documents, func(d types.Document) string { return d.Title }))
	section(types.VehiclesCollection, rowsOf(results.Vehicles, func(v types.Vehicle) string { return v.Plate }))

	if total == 0 {
		fmt.Println("No matches.")
		return
	}
	fmt.Printf("Total: %d match(es)\n", total)
}
