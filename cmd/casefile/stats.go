// Stats command prints the dashboard counters.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print dashboard counters",
	Long: `Stats prints case, evidence, suspect, and witness counts derived from
the current document. A case counts as closed only when its status is
exactly "closed".`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	stats, err := store.Stats()
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}

	if flagJSON {
		return printJSON(stats)
	}
	fmt.Printf("Cases:     %d total, %d active, %d closed\n", stats.TotalCases, stats.ActiveCases, stats.ClosedCases)
	fmt.Printf("Evidence:  %d\n", stats.EvidenceCount)
	fmt.Printf("Suspects:  %d\n", stats.SuspectsCount)
	fmt.Printf("Witnesses: %d\n", stats.WitnessesCount)
	return nil
}
