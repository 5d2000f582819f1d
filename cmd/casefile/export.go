// Export command writes a SQLite snapshot of the document.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/casefile/internal/export"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a SQLite snapshot of the document",
	Long: `Export dumps every collection into a SQLite database for ad-hoc
querying. The snapshot is rebuilt from scratch on every export; the JSON
document stays the source of truth.

Example:
  casefile export --out casefile.db
  sqlite3 casefile.db "SELECT title FROM cases WHERE status != 'closed'"`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "casefile.db", "snapshot file path")
}

func runExport(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	doc, err := store.Dump()
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}
	if err := export.Snapshot(doc, exportOut); err != nil {
		return fmt.Errorf("export snapshot: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]string{"snapshot": exportOut})
	}
	fmt.Printf("Snapshot written to %s\n", exportOut)
	return nil
}
