// List command prints all records in a collection.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/casefile/internal/casedb"
	"github.com/mesh-intelligence/casefile/pkg/types"
)

var listCaseID string

var listCmd = &cobra.Command{
	Use:   "list <collection>",
	Short: "List all records in a collection",
	Long: `List prints every record in the named collection in stored order.
For evidence, timeline, and documents, --case filters to one case.

Example:
  casefile list cases
  casefile list evidence --case 0190a6e2-...
  casefile list timeline --json`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listCaseID, "case", "", "filter by case ID (evidence, timeline, documents)")
}

func runList(cmd *cobra.Command, args []string) error {
	collection := args[0]

	store, err := openStore()
	if err != nil {
		return err
	}

	recs, rows, err := listCollection(store, collection, listCaseID)
	if err != nil {
		return fmt.Errorf("list %s: %w", collection, err)
	}

	if flagJSON {
		return printJSON(recs)
	}
	printTable(collection, rows)
	return nil
}

// listRow is one line of human list output.
type listRow struct {
	id      string
	label   string
	created string
}

// listCollection returns the raw records (for JSON output) and the rendered
// rows (for human output).
func listCollection(s *casedb.Store, collection, caseID string) (any, []listRow, error) {
	switch collection {
	case types.CasesCollection:
		recs, err := s.Cases()
		return recs, rowsOf(recs, func(c types.Case) string { return c.Title }), err
	case types.EvidenceCollection:
		recs, err := listMaybeByCase(caseID, s.Evidence, s.EvidenceByCase)
		return recs, rowsOf(recs, func(e types.Evidence) string { return e.ItemNumber }), err
	case types.SuspectsCollection:
		recs, err := s.Suspects()
		return recs, rowsOf(recs, func(sp types.Suspect) string { return sp.Name }), err
	case types.WitnessesCollection:
		recs, err := s.Witnesses()
		return recs, rowsOf(recs, func(w types.Witness) string { return w.Name }), err
	case types.TimelineCollection:
		recs, err := listMaybeByCase(caseID, s.Timeline, s.TimelineByCase)
		return recs, rowsOf(recs, func(t types.TimelineEvent) string { return t.DateTime }), err
	case types.DocumentsCollection:
		recs, err := listMaybeByCase(caseID, s.Documents, s.DocumentsByCase)
		return recs, rowsOf(recs, func(d types.Document) string { return d.Title }), err
	case types.VehiclesCollection:
		recs, err := s.Vehicles()
		return recs, rowsOf(recs, func(v types.Vehicle) string { return v.Plate }), err
	case types.OfficersCollection:
		recs, err := s.Officers()
		return recs, rowsOf(recs, func(o types.Officer) string { return o.Name }), err
	case types.IncidentsCollection:
		recs, err := s.Incidents()
		return recs, rowsOf(recs, func(in types.Incident) string { return in.IncidentNumber }), err
	default:
		return nil, nil, fmt.Errorf("%w: %s (valid: %s)", types.ErrUnknownCollection, collection, collectionNamesStr)
	}
}

// listMaybeByCase picks the by-case filter when a case ID was given.
func listMaybeByCase[T any](caseID string, all func() ([]T, error), byCase func(string) ([]T, error)) ([]T, error) {
	if caseID != "" {
		return byCase(caseID)
	}
	return all()
}

// rowsOf renders records into human list rows.
func rowsOf[T any, P interface {
	*T
	Meta() *types.Record
}](recs []T, label func(T) string) []listRow {
	rows := make([]listRow, 0, len(recs))
	for i := range recs {
		meta := P(&recs[i]).Meta()
		rows = append(rows, listRow{
			id:      meta.ID,
			label:   label(recs[i]),
			created: meta.CreatedAt,
		})
	}
	return rows
}

// printTable prints rows in a human-readable table format.
func printTable(collection string, rows []listRow) {
	if len(rows) == 0 {
		fmt.Printf("No %s records found.\n", collection)
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tLABEL\tCREATED")
	fmt.Fprintln(w, "--\t-----\t-------")
	for _, row := range rows {
		label := row.label
		if len(label) > 40 {
			label = label[:37] + "..."
		}
		shortID := row.id
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}
		created := row.created
		if len(created) > 10 {
			created = created[:10]
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", shortID, label, created)
	}
	w.Flush()

	for _, line := range strings.Split(sb.String(), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}

	fmt.Printf("Total: %d record(s)\n", len(rows))
}
