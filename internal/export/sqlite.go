// Package export writes a SQLite snapshot of a Casefile document for ad-hoc
// querying and reporting. The JSON document remains the source of truth; a
// snapshot is disposable and regenerated in full on every export.
package export

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/casefile/pkg/types"
)

// schemaSQL creates one table per collection. Headline columns cover the
// fields worth filtering on; the record column carries the full JSON so no
// field is lost in the snapshot.
const schemaSQL = `
CREATE TABLE cases (
    id TEXT PRIMARY KEY,
    case_number TEXT,
    title TEXT,
    status TEXT,
    officer TEXT,
    created_at TEXT,
    updated_at TEXT,
    record TEXT NOT NULL
);
CREATE TABLE evidence (
    id TEXT PRIMARY KEY,
    case_id TEXT,
    item_number TEXT,
    type TEXT,
    created_at TEXT,
    updated_at TEXT,
    record TEXT NOT NULL
);
CREATE TABLE suspects (
    id TEXT PRIMARY KEY,
    name TEXT,
    status TEXT,
    created_at TEXT,
    updated_at TEXT,
    record TEXT NOT NULL
);
CREATE TABLE witnesses (
    id TEXT PRIMARY KEY,
    name TEXT,
    created_at TEXT,
    updated_at TEXT,
    record TEXT NOT NULL
);
CREATE TABLE timeline (
    id TEXT PRIMARY KEY,
    case_id TEXT,
    date_time TEXT,
    created_at TEXT,
    updated_at TEXT,
    record TEXT NOT NULL
);
CREATE TABLE documents (
    id TEXT PRIMARY KEY,
    case_id TEXT,
    title TEXT,
    type TEXT,
    created_at TEXT,
    updated_at TEXT,
    record TEXT NOT NULL
);
CREATE TABLE vehicles (
    id TEXT PRIMARY KEY,
    plate TEXT,
    vin TEXT,
    status TEXT,
    created_at TEXT,
    updated_at TEXT,
    record TEXT NOT NULL
);
CREATE TABLE officers (
    id TEXT PRIMARY KEY,
    name TEXT,
    badge_number TEXT,
    created_at TEXT,
    updated_at TEXT,
    record TEXT NOT NULL
);
CREATE TABLE incidents (
    id TEXT PRIMARY KEY,
    incident_number TEXT,
    status TEXT,
    created_at TEXT,
    updated_at TEXT,
    record TEXT NOT NULL
);
CREATE INDEX idx_evidence_case ON evidence(case_id);
CREATE INDEX idx_timeline_case ON timeline(case_id);
CREATE INDEX idx_documents_case ON documents(case_id);
`

// Snapshot writes the document to a SQLite database at path, replacing any
// existing file. All rows land in one transaction.
func Snapshot(doc *types.Database, path string) error {
	// A snapshot is always rebuilt from scratch.
	_ = os.Remove(path)

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening snapshot database: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Exec(schemaSQL); err != nil {
		return fmt.Errorf("creating snapshot schema: %w", err)
	}

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("beginning snapshot transaction: %w", err)
	}
	defer tx.Rollback()

	for _, c := range doc.Cases {
		if err := insertRow(tx,
			"INSERT INTO cases (id, case_number, title, status, officer, created_at, updated_at, record) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			c, c.ID, c.CaseNumber, c.Title, c.Status, c.Officer, c.CreatedAt, c.UpdatedAt); err != nil {
			return fmt.Errorf("exporting cases: %w", err)
		}
	}
	for _, e := range doc.Evidence {
		if err := insertRow(tx,
			"INSERT INTO evidence (id, case_id, item_number, type, created_at, updated_at, record) VALUES (?, ?, ?, ?, ?, ?, ?)",
			e, e.ID, e.CaseID, e.ItemNumber, e.Type, e.CreatedAt, e.UpdatedAt); err != nil {
			return fmt.Errorf("exporting evidence: %w", err)
		}
	}
	for _, sp := range doc.Suspects {
		if err := insertRow(tx,
			"INSERT INTO suspects (id, name, status, created_at, updated_at, record) VALUES (?, ?, ?, ?, ?, ?)",
			sp, sp.ID, sp.Name, sp.Status, sp.CreatedAt, sp.UpdatedAt); err != nil {
			return fmt.Errorf("exporting suspects: %w", err)
		}
	}
	for _, w := range doc.Witnesses {
		if err := insertRow(tx,
			"INSERT INTO witnesses (id, name, created_at, updated_at, record) VALUES (?, ?, ?, ?, ?)",
			w, w.ID, w.Name, w.CreatedAt, w.UpdatedAt); err != nil {
			return fmt.Errorf("exporting witnesses: %w", err)
		}
	}
	for _, ev := range doc.Timeline {
		if err := insertRow(tx,
			"INSERT INTO timeline (id, case_id, date_time, created_at, updated_at, record) VALUES (?, ?, ?, ?, ?, ?)",
			ev, ev.ID, ev.CaseID, ev.DateTime, ev.CreatedAt, ev.UpdatedAt); err != nil {
			return fmt.Errorf("exporting timeline: %w", err)
		}
	}
	for _, d := range doc.Documents {
		if err := insertRow(tx,
			"INSERT INTO documents (id, case_id, title, type, created_at, updated_at, record) VALUES (?, ?, ?, ?, ?, ?, ?)",
			d, d.ID, d.CaseID, d.Title, d.Type, d.CreatedAt, d.UpdatedAt); err != nil {
			return fmt.Errorf("exporting documents: %w", err)
		}
	}
	for _, v := range doc.Vehicles {
		if err := insertRow(tx,
			"INSERT INTO vehicles (id, plate, vin, status, created_at, updated_at, record) VALUES (?, ?, ?, ?, ?, ?, ?)",
			v, v.ID, v.Plate, v.VIN, v.Status, v.CreatedAt, v.UpdatedAt); err != nil {
			return fmt.Errorf("exporting vehicles: %w", err)
		}
	}
	for _, o := range doc.Officers {
		if err := insertRow(tx,
			"INSERT INTO officers (id, name, badge_number, created_at, updated_at, record) VALUES (?, ?, ?, ?, ?, ?)",
			o, o.ID, o.Name, o.BadgeNumber, o.CreatedAt, o.UpdatedAt); err != nil {
			return fmt.Errorf("exporting officers: %w", err)
		}
	}
	for _, in := range doc.Incidents {
		if err := insertRow(tx,
			"INSERT INTO incidents (id, incident_number, status, created_at, updated_at, record) VALUES (?, ?, ?, ?, ?, ?)",
			in, in.ID, in.IncidentNumber, in.Status, in.CreatedAt, in.UpdatedAt); err != nil {
			return fmt.Errorf("exporting incidents: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

// insertRow marshals rec as the trailing record column and executes the
// insert.
func insertRow(tx *sql.Tx, query string, rec any, args ...any) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	args = append(args, string(raw))
	_, err = tx.Exec(query, args...)
	return err
}
