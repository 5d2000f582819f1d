// Shared helpers for casefile CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/casefile/internal/casedb"
	"github.com/mesh-intelligence/casefile/pkg/types"
)

// collectionNamesStr is a comma-separated list of valid collection names for
// error output.
var collectionNamesStr = strings.Join(types.CollectionNames, ", ")

// openStore resolves the data directory and opens the record store. Store
// logs go to stderr only with --verbose.
func openStore() (*casedb.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	logger := zerolog.Nop()
	if flagVerbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	store, err := casedb.Open(types.Config{DataDir: dataDir}, logger)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return store, nil
}

// readData returns the record payload from the --data flag, or from stdin
// when the flag value is "-".
func readData(data string) ([]byte, error) {
	if data == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return raw, nil
	}
	return []byte(data), nil
}

// printRecord renders one record: indented JSON with --json, a single
// confirmation line otherwise.
func printRecord(action, collection, id string, rec any) error {
	if flagJSON {
		return printJSON(rec)
	}
	fmt.Printf("%s %s record: %s\n", action, collection, id)
	return nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// addToCollection parses data as a record of the named collection and stores
// it.
func addToCollection(s *casedb.Store, collection string, data []byte) (string, any, error) {
	parse := func(v any) error {
		if err := json.Unmarshal(data, v); err != nil {
			return fmt.Errorf("parse %s record: %w", collection, err)
		}
		return nil
	}

	switch collection {
	case types.CasesCollection:
		var v types.Case
		if err := parse(&v); err != nil {
			return "", nil, err
		}
		rec, err := s.AddCase(v)
		return rec.ID, rec, err
	case types.EvidenceCollection:
		var v types.Evidence
		if err := parse(&v); err != nil {
			return "", nil, err
		}
		rec, err := s.AddEvidence(v)
		return rec.ID, rec, err
	case types.SuspectsCollection:
		var v types.Suspect
		if err := parse(&v); err != nil {
			return "", nil, err
		}
		rec, err := s.AddSuspect(v)
		return rec.ID, rec, err
	case types.WitnessesCollection:
		var v types.Witness
		if err := parse(&v); err != nil {
			return "", nil, err
		}
		rec, err := s.AddWitness(v)
		return rec.ID, rec, err
	case types.TimelineCollection:
		var v types.TimelineEvent
		if err := parse(&v); err != nil {
			return "", nil, err
		}
		rec, err := s.AddTimelineEvent(v)
		return rec.ID, rec, err
	case types.DocumentsCollection:
		var v types.Document
		if err := parse(&v); err != nil {
			return "", nil, err
		}
		rec, err := s.AddDocument(v)
		return rec.ID, rec, err
	case types.VehiclesCollection:
		var v types.Vehicle
		if err := parse(&v); err != nil {
			return "", nil, err
		}
		rec, err := s.AddVehicle(v)
		return rec.ID, rec, err
	case types.OfficersCollection:
		var v types.Officer
		if err := parse(&v); err != nil {
			return "", nil, err
		}
		rec, err := s.AddOfficer(v)
		return rec.ID, rec, err
	case types.IncidentsCollection:
		var v types.Incident
		if err := parse(&v); err != nil {
			return "", nil, err
		}
		rec, err := s.AddIncident(v)
		return rec.ID, rec, err
	default:
		return "", nil, fmt.Errorf("%w: %s (valid: %s)", types.ErrUnknownCollection, collection, collectionNamesStr)
	}
}

// getFromCollection fetches one record by ID from the named collection.
func getFromCollection(s *casedb.Store, collection, id string) (any, error) {
	switch collection {
	case types.CasesCollection:
		return s.Case(id)
	case types.EvidenceCollection:
		return s.EvidenceItem(id)
	case types.SuspectsCollection:
		return s.Suspect(id)
	case types.WitnessesCollection:
		return s.Witness(id)
	case types.TimelineCollection:
		return s.TimelineEvent(id)
	case types.DocumentsCollection:
		return s.Document(id)
	case types.VehiclesCollection:
		return s.Vehicle(id)
	case types.OfficersCollection:
		return s.Officer(id)
	case types.IncidentsCollection:
		return s.Incident(id)
	default:
		return nil, fmt.Errorf("%w: %s (valid: %s)", types.ErrUnknownCollection, collection, collectionNamesStr)
	}
}

// updateInCollection merges a patch field bag over the record with the given
// ID.
func updateInCollection(s *casedb.Store, collection, id string, patch map[string]any) (any, error) {
	switch collection {
	case types.CasesCollection:
		return s.UpdateCase(id, patch)
	case types.EvidenceCollection:
		return s.UpdateEvidence(id, patch)
	case types.SuspectsCollection:
		return s.UpdateSuspect(id, patch)
	case types.WitnessesCollection:
		return s.UpdateWitness(id, patch)
	case types.TimelineCollection:
		return s.UpdateTimelineEvent(id, patch)
	case types.DocumentsCollection:
		return s.UpdateDocument(id, patch)
	case types.VehiclesCollection:
		return s.UpdateVehicle(id, patch)
	case types.OfficersCollection:
		return s.UpdateOfficer(id, patch)
	case types.IncidentsCollection:
		return s.UpdateIncident(id, patch)
	default:
		return nil, fmt.Errorf("%w: %s (valid: %s)", types.ErrUnknownCollection, collection, collectionNamesStr)
	}
}

// deleteFromCollection removes the record with the given ID.
func deleteFromCollection(s *casedb.Store, collection, id string) error {
	switch collection {
	case types.CasesCollection:
		return s.DeleteCase(id)
	case types.EvidenceCollection:
		return s.DeleteEvidence(id)
	case types.SuspectsCollection:
		return s.DeleteSuspect(id)
	case types.WitnessesCollection:
		return s.DeleteWitness(id)
	case types.TimelineCollection:
		return s.DeleteTimelineEvent(id)
	case types.DocumentsCollection:
		return s.DeleteDocument(id)
	case types.VehiclesCollection:
		return s.DeleteVehicle(id)
	case types.OfficersCollection:
		return s.DeleteOfficer(id)
	case types.IncidentsCollection:
		return s.DeleteIncident(id)
	default:
		return fmt.Errorf("%w: %s (valid: %s)", types.ErrUnknownCollection, collection, collectionNamesStr)
	}
}
