// Package casedb implements the Casefile record store: one JSON document on
// disk holding every collection, mutated through whole-document
// load-mutate-save cycles serialized by a per-store mutex.
package casedb

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/casefile/pkg/types"
)

// backingFile is the document's file name inside the data directory.
const backingFile = "casefile.json"

// Store owns exclusive access to one backing document. All operations go
// through load and save under mu, so interleaved callers never lose each
// other's writes within a process. Cross-process access is out of scope; the
// design assumes a single active writer process.
type Store struct {
	mu   sync.Mutex
	path string
	log  zerolog.Logger
}

// Open creates the data directory if needed and initializes the backing
// document when none exists. The logger receives corruption-recovery and
// lifecycle events; pass zerolog.Nop() to discard them.
func Open(config types.Config, logger zerolog.Logger) (*Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	s := &Store{
		path: filepath.Join(config.DataDir, backingFile),
		log:  logger,
	}
	if _, err := s.load(); err != nil {
		return nil, err
	}
	s.log.Debug().Str("path", s.path).Msg("store opened")
	return s, nil
}

// Path returns the location of the backing document.
func (s *Store) Path() string {
	return s.path
}

// Dump returns the whole document as currently persisted. Consumers such as
// the SQLite snapshot exporter read it; mutating the result has no effect on
// the store.
func (s *Store) Dump() (*types.Database, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// load reads the whole document from disk. A missing backing file is
// initialized to an empty document. An unreadable or unparseable backing is
// logged and replaced with an empty document: corruption never surfaces to
// the caller, only the recovery write can fail. Callers must hold s.mu.
func (s *Store) load() (*types.Database, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Error().Err(err).Str("path", s.path).Msg("backing document unreadable, reinitializing")
		}
		return s.reset()
	}

	var db types.Database
	if err := json.Unmarshal(raw, &db); err != nil {
		s.log.Error().Err(err).Str("path", s.path).Msg("backing document corrupted, reinitializing")
		return s.reset()
	}
	return &db, nil
}

// reset writes a fresh empty document and returns it.
func (s *Store) reset() (*types.Database, error) {
	db := emptyDatabase()
	if err := s.save(db); err != nil {
		return nil, err
	}
	return db, nil
}

// save stamps lastUpdated, serializes the whole document pretty-printed, and
// replaces the backing file atomically. Write failure propagates: it means
// an unrecoverable environment problem. Callers must hold s.mu.
func (s *Store) save(db *types.Database) error {
	db.LastUpdated = nowISO()
	raw, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling document: %w", err)
	}
	if err := writeFileAtomic(s.path, raw); err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	return nil
}

// emptyDatabase returns a valid document with every collection empty.
func emptyDatabase() *types.Database {
	return &types.Database{
		Cases:     []types.Case{},
		Evidence:  []types.Evidence{},
		Suspects:  []types.Suspect{},
		Witnesses: []types.Witness{},
		Timeline:  []types.TimelineEvent{},
		Documents: []types.Document{},
		Vehicles:  []types.Vehicle{},
		Officers:  []types.Officer{},
		Incidents: []types.Incident{},
	}
}

// newID generates a UUID v7 record ID, falling back to v4 if v7 generation
// fails. IDs only need to be opaque and collision-resistant.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
