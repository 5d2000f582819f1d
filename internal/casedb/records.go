// Generic load-mutate-save operations shared by every collection accessor.
// Each collection exposes thin typed wrappers over these; collection-specific
// behavior (timeline ordering, case cascade) hooks in through the post
// callback or a hand-written operation.
package casedb

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mesh-intelligence/casefile/pkg/types"
)

// isoLayout renders timestamps the way the documents have always carried
// them: UTC with millisecond precision and a Z suffix.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

func nowISO() string {
	return time.Now().UTC().Format(isoLayout)
}

// record constrains a collection entry pointer to expose the embedded
// types.Record core.
type record[T any] interface {
	*T
	Meta() *types.Record
}

// listRecords returns the collection in stored order, never nil. A document
// written before a collection existed unmarshals it as nil; callers still
// get an empty slice.
func listRecords[T any](s *Store, sel func(*types.Database) *[]T) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load()
	if err != nil {
		return nil, err
	}
	recs := *sel(db)
	if recs == nil {
		recs = []T{}
	}
	return recs, nil
}

// getRecord scans the collection for a matching ID.
// Returns types.ErrNotFound when no record matches.
func getRecord[T any, P record[T]](s *Store, sel func(*types.Database) *[]T, id string) (T, error) {
	var zero T
	if id == "" {
		return zero, types.ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load()
	if err != nil {
		return zero, err
	}
	recs := *sel(db)
	for i := range recs {
		if P(&recs[i]).Meta().ID == id {
			return recs[i], nil
		}
	}
	return zero, types.ErrNotFound
}

// addRecord stamps a fresh ID and creation timestamp on rec, appends it to
// the collection, runs post, and saves. Caller-supplied ID and timestamps
// are always overwritten. When stampUpdated is false the record starts
// without updatedAt (timeline events gain it on first update only).
func addRecord[T any, P record[T]](s *Store, sel func(*types.Database) *[]T, rec T, stampUpdated bool, post func(*types.Database)) (T, error) {
	var zero T

	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load()
	if err != nil {
		return zero, err
	}

	now := nowISO()
	meta := P(&rec).Meta()
	meta.ID = newID()
	meta.CreatedAt = now
	if stampUpdated {
		meta.UpdatedAt = now
	} else {
		meta.UpdatedAt = ""
	}

	slice := sel(db)
	*slice = append(*slice, rec)
	if post != nil {
		post(db)
	}
	if err := s.save(db); err != nil {
		return zero, err
	}
	return rec, nil
}

// updateRecord shallow-merges the patch field bag over the record with the
// given ID, keeping id and createdAt immutable and refreshing updatedAt.
// Returns types.ErrNotFound when no record matches.
func updateRecord[T any, P record[T]](s *Store, sel func(*types.Database) *[]T, id string, patch map[string]any, post func(*types.Database)) (T, error) {
	var zero T
	if id == "" {
		return zero, types.ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load()
	if err != nil {
		return zero, err
	}

	slice := sel(db)
	for i := range *slice {
		if P(&(*slice)[i]).Meta().ID != id {
			continue
		}

		merged, err := mergePatch((*slice)[i], patch)
		if err != nil {
			return zero, fmt.Errorf("merging patch: %w", err)
		}
		meta := P(&merged).Meta()
		meta.ID = id
		meta.CreatedAt = P(&(*slice)[i]).Meta().CreatedAt
		meta.UpdatedAt = nowISO()

		(*slice)[i] = merged
		if post != nil {
			post(db)
		}
		if err := s.save(db); err != nil {
			return zero, err
		}
		return merged, nil
	}
	return zero, types.ErrNotFound
}

// deleteRecord removes any record with the given ID and saves. Deleting an
// absent ID is not an error; the document is rewritten either way.
func deleteRecord[T any, P record[T]](s *Store, sel func(*types.Database) *[]T, id string) error {
	if id == "" {
		return types.ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	db, err := s.load()
	if err != nil {
		return err
	}

	slice := sel(db)
	*slice = dropByID[T, P](*slice, id)
	return s.save(db)
}

// dropByID returns recs without any record whose ID matches.
func dropByID[T any, P record[T]](recs []T, id string) []T {
	kept := make([]T, 0, len(recs))
	for i := range recs {
		if P(&recs[i]).Meta().ID != id {
			kept = append(kept, recs[i])
		}
	}
	return kept
}

// mergePatch overlays a field bag onto a record through its JSON form. The
// id and createdAt keys are never applied; patch keys outside the
// collection's schema are dropped. The caller restamps the record core
// afterwards.
func mergePatch[T any](rec T, patch map[string]any) (T, error) {
	var zero T

	raw, err := json.Marshal(rec)
	if err != nil {
		return zero, err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return zero, err
	}
	for k, v := range patch {
		if k == "id" || k == "createdAt" {
			continue
		}
		fields[k] = v
	}
	out, err := json.Marshal(fields)
	if err != nil {
		return zero, err
	}
	var merged T
	if err := json.Unmarshal(out, &merged); err != nil {
		return zero, err
	}
	return merged, nil
}
