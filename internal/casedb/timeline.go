package casedb

import (
	"sort"
	"time"

	"github.com/mesh-intelligence/casefile/pkg/types"
)

func timelineOf(db *types.Database) *[]types.TimelineEvent { return &db.Timeline }

// Timeline returns every timeline event, sorted ascending by event time.
func (s *Store) Timeline() ([]types.TimelineEvent, error) {
	return listRecords(s, timelineOf)
}

// TimelineEvent returns the event with the given ID, or types.ErrNotFound.
func (s *Store) TimelineEvent(id string) (types.TimelineEvent, error) {
	return getRecord[types.TimelineEvent](s, timelineOf, id)
}

// TimelineByCase returns the events referencing the given case, in stored
// (chronological) order.
func (s *Store) TimelineByCase(caseID string) ([]types.TimelineEvent, error) {
	events, err := s.Timeline()
	if err != nil {
		return nil, err
	}
	matched := make([]types.TimelineEvent, 0, len(events))
	for _, e := range events {
		if e.CaseID == caseID {
			matched = append(matched, e)
		}
	}
	return matched, nil
}

// AddTimelineEvent stores a new event and resorts the timeline. Events carry
// no updatedAt until their first update.
func (s *Store) AddTimelineEvent(e types.TimelineEvent) (types.TimelineEvent, error) {
	return addRecord(s, timelineOf, e, false, sortTimeline)
}

// UpdateTimelineEvent merges the patch over the event with the given ID and
// resorts the timeline.
func (s *Store) UpdateTimelineEvent(id string, patch map[string]any) (types.TimelineEvent, error) {
	return updateRecord[types.TimelineEvent](s, timelineOf, id, patch, sortTimeline)
}

// DeleteTimelineEvent removes the event. Deleting an absent ID succeeds.
func (s *Store) DeleteTimelineEvent(id string) error {
	return deleteRecord[types.TimelineEvent](s, timelineOf, id)
}

// eventTimeLayouts are the accepted dateTime layouts, tried in order.
var eventTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseEventTime parses a timeline dateTime value. The second return is
// false when the value is empty or matches none of the accepted layouts.
func parseEventTime(value string) (time.Time, bool) {
	for _, layout := range eventTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// sortTimeline orders the timeline ascending by parsed dateTime. The sort is
// stable: ties keep their relative order, and events with a missing or
// unparseable dateTime sort after every parseable event, stable among
// themselves.
func sortTimeline(db *types.Database) {
	sort.SliceStable(db.Timeline, func(i, j int) bool {
		ti, iok := parseEventTime(db.Timeline[i].DateTime)
		tj, jok := parseEventTime(db.Timeline[j].DateTime)
		switch {
		case iok && jok:
			return ti.Before(tj)
		case iok:
			return true
		default:
			return false
		}
	})
}
