package engine

import (
	"sort"
	"time"
)

// DefaultEventWidth substitutes for a missing event end time.
const DefaultEventWidth = 30 * time.Minute

// BusyInterval is one fixed commitment excluding sleep during its span.
// Invariant: Start < End.
type BusyInterval struct {
	Start time.Time
	End   time.Time
	Label string
}

// RawEvent is a calendar event as stored: the end may be unknown.
type RawEvent struct {
	Title   string
	StartAt time.Time
	EndAt   *time.Time
}

// ResolveBusyIntervals clips raw events to the [dayStart, dayEnd) window and
// returns the overlapping portions ordered by start ascending. Events without
// an end time are treated as DefaultEventWidth wide. Events fully outside the
// window are dropped. Distinct intervals may touch or overlap; the fit engine
// treats every interval as exclusionary regardless of source.
func ResolveBusyIntervals(events []RawEvent, dayStart, dayEnd time.Time) []BusyInterval {
	var out []BusyInterval
	for _, ev := range events {
		start := ev.StartAt
		end := start.Add(DefaultEventWidth)
		if ev.EndAt != nil {
			end = *ev.EndAt
		}
		if !end.After(start) {
			continue
		}
		if !end.After(dayStart) || !start.Before(dayEnd) {
			continue
		}
		if start.Before(dayStart) {
			start = dayStart
		}
		if end.After(dayEnd) {
			end = dayEnd
		}
		out = append(out, BusyInterval{Start: start, End: end, Label: ev.Title})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

// overlaps reports whether [start, end) intersects the interval.
func (b BusyInterval) overlaps(start, end time.Time) bool {
	return start.Before(b.End) && b.Start.Before(end)
}
