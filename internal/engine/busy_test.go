package engine

import (
	"testing"
	"time"
)

var testLoc = time.FixedZone("KST", 9*3600)

func at(t *testing.T, date string, hh, mm int) time.Time {
	t.Helper()
	instant, err := InstantAt(date, hh, mm, testLoc)
	if err != nil {
		t.Fatalf("InstantAt(%s %02d:%02d): %v", date, hh, mm, err)
	}
	return instant
}

func timePtr(v time.Time) *time.Time { return &v }

func TestResolveBusyIntervals(t *testing.T) {
	dayStart := at(t, "2024-03-10", 0, 0)
	dayEnd := dayStart.AddDate(0, 0, 1)

	tests := []struct {
		name   string
		events []RawEvent
		want   []BusyInterval
	}{
		{
			name: "ordered by start",
			events: []RawEvent{
				{Title: "dinner", StartAt: at(t, "2024-03-10", 19, 0), EndAt: timePtr(at(t, "2024-03-10", 20, 0))},
				{Title: "standup", StartAt: at(t, "2024-03-10", 9, 30), EndAt: timePtr(at(t, "2024-03-10", 10, 0))},
			},
			want: []BusyInterval{
				{Start: at(t, "2024-03-10", 9, 30), End: at(t, "2024-03-10", 10, 0), Label: "standup"},
				{Start: at(t, "2024-03-10", 19, 0), End: at(t, "2024-03-10", 20, 0), Label: "dinner"},
			},
		},
		{
			name: "overnight event clipped to day start",
			events: []RawEvent{
				{Title: "night shift", StartAt: at(t, "2024-03-09", 23, 0), EndAt: timePtr(at(t, "2024-03-10", 2, 0))},
			},
			want: []BusyInterval{
				{Start: dayStart, End: at(t, "2024-03-10", 2, 0), Label: "night shift"},
			},
		},
		{
			name: "event past midnight clipped to day end",
			events: []RawEvent{
				{Title: "party", StartAt: at(t, "2024-03-10", 23, 0), EndAt: timePtr(at(t, "2024-03-11", 1, 0))},
			},
			want: []BusyInterval{
				{Start: at(t, "2024-03-10", 23, 0), End: dayEnd, Label: "party"},
			},
		},
		{
			name: "missing end becomes 30 minute placeholder",
			events: []RawEvent{
				{Title: "call", StartAt: at(t, "2024-03-10", 14, 0)},
			},
			want: []BusyInterval{
				{Start: at(t, "2024-03-10", 14, 0), End: at(t, "2024-03-10", 14, 30), Label: "call"},
			},
		},
		{
			name: "events outside the day are dropped",
			events: []RawEvent{
				{Title: "yesterday", StartAt: at(t, "2024-03-09", 10, 0), EndAt: timePtr(at(t, "2024-03-09", 11, 0))},
				{Title: "tomorrow", StartAt: at(t, "2024-03-11", 10, 0), EndAt: timePtr(at(t, "2024-03-11", 11, 0))},
			},
			want: nil,
		},
		{
			name: "inverted interval is dropped",
			events: []RawEvent{
				{Title: "bad", StartAt: at(t, "2024-03-10", 12, 0), EndAt: timePtr(at(t, "2024-03-10", 11, 0))},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveBusyIntervals(tt.events, dayStart, dayEnd)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d intervals, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if !got[i].Start.Equal(tt.want[i].Start) || !got[i].End.Equal(tt.want[i].End) || got[i].Label != tt.want[i].Label {
					t.Errorf("interval[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
