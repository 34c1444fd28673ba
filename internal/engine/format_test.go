package engine

import (
	"strings"
	"testing"
)

func TestFormatPlan(t *testing.T) {
	plan := &SleepPlan{
		SleepStart:   at(t, "2024-03-10", 23, 10),
		WakeAt:       at(t, "2024-03-11", 7, 0),
		SleepMinutes: 450,
	}

	text := FormatPlan(plan, 20, testLoc)
	for _, want := range []string{"23:10", "07:00", "7h 30m", "20 minutes"} {
		if !strings.Contains(text, want) {
			t.Errorf("FormatPlan() missing %q in %q", want, text)
		}
	}

	// Whole hours render without a minutes part.
	plan.SleepMinutes = 480
	if text := FormatPlan(plan, 20, testLoc); !strings.Contains(text, "8h asleep") {
		t.Errorf("FormatPlan() = %q, want whole-hour rendering", text)
	}
}

func TestSameClockTokens(t *testing.T) {
	orig := "Recommended sleep: go to bed at 23:10 and wake at 07:00."

	tests := []struct {
		name     string
		polished string
		want     bool
	}{
		{name: "reworded but times intact", polished: "Head to bed at 23:10 tonight; your alarm rings at 07:00.", want: true},
		{name: "reordered times intact", polished: "Wake at 07:00 after a 23:10 bedtime.", want: true},
		{name: "altered time", polished: "Go to bed at 23:15 and wake at 07:00.", want: false},
		{name: "dropped time", polished: "Go to bed at 23:10 and sleep well.", want: false},
		{name: "invented time", polished: "Bed at 23:10, wake at 07:00, nap at 14:00.", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameClockTokens(orig, tt.polished); got != tt.want {
				t.Errorf("SameClockTokens(%q) = %v, want %v", tt.polished, got, tt.want)
			}
		})
	}
}
