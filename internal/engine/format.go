package engine

import (
	"fmt"
	"regexp"
	"sort"
	"time"
)

// InfeasibleText is the fixed advisory returned when no candidate duration
// fits the available window. Infeasibility is a valid outcome, not an error.
const InfeasibleText = "Your current schedule does not leave enough time for a full night's sleep. " +
	"Consider adjusting commitments, or plan a short 20-30 minute nap instead."

var reClockToken = regexp.MustCompile(`\b\d{1,2}:\d{2}\b`)

// FormatPlan renders the deterministic recommendation text for a plan.
func FormatPlan(plan *SleepPlan, sol int, loc *time.Location) string {
	h := plan.SleepMinutes / 60
	m := plan.SleepMinutes % 60
	total := fmt.Sprintf("%dh", h)
	if m != 0 {
		total = fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf(
		"Recommended sleep: go to bed at %s and wake at %s (%s asleep, including %d minutes to fall asleep).\n"+
			"Dim the lights and put screens away from %d minutes before bedtime.",
		FormatHHMM(plan.SleepStart, loc), FormatHHMM(plan.WakeAt, loc), total, sol, sol)
}

// ClockTokens extracts every HH:MM token from a text, sorted. Used to verify
// that a polished rewrite preserved all time values.
func ClockTokens(s string) []string {
	tokens := reClockToken.FindAllString(s, -1)
	sort.Strings(tokens)
	return tokens
}

// SameClockTokens reports whether two texts contain exactly the same multiset
// of HH:MM tokens. Polished text failing this check is discarded.
func SameClockTokens(a, b string) bool {
	ta, tb := ClockTokens(a), ClockTokens(b)
	if len(ta) != len(tb) {
		return false
	}
	for i := range ta {
		if ta[i] != tb[i] {
			return false
		}
	}
	return true
}
