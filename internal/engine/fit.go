package engine

import "time"

// SleepPlan is a concrete sleep interval. The onset latency is inside the
// interval: lying down begins at SleepStart, actual sleep starts solMinutes
// later, so WakeAt - SleepStart == SleepMinutes + sol.
type SleepPlan struct {
	SleepStart   time.Time
	WakeAt       time.Time
	SleepMinutes int
}

// FitByWake finds the best sleep interval ending exactly at wakeAt (Mode A).
// The caller guarantees earliestBedtime is already past all fixed commitments
// (see MinimumBedtime); busy is still checked and any overlap yields nil
// rather than a shifted plan — the wake anchor is hard.
//
// Candidates are scored 100 - |d-preferred|/5 + d/60: closeness to the
// preferred duration dominates, with a weak bonus for longer sleep as a
// tie-break. Returns nil when no candidate fits the available window.
func FitByWake(earliestBedtime, wakeAt time.Time, sol, preferredMinutes int, busy []BusyInterval) *SleepPlan {
	available := minutesBetween(earliestBedtime, wakeAt) - sol
	chosen, ok := bestCandidate(available, preferredMinutes, 60)
	if !ok {
		return nil
	}

	sleepStart := wakeAt.Add(-time.Duration(chosen+sol) * time.Minute)
	for _, b := range busy {
		if b.overlaps(sleepStart, wakeAt) {
			return nil
		}
	}
	return &SleepPlan{SleepStart: sleepStart, WakeAt: wakeAt, SleepMinutes: chosen}
}

// FitByBedStart finds the best sleep interval starting exactly at bedStart
// (Mode B), bounded above by nextHardLimit. The length bonus divisor is 90
// rather than 60: with a floating wake time, over-optimizing length matters
// less. Returns nil when no candidate fits.
func FitByBedStart(bedStart, nextHardLimit time.Time, sol, preferredMinutes int) *SleepPlan {
	available := minutesBetween(bedStart, nextHardLimit) - sol
	chosen, ok := bestCandidate(available, preferredMinutes, 90)
	if !ok {
		return nil
	}

	wakeAt := bedStart.Add(time.Duration(chosen+sol) * time.Minute)
	return &SleepPlan{SleepStart: bedStart, WakeAt: wakeAt, SleepMinutes: chosen}
}

// bestCandidate picks the highest-scoring ladder duration not exceeding
// available. The ladder is iterated in order, so on equal scores the first
// (shorter) candidate is kept; the d/divisor term already rewards length.
func bestCandidate(available, preferred, lengthDivisor int) (int, bool) {
	if available <= 0 {
		return 0, false
	}
	best := 0
	bestScore := 0.0
	found := false
	for _, d := range durationLadder {
		if d > available {
			continue
		}
		score := 100 - float64(abs(d-preferred))/5 + float64(d)/float64(lengthDivisor)
		if !found || score > bestScore {
			best, bestScore, found = d, score, true
		}
	}
	return best, found
}

func minutesBetween(from, to time.Time) int {
	return int(to.Sub(from) / time.Minute)
}
