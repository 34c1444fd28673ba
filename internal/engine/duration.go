package engine

const (
	// MinDurationMinutes and MaxDurationMinutes bound the candidate ladder.
	MinDurationMinutes = 210 // 3.5h
	MaxDurationMinutes = 540 // 9h
	durationStep       = 30

	// BaselineDurationMinutes is the preferred sleep length absent any
	// fatigue signal.
	BaselineDurationMinutes = 450 // 7.5h

	// Fatigue thresholds on the 0-100 storage scale. High fatigue biases
	// toward longer sleep, low fatigue toward shorter.
	highFatigueThreshold = 70
	lowFatigueThreshold  = 30
	fatigueShiftMinutes  = 60
)

// durationLadder is the fixed set of allowed sleep lengths in minutes:
// every 30 minutes from 3.5h to 9h.
var durationLadder = buildLadder()

func buildLadder() []int {
	var ladder []int
	for d := MinDurationMinutes; d <= MaxDurationMinutes; d += durationStep {
		ladder = append(ladder, d)
	}
	return ladder
}

// DurationCandidates returns a copy of the candidate ladder.
func DurationCandidates() []int {
	out := make([]int, len(durationLadder))
	copy(out, durationLadder)
	return out
}

// PreferredDurationMinutes maps the average fatigue score to a candidate
// duration. Baseline is 7.5 hours; fatigue >= 70 shifts the target +60
// minutes, <= 30 shifts it -60. The nearest ladder value wins, ties going to
// the larger duration.
func PreferredDurationMinutes(avgFatigue *int) int {
	target := BaselineDurationMinutes
	if avgFatigue != nil {
		switch {
		case *avgFatigue >= highFatigueThreshold:
			target += fatigueShiftMinutes
		case *avgFatigue <= lowFatigueThreshold:
			target -= fatigueShiftMinutes
		}
	}

	best := durationLadder[0]
	bestGap := abs(best - target)
	for _, d := range durationLadder[1:] {
		if gap := abs(d - target); gap <= bestGap {
			best, bestGap = d, gap
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
