package engine

import "math"

// FatigueSample is one recorded fatigue rating on the 0-100 scale.
type FatigueSample struct {
	Date  string
	Score int
}

// FatigueSummary is the aggregate over a trailing window. Avg is nil when no
// valid samples exist, which is a normal state for a new user.
type FatigueSummary struct {
	Count int
	Avg   *int
}

// AggregateFatigue computes the arithmetic mean of the valid samples, rounded
// to the nearest integer. Scores outside 0-100 are treated as absent; they
// should have been clamped at ingestion, but stored data is not trusted here.
func AggregateFatigue(samples []FatigueSample) FatigueSummary {
	sum := 0
	count := 0
	for _, s := range samples {
		if s.Score < 0 || s.Score > 100 {
			continue
		}
		sum += s.Score
		count++
	}
	if count == 0 {
		return FatigueSummary{}
	}
	avg := int(math.Round(float64(sum) / float64(count)))
	return FatigueSummary{Count: count, Avg: &avg}
}
