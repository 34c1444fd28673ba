package engine

import "time"

const (
	// BedtimeFloorHour is the earliest acceptable bedtime-of-day.
	BedtimeFloorHour = 22

	// PreEventBufferMinutes is kept free before the next commitment when the
	// wake time floats (Mode B).
	PreEventBufferMinutes = 30

	// DefaultWakeCutoffHour caps Mode B sleep at this hour of the following
	// day when no commitment bounds it.
	DefaultWakeCutoffHour = 9
)

// MinimumBedtime derives the earliest instant sleep may start: the fixed
// 22:00 floor on the target date, pushed past the end of the last busy
// interval of that day, and past the caller's own "no earlier than" time when
// supplied. Mode A relies on this to guarantee its constructed interval
// cannot collide with same-day commitments.
func MinimumBedtime(dateStr string, loc *time.Location, busy []BusyInterval, noEarlierThan *time.Time) (time.Time, error) {
	floor, err := InstantAt(dateStr, BedtimeFloorHour, 0, loc)
	if err != nil {
		return time.Time{}, err
	}

	min := floor
	for _, b := range busy {
		if b.End.After(min) {
			min = b.End
		}
	}
	if noEarlierThan != nil && noEarlierThan.After(min) {
		min = *noEarlierThan
	}
	return min, nil
}

// NextHardLimit derives the Mode B upper bound: the start of the nearest busy
// interval after bedStart minus the pre-event buffer, or 09:00 the following
// day when nothing constrains the morning. The busy set should cover both the
// target date and the next one, since the night spans midnight.
func NextHardLimit(dateStr string, loc *time.Location, bedStart time.Time, busy []BusyInterval) (time.Time, error) {
	var nextStart *time.Time
	for _, b := range busy {
		if b.Start.After(bedStart) && (nextStart == nil || b.Start.Before(*nextStart)) {
			s := b.Start
			nextStart = &s
		}
	}
	if nextStart != nil {
		return nextStart.Add(-PreEventBufferMinutes * time.Minute), nil
	}

	cutoff, err := InstantAt(dateStr, DefaultWakeCutoffHour, 0, loc)
	if err != nil {
		return time.Time{}, err
	}
	cutoff = cutoff.AddDate(0, 0, 1)
	if !cutoff.After(bedStart) {
		cutoff = cutoff.AddDate(0, 0, 1)
	}
	return cutoff, nil
}
