// Package engine implements the sleep-window recommendation core: time
// normalization, busy-interval resolution, fatigue aggregation, duration
// preference, window search, and result formatting. Everything here is pure
// computation; callers supply the clock, the timezone, and the data.
package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var (
	reTime12h = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([AaPp][Mm])$`)
	reTime24h = regexp.MustCompile(`^(\d{2}):(\d{2})$`)
)

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay parses "HH:MM" (24-hour, zero-padded) or "H:MM am/pm"
// (case-insensitive). 12am maps to hour 0, 12pm stays 12.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if m := reTime12h.FindStringSubmatch(s); m != nil {
		hh, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		if hh < 1 || hh > 12 || mm > 59 {
			return TimeOfDay{}, fmt.Errorf("invalid 12-hour time %q", s)
		}
		switch m[3][0] {
		case 'p', 'P':
			if hh < 12 {
				hh += 12
			}
		default: // am
			if hh == 12 {
				hh = 0
			}
		}
		return TimeOfDay{Hour: hh, Minute: mm}, nil
	}

	if m := reTime24h.FindStringSubmatch(s); m != nil {
		hh, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		if hh > 23 || mm > 59 {
			return TimeOfDay{}, fmt.Errorf("invalid 24-hour time %q", s)
		}
		return TimeOfDay{Hour: hh, Minute: mm}, nil
	}

	return TimeOfDay{}, fmt.Errorf("unrecognized time format %q", s)
}

// InstantAt anchors a wall-clock time on a civil date in the given location.
func InstantAt(dateStr string, hh, mm int, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	return day.Add(time.Duration(hh)*time.Hour + time.Duration(mm)*time.Minute), nil
}

// DayWindow returns the [start, end) bounds of a civil date.
func DayWindow(dateStr string, loc *time.Location) (time.Time, time.Time, error) {
	start, err := InstantAt(dateStr, 0, 0, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 0, 1), nil
}

// FormatHHMM renders an instant as "HH:MM" in the given location, rounded
// down to the minute.
func FormatHHMM(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("15:04")
}

// FormatFull renders an instant as "YYYY-MM-DD HH:MM" in the given location.
func FormatFull(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02 15:04")
}

// FormatDate renders the civil date of an instant in the given location.
func FormatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}
