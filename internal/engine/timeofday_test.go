package engine

import (
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{name: "24h morning", input: "07:00", want: TimeOfDay{7, 0}},
		{name: "24h evening", input: "23:45", want: TimeOfDay{23, 45}},
		{name: "24h midnight", input: "00:00", want: TimeOfDay{0, 0}},
		{name: "12h pm", input: "11:30 pm", want: TimeOfDay{23, 30}},
		{name: "12h am", input: "7:05 AM", want: TimeOfDay{7, 5}},
		{name: "12am is midnight", input: "12:00 am", want: TimeOfDay{0, 0}},
		{name: "12pm stays noon", input: "12:00 pm", want: TimeOfDay{12, 0}},
		{name: "no space before meridiem", input: "9:15pm", want: TimeOfDay{21, 15}},
		{name: "24h requires zero padding", input: "7:00", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "12h hour zero", input: "0:30 am", wantErr: true},
		{name: "garbage", input: "around eleven", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTimeOfDay(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseTimeOfDay(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestInstantAt(t *testing.T) {
	loc := time.FixedZone("KST", 9*3600)

	got, err := InstantAt("2024-03-10", 23, 10, loc)
	if err != nil {
		t.Fatalf("InstantAt() error = %v", err)
	}
	want := time.Date(2024, 3, 10, 23, 10, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("InstantAt() = %v, want %v", got, want)
	}

	if _, err := InstantAt("10-03-2024", 0, 0, loc); err == nil {
		t.Error("InstantAt() accepted a malformed date")
	}
}

func TestFormatters(t *testing.T) {
	loc := time.FixedZone("KST", 9*3600)
	instant := time.Date(2024, 3, 10, 23, 10, 42, 0, loc) // seconds must round down

	if got := FormatHHMM(instant, loc); got != "23:10" {
		t.Errorf("FormatHHMM() = %q, want %q", got, "23:10")
	}
	if got := FormatFull(instant, loc); got != "2024-03-10 23:10" {
		t.Errorf("FormatFull() = %q, want %q", got, "2024-03-10 23:10")
	}
	if got := FormatDate(instant, loc); got != "2024-03-10" {
		t.Errorf("FormatDate() = %q, want %q", got, "2024-03-10")
	}

	// An instant formats in the display timezone regardless of its own zone.
	if got := FormatHHMM(instant.UTC(), loc); got != "23:10" {
		t.Errorf("FormatHHMM(UTC instant) = %q, want %q", got, "23:10")
	}
}
