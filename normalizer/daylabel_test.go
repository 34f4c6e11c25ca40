package normalizer

import (
	"testing"
	"time"
)

func TestParseDayLabel(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		want    int
		wantErr bool
	}{
		{name: "simple", label: "Day 1", want: 1},
		{name: "multi digit", label: "Day 123", want: 123},
		{name: "lowercase", label: "day 5", want: 5},
		{name: "extra whitespace", label: "DAY   12", want: 12},
		{name: "marker inside text", label: "log for Day 7 (rest)", want: 7},
		{name: "zero index", label: "Day 0", want: 0},
		{name: "no space", label: "Day3", wantErr: true},
		{name: "wrong word", label: "Week 2", wantErr: true},
		{name: "empty", label: "", wantErr: true},
		{name: "no digits", label: "Day ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDayLabel(tt.label)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDayLabel(%q) = %d, want error", tt.label, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDayLabel(%q) unexpected error: %v", tt.label, err)
			}
			if got != tt.want {
				t.Errorf("ParseDayLabel(%q) = %d, want %d", tt.label, got, tt.want)
			}
		})
	}
}

func TestDateForDay(t *testing.T) {
	epoch := time.Date(2025, time.April, 8, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		day  int
		want time.Time
	}{
		{1, epoch},
		{3, time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)},
		{30, time.Date(2025, time.May, 7, 0, 0, 0, 0, time.UTC)},
		// Indices below 1 land before the epoch and are not rejected here.
		{0, time.Date(2025, time.April, 7, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		if got := DateForDay(epoch, tt.day); !got.Equal(tt.want) {
			t.Errorf("DateForDay(epoch, %d) = %v, want %v", tt.day, got, tt.want)
		}
	}
}
