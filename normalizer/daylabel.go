// Package normalizer converts raw health-tracking exports ("Day N" labelled
// spreadsheet rows) into canonical dated records ready for flat
// serialization or downstream import.
package normalizer

import (
	"errors"
	"regexp"
	"strconv"
	"time"
)

// DefaultEpoch is the calendar date of "Day 1".
var DefaultEpoch = time.Date(2025, time.April, 8, 0, 0, 0, 0, time.UTC)

// ErrNoMatch reports a label that does not follow the "Day N" convention.
var ErrNoMatch = errors.New(`label does not match "Day N"`)

var dayLabelRe = regexp.MustCompile(`(?i)Day\s+(\d+)`)

// ParseDayLabel extracts the day index from a free-text label such as
// "Day 12". Matching is case-insensitive and the marker may appear anywhere
// in the label.
func ParseDayLabel(label string) (int, error) {
	m := dayLabelRe.FindStringSubmatch(label)
	if m == nil {
		return 0, ErrNoMatch
	}
	return strconv.Atoi(m[1])
}

// DateForDay maps a day index onto a calendar date, day 1 being the epoch
// itself. An index at or below zero yields a date before the epoch; whether
// to filter those out is up to the caller.
func DateForDay(epoch time.Time, day int) time.Time {
	return epoch.AddDate(0, 0, day-1)
}
