package normalizer

import (
	"errors"
	"time"
)

// LabelColumn is the header under which the "Day N" markers live.
const LabelColumn = "Day"

// ErrMissingLabelColumn reports an input table without the label column.
// This is a structural failure, distinct from a table where no row matches.
var ErrMissingLabelColumn = errors.New(`required "Day" column not found in input`)

// Diagnostic levels. Notes record skipped columns; warnings record
// successful-but-empty runs.
const (
	LevelNote    = "note"
	LevelWarning = "warning"
)

type Diagnostic struct {
	Level   string
	Message string
}

// Table is an ordered set of rows under named columns, as read from an
// export. All values are untyped text.
type Table struct {
	Headers []string
	Rows    []map[string]string
}

// Record is one canonical daily record. Fields holds only the canonical
// columns whose source column existed in the input.
type Record struct {
	LogDate time.Time
	Fields  map[string]string
}

// Result carries the normalized records plus the diagnostics accumulated
// while producing them. Records keep the original row order.
type Result struct {
	Records     []Record
	Columns     []string
	Diagnostics []Diagnostic
}

// Normalizer turns raw export tables into canonical daily records.
type Normalizer struct {
	epoch time.Time
}

type Option func(*Normalizer)

// WithEpoch overrides the calendar date of "Day 1".
func WithEpoch(epoch time.Time) Option {
	return func(n *Normalizer) { n.epoch = epoch }
}

func New(opts ...Option) *Normalizer {
	n := &Normalizer{epoch: DefaultEpoch}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize filters the table to rows whose label parses as "Day N", derives
// each row's log_date from the epoch and remaps the remaining columns.
//
// A table without the label column fails with ErrMissingLabelColumn. A table
// where no row matches succeeds with zero records and a warning diagnostic.
// Rows that do not match are dropped silently, and duplicate day indices are
// kept as separate records; nothing here deduplicates.
func (n *Normalizer) Normalize(t Table) (*Result, error) {
	hasLabel := false
	for _, h := range t.Headers {
		if h == LabelColumn {
			hasLabel = true
			break
		}
	}
	if !hasLabel {
		return nil, ErrMissingLabelColumn
	}

	rm := NewRemapper(t.Headers)

	res := &Result{}
	for _, row := range t.Rows {
		day, err := ParseDayLabel(row[LabelColumn])
		if err != nil {
			continue
		}
		res.Records = append(res.Records, Record{
			LogDate: DateForDay(n.epoch, day),
			Fields:  rm.Apply(row),
		})
	}

	if len(res.Records) == 0 {
		res.Diagnostics = append(res.Diagnostics, Diagnostic{
			Level:   LevelWarning,
			Message: `no rows matched the "Day N" format`,
		})
		return res, nil
	}

	res.Columns = rm.Fields()
	res.Diagnostics = append(res.Diagnostics, rm.Notes()...)
	return res, nil
}
