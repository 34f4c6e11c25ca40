package normalizer

import "fmt"

// columnMapping fixes the projection from an export header onto a canonical
// field name. Slice order is output column order, after log_date.
type columnMapping struct {
	Source string
	Field  string
}

var fieldMappings = []columnMapping{
	{"Weight", "weight_kg_txt"},
	{"Budgeted kcal", "kcal_budgeted_txt"},
	{"Estimated kcal", "kcal_estimated_txt"},
	{"Exercise", "exercise_txt"},
	{"Fasted Cardio", "fasted_cardio_txt"},
	{"Mood/Energy", "mood_txt"},
	{"Notes", "notes"},
}

// Remapper projects source columns onto canonical fields for one input
// table. Columns are decided once from the header row: a mapping whose
// source column is absent is skipped for the whole table, with one
// informational note per skipped field.
type Remapper struct {
	active []columnMapping
	notes  []Diagnostic
}

func NewRemapper(headers []string) *Remapper {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}

	r := &Remapper{}
	for _, m := range fieldMappings {
		if present[m.Source] {
			r.active = append(r.active, m)
			continue
		}
		r.notes = append(r.notes, Diagnostic{
			Level:   LevelNote,
			Message: fmt.Sprintf("column %q (for %q) not found, skipping", m.Source, m.Field),
		})
	}
	return r
}

// Fields returns the canonical columns this table carries, in mapping order.
func (r *Remapper) Fields() []string {
	out := make([]string, 0, len(r.active))
	for _, m := range r.active {
		out = append(out, m.Field)
	}
	return out
}

// Notes returns one diagnostic per skipped canonical field.
func (r *Remapper) Notes() []Diagnostic {
	return r.notes
}

// Apply copies a row's mapped source values into canonical fields. Values
// are carried over verbatim; no numeric coercion happens here.
func (r *Remapper) Apply(row map[string]string) map[string]string {
	out := make(map[string]string, len(r.active))
	for _, m := range r.active {
		out[m.Field] = row[m.Source]
	}
	return out
}
