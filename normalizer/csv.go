package normalizer

import (
	"encoding/csv"
	"io"
)

// ReadTable parses a CSV export into a Table. The first row is the header;
// short rows are padded with empty values.
func ReadTable(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	raw, err := cr.ReadAll()
	if err != nil {
		return Table{}, err
	}
	if len(raw) == 0 {
		return Table{}, nil
	}

	t := Table{Headers: raw[0]}
	for _, cells := range raw[1:] {
		row := make(map[string]string, len(t.Headers))
		for i, h := range t.Headers {
			if i < len(cells) {
				row[h] = cells[i]
			} else {
				row[h] = ""
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// WriteRecords serializes a result as a flat table: one header row with
// log_date first, then one row per record in order. An empty result writes
// nothing, matching the behavior of the export pipeline this replaces.
func WriteRecords(w io.Writer, res *Result) error {
	if len(res.Records) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	header := append([]string{"log_date"}, res.Columns...)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, rec := range res.Records {
		row := make([]string, 0, len(header))
		row = append(row, rec.LogDate.Format("2006-01-02"))
		for _, col := range res.Columns {
			row = append(row, rec.Fields[col])
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
