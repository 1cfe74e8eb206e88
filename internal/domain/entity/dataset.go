package entity

// Dataset is an uploaded table held in memory for a single request.
// Rows are stored as raw strings; type inference happens at summary time.
type Dataset struct {
	Filename string
	Columns  []string
	Rows     [][]string
}

func (d *Dataset) RowCount() int {
	return len(d.Rows)
}

func (d *Dataset) ColumnCount() int {
	return len(d.Columns)
}

// Column returns all values of the named column and whether it exists.
func (d *Dataset) Column(name string) ([]string, bool) {
	idx := -1
	for i, c := range d.Columns {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}
	values := make([]string, 0, len(d.Rows))
	for _, row := range d.Rows {
		if idx < len(row) {
			values = append(values, row[idx])
		} else {
			values = append(values, "")
		}
	}
	return values, true
}
