// Package dataset parses uploaded CSV files and builds the textual summary
// embedded into data analysis prompts.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nomi00700/agno-multi-agent/internal/domain/entity"
)

var (
	ErrNoColumns = errors.New("csv has no columns")
	ErrNoRows    = errors.New("csv contains no data rows")
)

// ParseCSV reads delimited tabular text into an in-memory dataset. The first
// record is the header. Short rows are padded so every row has one cell per
// column.
func ParseCSV(r io.Reader, filename string) (*entity.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoColumns
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	columns := make([]string, 0, len(header))
	for i, name := range header {
		name = strings.TrimSpace(stripBOM(name))
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		columns = append(columns, name)
	}
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", len(rows)+2, err)
		}
		row := make([]string, len(columns))
		for i := range columns {
			if i < len(record) {
				row[i] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	return &entity.Dataset{
		Filename: filename,
		Columns:  columns,
		Rows:     rows,
	}, nil
}

// stripBOM drops a UTF-8 byte order mark exported by some spreadsheet tools.
func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\uFEFF")
}
