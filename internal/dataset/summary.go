package dataset

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/nomi00700/agno-multi-agent/internal/domain/entity"
)

const sampleRows = 10

// Summarize builds the dataset context embedded into a data analysis prompt:
// shape, columns, inferred types, missing values, numeric statistics, sample
// rows, and a correlation matrix when at least two numeric columns exist.
func Summarize(ds *entity.Dataset) string {
	var b strings.Builder

	b.WriteString("## Dataset Overview\n")
	fmt.Fprintf(&b, "Dataset shape: %d rows, %d columns\n", ds.RowCount(), ds.ColumnCount())
	fmt.Fprintf(&b, "Columns: %s\n", strings.Join(ds.Columns, ", "))

	types := inferTypes(ds)
	typeParts := make([]string, 0, len(ds.Columns))
	missingParts := make([]string, 0, len(ds.Columns))
	for i, col := range ds.Columns {
		typeParts = append(typeParts, fmt.Sprintf("%s: %s", col, types[i]))
		missingParts = append(missingParts, fmt.Sprintf("%s: %d", col, missingCount(ds, i)))
	}
	fmt.Fprintf(&b, "Column types: %s\n", strings.Join(typeParts, ", "))
	fmt.Fprintf(&b, "Missing values: %s\n", strings.Join(missingParts, ", "))

	numeric := numericColumns(ds, types)
	if len(numeric) > 0 {
		b.WriteString("\n## Statistical Summary\n")
		writeDescribeTable(&b, ds, numeric)
	}

	b.WriteString("\n## Sample Data (first rows)\n")
	writeSampleTable(&b, ds)

	b.WriteString("\n## Correlation Matrix\n")
	if len(numeric) > 1 {
		writeCorrelationTable(&b, ds, numeric)
	} else {
		b.WriteString("Not enough numerical columns for correlation analysis.\n")
	}

	return b.String()
}

// inferTypes labels each column "numeric" when every non-missing value
// parses as a float, otherwise "text".
func inferTypes(ds *entity.Dataset) []string {
	types := make([]string, ds.ColumnCount())
	for i := range ds.Columns {
		numeric := false
		for _, row := range ds.Rows {
			v := cell(row, i)
			if v == "" {
				continue
			}
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				numeric = false
				break
			}
			numeric = true
		}
		if numeric {
			types[i] = "numeric"
		} else {
			types[i] = "text"
		}
	}
	return types
}

func numericColumns(ds *entity.Dataset, types []string) []int {
	var idx []int
	for i, t := range types {
		if t == "numeric" {
			idx = append(idx, i)
		}
	}
	return idx
}

func missingCount(ds *entity.Dataset, col int) int {
	n := 0
	for _, row := range ds.Rows {
		if cell(row, col) == "" {
			n++
		}
	}
	return n
}

// columnStats holds the describe() numbers for one numeric column.
type columnStats struct {
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Max   float64
}

func describe(ds *entity.Dataset, col int) columnStats {
	values := numericValues(ds, col)
	stats := columnStats{Count: len(values)}
	if len(values) == 0 {
		return stats
	}

	sum := 0.0
	stats.Min = values[0]
	stats.Max = values[0]
	for _, v := range values {
		sum += v
		stats.Min = math.Min(stats.Min, v)
		stats.Max = math.Max(stats.Max, v)
	}
	stats.Mean = sum / float64(len(values))

	if len(values) > 1 {
		ss := 0.0
		for _, v := range values {
			d := v - stats.Mean
			ss += d * d
		}
		// Sample standard deviation, matching pandas describe().
		stats.Std = math.Sqrt(ss / float64(len(values)-1))
	}
	return stats
}

func numericValues(ds *entity.Dataset, col int) []float64 {
	var values []float64
	for _, row := range ds.Rows {
		v := cell(row, col)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			continue
		}
		values = append(values, f)
	}
	return values
}

func writeDescribeTable(b *strings.Builder, ds *entity.Dataset, numeric []int) {
	b.WriteString("| column | count | mean | std | min | max |\n")
	b.WriteString("|---|---|---|---|---|---|\n")
	for _, i := range numeric {
		s := describe(ds, i)
		fmt.Fprintf(b, "| %s | %d | %s | %s | %s | %s |\n",
			ds.Columns[i], s.Count,
			formatFloat(s.Mean), formatFloat(s.Std),
			formatFloat(s.Min), formatFloat(s.Max))
	}
}

func writeSampleTable(b *strings.Builder, ds *entity.Dataset) {
	fmt.Fprintf(b, "| %s |\n", strings.Join(ds.Columns, " | "))
	b.WriteString("|" + strings.Repeat("---|", len(ds.Columns)) + "\n")
	limit := len(ds.Rows)
	if limit > sampleRows {
		limit = sampleRows
	}
	for _, row := range ds.Rows[:limit] {
		cells := make([]string, len(ds.Columns))
		for i := range ds.Columns {
			cells[i] = cell(row, i)
		}
		fmt.Fprintf(b, "| %s |\n", strings.Join(cells, " | "))
	}
}

// writeCorrelationTable emits pairwise Pearson coefficients over rows where
// both values are present.
func writeCorrelationTable(b *strings.Builder, ds *entity.Dataset, numeric []int) {
	sort.Ints(numeric)
	names := make([]string, len(numeric))
	for i, c := range numeric {
		names[i] = ds.Columns[c]
	}

	fmt.Fprintf(b, "| | %s |\n", strings.Join(names, " | "))
	b.WriteString("|---|" + strings.Repeat("---|", len(names)) + "\n")
	for i, ci := range numeric {
		row := make([]string, len(numeric))
		for j, cj := range numeric {
			row[j] = formatFloat(pearson(ds, ci, cj))
		}
		fmt.Fprintf(b, "| %s | %s |\n", names[i], strings.Join(row, " | "))
	}
}

func pearson(ds *entity.Dataset, a, b int) float64 {
	var xs, ys []float64
	for _, row := range ds.Rows {
		xv, errX := strconv.ParseFloat(cell(row, a), 64)
		yv, errY := strconv.ParseFloat(cell(row, b), 64)
		if errX != nil || errY != nil {
			continue
		}
		xs = append(xs, xv)
		ys = append(ys, yv)
	}
	n := float64(len(xs))
	if n < 2 {
		return math.NaN()
	}

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return math.NaN()
	}
	return cov / math.Sqrt(varX*varY)
}

func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return "n/a"
	}
	return strconv.FormatFloat(f, 'f', 3, 64)
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
