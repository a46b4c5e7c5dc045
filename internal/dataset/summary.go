package dataset

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
)

// MaxHistogramBins caps the number of bins in the dashboard histogram.
const MaxHistogramBins = 30

// ColumnSummary holds descriptive statistics for one numeric column.
type ColumnSummary struct {
	Name  string
	Count int
	Mean  float64
	Std   float64
	Min   float64
	Q25   float64
	Q50   float64
	Q75   float64
	Max   float64

	values []float64
}

// Values returns the column's parsed values, for histogram binning.
func (c ColumnSummary) Values() []float64 {
	return c.values
}

// Describe computes count, mean, sample standard deviation, min, quartiles,
// and max for every numeric column of a CSV file, in header order. A column
// is numeric when it has at least one non-empty cell and every non-empty
// cell parses as a float. An empty result means no numeric columns.
func Describe(path string) ([]ColumnSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	header := records[0]
	rows := records[1:]

	var summaries []ColumnSummary
	for col, name := range header {
		values, ok := numericColumn(rows, col)
		if !ok {
			continue
		}
		summaries = append(summaries, summarize(name, values))
	}
	return summaries, nil
}

func numericColumn(rows [][]string, col int) ([]float64, bool) {
	var values []float64
	for _, row := range rows {
		if col >= len(row) || row[col] == "" {
			continue
		}
		v, err := strconv.ParseFloat(row[col], 64)
		if err != nil {
			return nil, false
		}
		values = append(values, v)
	}
	return values, len(values) > 0
}

func summarize(name string, values []float64) ColumnSummary {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(n)

	std := 0.0
	if n > 1 {
		ss := 0.0
		for _, v := range sorted {
			d := v - mean
			ss += d * d
		}
		std = math.Sqrt(ss / float64(n-1))
	}

	return ColumnSummary{
		Name:   name,
		Count:  n,
		Mean:   mean,
		Std:    std,
		Min:    sorted[0],
		Q25:    quantile(sorted, 0.25),
		Q50:    quantile(sorted, 0.5),
		Q75:    quantile(sorted, 0.75),
		Max:    sorted[n-1],
		values: values,
	}
}

// quantile computes the q-th quantile of sorted values with linear
// interpolation between closest ranks.
func quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 1 {
		return sorted[0]
	}
	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Bin is one histogram bucket over [Low, High).
type Bin struct {
	Low   float64
	High  float64
	Count int
}

// Histogram bins values into at most maxBins equal-width buckets. Constant
// columns collapse to a single bin. The maximum value lands in the last bin.
func Histogram(values []float64, maxBins int) []Bin {
	if len(values) == 0 || maxBins < 1 {
		return nil
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		return []Bin{{Low: lo, High: hi, Count: len(values)}}
	}

	nbins := maxBins
	if len(values) < nbins {
		nbins = len(values)
	}
	width := (hi - lo) / float64(nbins)

	bins := make([]Bin, nbins)
	for i := range bins {
		bins[i].Low = lo + float64(i)*width
		bins[i].High = lo + float64(i+1)*width
	}
	bins[nbins-1].High = hi

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= nbins {
			idx = nbins - 1
		}
		bins[idx].Count++
	}
	return bins
}
