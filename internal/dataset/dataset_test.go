package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPreview(t *testing.T) {
	t.Run("header and rows", func(t *testing.T) {
		path := writeCSV(t, "region,revenue\nnorth,100\nsouth,200\n")

		table, err := Preview(path, PreviewRows)
		require.NoError(t, err)
		assert.Equal(t, []string{"region", "revenue"}, table.Header)
		assert.Equal(t, [][]string{{"north", "100"}, {"south", "200"}}, table.Rows)
		assert.False(t, table.Truncated)
	})

	t.Run("bounded and marked truncated", func(t *testing.T) {
		path := writeCSV(t, "v\n1\n2\n3\n4\n5\n")

		table, err := Preview(path, 3)
		require.NoError(t, err)
		assert.Len(t, table.Rows, 3)
		assert.True(t, table.Truncated)
	})

	t.Run("ragged rows tolerated", func(t *testing.T) {
		path := writeCSV(t, "a,b\n1\n2,3,4\n")

		table, err := Preview(path, PreviewRows)
		require.NoError(t, err)
		assert.Len(t, table.Rows, 2)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeCSV(t, "")

		table, err := Preview(path, PreviewRows)
		require.NoError(t, err)
		assert.Empty(t, table.Header)
		assert.Empty(t, table.Rows)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Preview(filepath.Join(t.TempDir(), "nope.csv"), PreviewRows)
		assert.Error(t, err)
	})

	t.Run("malformed quoting", func(t *testing.T) {
		path := writeCSV(t, "a,b\n\"unterminated,1\n")
		_, err := Preview(path, PreviewRows)
		assert.Error(t, err)
	})
}

func TestReencode(t *testing.T) {
	in := "region,revenue\nnorth,100\nsouth,200\n"
	path := writeCSV(t, in)

	out, err := Reencode(path)
	require.NoError(t, err)
	assert.Equal(t, in, string(out), "re-serialization of parsed header+rows")
}

func TestDescribe(t *testing.T) {
	t.Run("numeric columns only", func(t *testing.T) {
		path := writeCSV(t, "region,revenue,units\nnorth,100,1\nsouth,200,2\neast,300,3\nwest,400,4\n")

		summaries, err := Describe(path)
		require.NoError(t, err)
		require.Len(t, summaries, 2)

		rev := summaries[0]
		assert.Equal(t, "revenue", rev.Name)
		assert.Equal(t, 4, rev.Count)
		assert.InDelta(t, 250.0, rev.Mean, 1e-9)
		assert.InDelta(t, 129.09944487358, rev.Std, 1e-9)
		assert.InDelta(t, 100.0, rev.Min, 1e-9)
		assert.InDelta(t, 175.0, rev.Q25, 1e-9)
		assert.InDelta(t, 250.0, rev.Q50, 1e-9)
		assert.InDelta(t, 325.0, rev.Q75, 1e-9)
		assert.InDelta(t, 400.0, rev.Max, 1e-9)

		assert.Equal(t, "units", summaries[1].Name)
	})

	t.Run("no numeric columns", func(t *testing.T) {
		path := writeCSV(t, "region,manager\nnorth,ada\nsouth,bo\n")

		summaries, err := Describe(path)
		require.NoError(t, err)
		assert.Empty(t, summaries)
	})

	t.Run("empty cells skipped", func(t *testing.T) {
		path := writeCSV(t, "v\n1\n\n3\n")

		summaries, err := Describe(path)
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, 2, summaries[0].Count)
		assert.InDelta(t, 2.0, summaries[0].Mean, 1e-9)
	})

	t.Run("header only", func(t *testing.T) {
		path := writeCSV(t, "a,b\n")

		summaries, err := Describe(path)
		require.NoError(t, err)
		assert.Empty(t, summaries)
	})

	t.Run("single value column has zero std", func(t *testing.T) {
		path := writeCSV(t, "v\n42\n")

		summaries, err := Describe(path)
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, 0.0, summaries[0].Std)
		assert.Equal(t, 42.0, summaries[0].Q50)
	})
}

func TestHistogram(t *testing.T) {
	t.Run("bins cover range", func(t *testing.T) {
		values := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

		bins := Histogram(values, 5)
		require.Len(t, bins, 5)
		assert.Equal(t, 0.0, bins[0].Low)
		assert.Equal(t, 9.0, bins[4].High)

		total := 0
		for _, b := range bins {
			total += b.Count
		}
		assert.Equal(t, len(values), total)
	})

	t.Run("max value lands in last bin", func(t *testing.T) {
		bins := Histogram([]float64{0, 10}, 2)
		require.Len(t, bins, 2)
		assert.Equal(t, 1, bins[1].Count)
	})

	t.Run("constant column collapses to one bin", func(t *testing.T) {
		bins := Histogram([]float64{7, 7, 7}, MaxHistogramBins)
		require.Len(t, bins, 1)
		assert.Equal(t, 3, bins[0].Count)
	})

	t.Run("bin count bounded by value count", func(t *testing.T) {
		bins := Histogram([]float64{1, 2}, MaxHistogramBins)
		assert.Len(t, bins, 2)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, Histogram(nil, MaxHistogramBins))
	})
}
