// Package dataset reads CSV files for preview, download, and summary views.
// Every function takes one file and fails for that file alone; callers render
// per-file errors inline so one bad CSV never takes down a page.
package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
)

// PreviewRows bounds how many data rows the dataset tab shows per file.
const PreviewRows = 100

// Table holds a bounded CSV preview.
type Table struct {
	Header    []string
	Rows      [][]string
	Truncated bool // true when the file has more rows than the preview shows
}

// Preview parses a CSV file and returns its header plus the first n data
// rows. Ragged rows are tolerated.
func Preview(path string, n int) (*Table, error) {
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
	if len(records) == 0 {
		return &Table{}, nil
	}

	t := &Table{Header: records[0]}
	rows := records[1:]
	if len(rows) > n {
		t.Truncated = true
		rows = rows[:n]
	}
	t.Rows = rows
	return t, nil
}

// Reencode fully parses a CSV file and re-serializes header plus rows. The
// result is what the download endpoint streams: a byte-exact re-encoding of
// the parsed content.
func Reencode(path string) ([]byte, error) {
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

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("encode dataset: %w", err)
	}
	return buf.Bytes(), nil
}
