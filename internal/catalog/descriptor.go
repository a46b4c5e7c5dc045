package catalog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Well-known filenames inside a project directory.
const (
	previewFile     = "preview.png"
	videoPointer    = "video.txt"
	descriptionFile = "about.txt"
)

// DefaultDescription is shown for projects without an about.txt.
const DefaultDescription = "A brief description of the project."

// Video is a parsed video pointer. Raw holds the literal pointer text. When
// the pointer names a local .mp4 that exists in the project directory, Local
// is true and Path is the playable file; otherwise Raw is treated as an
// external URL.
type Video struct {
	Raw   string
	Local bool
	Path  string
}

// Descriptor is the derived, read-only view of a project directory. It is
// recomputed from disk on every request and never persisted.
type Descriptor struct {
	Preview     string   // path to preview.png, empty when absent
	Datasets    []string // CSV file paths, sorted by filename
	Notebooks   []string // notebook HTML export paths, sorted by filename
	Video       *Video   // nil when no video configured
	Description string
	Files       []string // names of all immediate entries, sorted
}

// Describe builds the descriptor for a project entry. The only error case is
// an unreadable project directory; per-file problems inside the directory
// degrade to absent fields instead.
func (s *Scanner) Describe(e Entry) (Descriptor, error) {
	dir := s.Dir(e)
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return Descriptor{}, fmt.Errorf("read project dir: %w", err)
	}

	d := Descriptor{Description: DefaultDescription}
	for _, de := range dirents {
		name := de.Name()
		d.Files = append(d.Files, name)
		if de.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(name)) {
		case ".csv":
			d.Datasets = append(d.Datasets, filepath.Join(dir, name))
		case ".html":
			d.Notebooks = append(d.Notebooks, filepath.Join(dir, name))
		}
		if name == previewFile {
			d.Preview = filepath.Join(dir, name)
		}
	}
	sort.Strings(d.Files)
	sort.Strings(d.Datasets)
	sort.Strings(d.Notebooks)

	d.Video = parseVideoPointer(dir)
	if desc := readDescription(filepath.Join(dir, descriptionFile)); desc != "" {
		d.Description = desc
	}
	return d, nil
}

// parseVideoPointer reads video.txt and interprets its first non-blank line.
// Empty, whitespace-only, or unreadable pointer files mean no video.
func parseVideoPointer(dir string) *Video {
	raw := firstLine(filepath.Join(dir, videoPointer))
	if raw == "" {
		return nil
	}
	v := &Video{Raw: raw}
	if strings.HasSuffix(strings.ToLower(raw), ".mp4") {
		local := filepath.Join(dir, raw)
		if info, err := os.Stat(local); err == nil && !info.IsDir() {
			v.Local = true
			v.Path = local
		}
	}
	return v
}

// firstLine returns the first non-blank line of a text file, trimmed.
// Missing or unreadable files yield an empty string.
func firstLine(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line
		}
	}
	return ""
}

// readDescription returns the first paragraph of a description file, or
// empty when the file is missing or blank.
func readDescription(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return ""
	}
	if idx := strings.Index(text, "\n\n"); idx >= 0 {
		text = strings.TrimSpace(text[:idx])
	}
	return text
}
