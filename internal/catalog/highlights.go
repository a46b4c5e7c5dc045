package catalog

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// highlightsFile sits at the catalog root and names up to three category
// folders to feature on the home page.
const highlightsFile = "home_highlights.txt"

// maxHighlights caps how many highlight entries are honored.
const maxHighlights = 3

// Highlights returns the highlighted category folders: the first three
// non-blank, non-comment lines of home_highlights.txt, filtered to folders
// that exist under root. A missing file yields nil.
func (s *Scanner) Highlights() []string {
	f, err := os.Open(filepath.Join(s.root, highlightsFile))
	if err != nil {
		return nil
	}
	defer f.Close()

	var folders []string
	seen := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() && seen < maxHighlights {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		seen++
		if info, err := os.Stat(filepath.Join(s.root, line)); err != nil || !info.IsDir() {
			continue
		}
		folders = append(folders, line)
	}
	return folders
}
