// Package catalog scans a directory tree of analysis projects and derives
// read-only descriptors of their contents. Nothing is cached: every call
// reads the live filesystem, so listings always reflect the directory state
// at render time.
package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Common errors.
var (
	ErrProjectNotFound = errors.New("project not found")
)

// Category pairs a display label with its folder under the catalog root.
type Category struct {
	Label  string
	Folder string
}

// Entry identifies one project directory. Category is the folder name of the
// category the project lives in, empty when the catalog is uncategorized.
type Entry struct {
	Category string
	Name     string
}

// Scanner lists categories and project entries under a catalog root.
type Scanner struct {
	root       string
	categories []Category
	logger     *zap.Logger
}

// NewScanner creates a scanner over root. categories may be empty for a flat
// catalog; order is preserved as display order.
func NewScanner(root string, categories []Category, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{
		root:       root,
		categories: categories,
		logger:     logger,
	}
}

// Root returns the catalog root directory.
func (s *Scanner) Root() string {
	return s.root
}

// Categorized reports whether category mappings are configured.
func (s *Scanner) Categorized() bool {
	return len(s.categories) > 0
}

// Categories returns the configured mappings whose folder exists as a
// directory under root, in configuration order. A missing root yields an
// empty result, never an error.
func (s *Scanner) Categories() []Category {
	var present []Category
	for _, cat := range s.categories {
		info, err := os.Stat(filepath.Join(s.root, cat.Folder))
		if err != nil || !info.IsDir() {
			continue
		}
		present = append(present, cat)
	}
	return present
}

// Label returns the configured display label for a category folder, falling
// back to the folder name itself.
func (s *Scanner) Label(folder string) string {
	for _, cat := range s.categories {
		if cat.Folder == folder {
			return cat.Label
		}
	}
	return folder
}

// Projects returns the immediate subdirectories of the given category folder
// (or of root when folder is empty), sorted case-insensitively by name.
// A missing directory yields an empty result, never an error.
func (s *Scanner) Projects(folder string) []Entry {
	dir := s.root
	if folder != "" {
		dir = filepath.Join(s.root, folder)
	}
	dirents, err := os.ReadDir(dir)
	if err != nil {
		s.logger.Debug("catalog scan skipped", zap.String("dir", dir), zap.Error(err))
		return nil
	}

	var entries []Entry
	for _, de := range dirents {
		if !de.IsDir() {
			continue
		}
		entries = append(entries, Entry{Category: folder, Name: de.Name()})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := strings.ToLower(entries[i].Name), strings.ToLower(entries[j].Name)
		if a == b {
			return entries[i].Name < entries[j].Name
		}
		return a < b
	})
	return entries
}

// All returns every project entry across all present categories (or the
// flat root listing when uncategorized), in category order.
func (s *Scanner) All() []Entry {
	if !s.Categorized() {
		return s.Projects("")
	}
	var all []Entry
	for _, cat := range s.Categories() {
		all = append(all, s.Projects(cat.Folder)...)
	}
	return all
}

// Find re-validates a selection against the live directory listing. The
// underlying directory may have been removed since the selection was made.
func (s *Scanner) Find(folder, name string) (Entry, error) {
	for _, e := range s.Projects(folder) {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry{}, ErrProjectNotFound
}

// Dir returns the directory path of a project entry.
func (s *Scanner) Dir(e Entry) string {
	if e.Category == "" {
		return filepath.Join(s.root, e.Name)
	}
	return filepath.Join(s.root, e.Category, e.Name)
}

// Title converts a directory name into a display title: underscores become
// spaces and each word is capitalized.
func Title(name string) string {
	words := strings.Split(strings.ReplaceAll(name, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
