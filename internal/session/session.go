// Package session holds per-browser navigation and selection state. State is
// an explicit value handed to a request handler and stored back after the
// handler's mutation batch, so changes only become visible to the next
// request cycle.
package session

// Page identifies a top-level view.
type Page string

// The navigable pages.
const (
	PageHome     Page = "home"
	PageProjects Page = "projects"
	PageUpload   Page = "upload"
	PageAbout    Page = "about"
)

// Valid reports whether p names a known page.
func (p Page) Valid() bool {
	switch p {
	case PageHome, PageProjects, PageUpload, PageAbout:
		return true
	}
	return false
}

// State is one session's selection record. The zero value is a fresh session
// with nothing selected.
type State struct {
	Category string
	Project  string
	Pending  Page // one-shot programmatic navigation request
}

// OpenProject records a project selection and requests navigation to the
// projects page.
func (s *State) OpenProject(category, project string) {
	s.Category = category
	s.Project = project
	s.Pending = PageProjects
}

// ConsumePending returns and clears the pending navigation request. The
// request takes effect for exactly one request cycle.
func (s *State) ConsumePending() Page {
	p := s.Pending
	s.Pending = ""
	return p
}
