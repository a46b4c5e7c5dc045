package web

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/fernworks/foliod/internal/catalog"
	"github.com/fernworks/foliod/internal/dataset"
	"github.com/fernworks/foliod/internal/session"
)

// Detail tab identifiers, in display order.
const (
	tabVideo     = "video"
	tabDataset   = "dataset"
	tabNotebook  = "notebook"
	tabDashboard = "dashboard"
	tabFiles     = "files"
)

var tabOrder = []struct {
	ID    string
	Label string
}{
	{tabVideo, "Video"},
	{tabDataset, "Dataset"},
	{tabNotebook, "Notebook"},
	{tabDashboard, "Dashboard"},
	{tabFiles, "Files"},
}

func validTab(tab string) bool {
	for _, t := range tabOrder {
		if t.ID == tab {
			return true
		}
	}
	return false
}

type card struct {
	Category    string
	Name        string
	Title       string
	Description string
	PreviewURL  string
}

type homeGroup struct {
	Label     string
	Highlight bool
	Cards     []card
}

type homeView struct {
	Active string
	Groups []homeGroup
	Empty  bool
}

type categoryOption struct {
	Label    string
	Folder   string
	Selected bool
}

type projectOption struct {
	Name     string
	Title    string
	Selected bool
}

type tabOption struct {
	ID       string
	Label    string
	URL      string
	Selected bool
}

type videoSection struct {
	Configured bool
	Local      bool
	FileURL    string // local playback source
	LinkURL    string // external link, literal pointer text
}

type datasetSection struct {
	Name        string
	Table       *dataset.Table
	Err         string
	DownloadURL string
}

type notebookSection struct {
	Name string
	URL  string
}

type histogramBar struct {
	Label string
	Count int
	Pct   int
}

type dashboardSection struct {
	Source     string
	Columns    []dataset.ColumnSummary
	HistColumn string
	Bars       []histogramBar
	Err        string
	NoNumeric  bool
	NoData     bool
}

type projectDetail struct {
	Name        string
	Title       string
	Description string
	PreviewURL  string
	Tab         string
	Tabs        []tabOption
	Video       videoSection
	Datasets    []datasetSection
	Notebooks   []notebookSection
	Dashboard   dashboardSection
	Files       []string
}

type projectsView struct {
	Active      string
	Categorized bool
	Categories  []categoryOption
	Projects    []projectOption
	Detail      *projectDetail
	NotFound    string // project name that failed re-validation
	Empty       string // empty-state message, set when nothing to show
}

type uploadView struct {
	Active string
	Saved  string
	Error  string
}

type aboutView struct {
	Active string
}

// fileURL builds the serving URL for a file inside a project directory.
func fileURL(e catalog.Entry, name string) string {
	var segs []string
	if e.Category != "" {
		segs = append(segs, e.Category)
	}
	segs = append(segs, e.Name, name)
	for i := range segs {
		segs[i] = url.PathEscape(segs[i])
	}
	return "/projects/files/" + strings.Join(segs, "/")
}

func downloadURL(e catalog.Entry, file string) string {
	q := url.Values{}
	q.Set("category", e.Category)
	q.Set("project", e.Name)
	q.Set("file", file)
	return "/download?" + q.Encode()
}

func tabURL(e catalog.Entry, tab string) string {
	q := url.Values{}
	q.Set("category", e.Category)
	q.Set("project", e.Name)
	q.Set("tab", tab)
	return "/projects?" + q.Encode()
}

// buildHomeView lists every project as a card, highlight categories first.
func (s *Server) buildHomeView() homeView {
	start := time.Now()
	defer s.observeScan(start)

	v := homeView{Active: "home"}

	if !s.scanner.Categorized() {
		if cards := s.buildCards(""); len(cards) > 0 {
			v.Groups = append(v.Groups, homeGroup{Cards: cards})
		}
	} else {
		highlighted := make(map[string]bool)
		for _, folder := range s.scanner.Highlights() {
			highlighted[folder] = true
			v.Groups = append(v.Groups, homeGroup{
				Label:     s.scanner.Label(folder),
				Highlight: true,
				Cards:     s.buildCards(folder),
			})
		}
		for _, cat := range s.scanner.Categories() {
			if highlighted[cat.Folder] {
				continue
			}
			v.Groups = append(v.Groups, homeGroup{
				Label: cat.Label,
				Cards: s.buildCards(cat.Folder),
			})
		}
	}

	empty := true
	for _, g := range v.Groups {
		if len(g.Cards) > 0 {
			empty = false
		}
	}
	v.Empty = empty
	return v
}

func (s *Server) buildCards(folder string) []card {
	var cards []card
	for _, e := range s.scanner.Projects(folder) {
		c := card{
			Category:    e.Category,
			Name:        e.Name,
			Title:       catalog.Title(e.Name),
			Description: catalog.DefaultDescription,
		}
		// Descriptor failure here means the directory vanished mid-scan;
		// the card still renders with defaults.
		if d, err := s.scanner.Describe(e); err == nil {
			c.Description = d.Description
			if d.Preview != "" {
				c.PreviewURL = fileURL(e, filepath.Base(d.Preview))
			}
		}
		cards = append(cards, c)
	}
	return cards
}

// buildProjectsView projects (catalog, selection state) into the projects
// page. It may rewrite st.Category when the stored selection no longer
// exists, per the fallback rule.
func (s *Server) buildProjectsView(st *session.State, tab string) projectsView {
	start := time.Now()
	defer s.observeScan(start)

	v := projectsView{Active: "projects"}

	folder := ""
	if s.scanner.Categorized() {
		cats := s.scanner.Categories()
		if len(cats) == 0 {
			v.Empty = "No projects found."
			return v
		}
		valid := false
		for _, cat := range cats {
			if cat.Folder == st.Category {
				valid = true
				break
			}
		}
		if !valid {
			st.Category = cats[0].Folder
		}
		folder = st.Category
		v.Categorized = true
		for _, cat := range cats {
			v.Categories = append(v.Categories, categoryOption{
				Label:    cat.Label,
				Folder:   cat.Folder,
				Selected: cat.Folder == folder,
			})
		}
	}

	projects := s.scanner.Projects(folder)
	if len(projects) == 0 {
		v.Empty = "No projects found."
		return v
	}
	for _, e := range projects {
		v.Projects = append(v.Projects, projectOption{
			Name:     e.Name,
			Title:    catalog.Title(e.Name),
			Selected: e.Name == st.Project,
		})
	}

	if st.Project == "" {
		return v
	}

	e, err := s.scanner.Find(folder, st.Project)
	if err != nil {
		v.NotFound = st.Project
		return v
	}
	detail, err := s.buildDetail(e, tab)
	if err != nil {
		// Directory removed between Find and Describe.
		v.NotFound = st.Project
		return v
	}
	v.Detail = detail
	return v
}

func (s *Server) buildDetail(e catalog.Entry, tab string) (*projectDetail, error) {
	d, err := s.scanner.Describe(e)
	if err != nil {
		return nil, err
	}

	detail := &projectDetail{
		Name:        e.Name,
		Title:       catalog.Title(e.Name),
		Description: d.Description,
		Tab:         tab,
		Files:       d.Files,
	}
	if d.Preview != "" {
		detail.PreviewURL = fileURL(e, filepath.Base(d.Preview))
	}
	for _, t := range tabOrder {
		detail.Tabs = append(detail.Tabs, tabOption{
			ID:       t.ID,
			Label:    t.Label,
			URL:      tabURL(e, t.ID),
			Selected: t.ID == tab,
		})
	}

	if d.Video != nil {
		detail.Video.Configured = true
		if d.Video.Local {
			detail.Video.Local = true
			detail.Video.FileURL = fileURL(e, filepath.Base(d.Video.Path))
		} else {
			detail.Video.LinkURL = d.Video.Raw
		}
	}

	for _, path := range d.Datasets {
		name := filepath.Base(path)
		sec := datasetSection{
			Name:        name,
			DownloadURL: downloadURL(e, name),
		}
		table, err := dataset.Preview(path, dataset.PreviewRows)
		if err != nil {
			sec.Err = fmt.Sprintf("Unable to read %s: %v", name, err)
		} else {
			sec.Table = table
		}
		detail.Datasets = append(detail.Datasets, sec)
	}

	for _, path := range d.Notebooks {
		name := filepath.Base(path)
		detail.Notebooks = append(detail.Notebooks, notebookSection{
			Name: name,
			URL:  fileURL(e, name),
		})
	}

	detail.Dashboard = buildDashboard(d.Datasets)
	return detail, nil
}

// buildDashboard summarizes the first dataset by sorted filename.
func buildDashboard(datasets []string) dashboardSection {
	if len(datasets) == 0 {
		return dashboardSection{NoData: true}
	}

	source := datasets[0]
	sec := dashboardSection{Source: filepath.Base(source)}

	columns, err := dataset.Describe(source)
	if err != nil {
		sec.Err = fmt.Sprintf("Unable to read %s: %v", sec.Source, err)
		return sec
	}
	if len(columns) == 0 {
		sec.NoNumeric = true
		return sec
	}

	sec.Columns = columns
	first := columns[0]
	sec.HistColumn = first.Name

	bins := dataset.Histogram(first.Values(), dataset.MaxHistogramBins)
	maxCount := 0
	for _, b := range bins {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}
	for _, b := range bins {
		pct := 0
		if maxCount > 0 {
			pct = b.Count * 100 / maxCount
		}
		sec.Bars = append(sec.Bars, histogramBar{
			Label: fmt.Sprintf("%.4g to %.4g", b.Low, b.High),
			Count: b.Count,
			Pct:   pct,
		})
	}
	return sec
}

func (s *Server) observeScan(start time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveScan(start)
	}
}
