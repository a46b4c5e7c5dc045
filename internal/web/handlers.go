package web

import (
	"errors"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fernworks/foliod/internal/dataset"
	"github.com/fernworks/foliod/internal/sanitize"
	"github.com/fernworks/foliod/internal/session"
)

func (s *Server) handleHome(c echo.Context) error {
	id := s.sessionID(c)
	st := s.sessions.Get(id)
	if done, err := s.redirectPending(c, id, &st, session.PageHome); done {
		return err
	}
	s.sessions.Put(id, st)

	return s.render(c, "home", s.buildHomeView())
}

// handleOpen is the "open project" card action: it records the selection and
// requests navigation to the projects page.
func (s *Server) handleOpen(c echo.Context) error {
	project := c.FormValue("project")
	if project == "" {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	id := s.sessionID(c)
	st := s.sessions.Get(id)
	st.OpenProject(c.FormValue("category"), project)
	s.sessions.Put(id, st)

	return c.Redirect(http.StatusSeeOther, pagePath(session.PageProjects))
}

func (s *Server) handleProjects(c echo.Context) error {
	id := s.sessionID(c)
	st := s.sessions.Get(id)
	if done, err := s.redirectPending(c, id, &st, session.PageProjects); done {
		return err
	}

	// Explicit query parameters override the stored selection.
	if q := c.QueryParam("category"); q != "" {
		st.Category = q
	}
	if q := c.QueryParam("project"); q != "" {
		st.Project = q
	}
	tab := c.QueryParam("tab")
	if !validTab(tab) {
		tab = tabVideo
	}

	view := s.buildProjectsView(&st, tab)
	s.sessions.Put(id, st)

	return s.render(c, "projects", view)
}

// handleProjectFile serves raw project files (previews, notebook exports,
// local video) from beneath the catalog root.
func (s *Server) handleProjectFile(c echo.Context) error {
	rel := c.Param("*")
	if unescaped, err := url.PathUnescape(rel); err == nil {
		rel = unescaped
	}

	path := filepath.Join(s.scanner.Root(), filepath.FromSlash(rel))
	if !sanitize.WithinRoot(s.scanner.Root(), path) {
		return echo.NewHTTPError(http.StatusNotFound, "file not found")
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return echo.NewHTTPError(http.StatusNotFound, "file not found")
	}
	return c.File(path)
}

// handleDownload streams one dataset re-encoded as CSV.
func (s *Server) handleDownload(c echo.Context) error {
	e, err := s.scanner.Find(c.QueryParam("category"), c.QueryParam("project"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "project not found")
	}
	d, err := s.scanner.Describe(e)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "project not found")
	}

	file := c.QueryParam("file")
	var source string
	for _, path := range d.Datasets {
		if filepath.Base(path) == file {
			source = path
			break
		}
	}
	if source == "" {
		return echo.NewHTTPError(http.StatusNotFound, "dataset not found")
	}

	data, err := dataset.Reencode(source)
	if err != nil {
		s.logger.Warn("dataset re-encode failed", zap.String("file", source), zap.Error(err))
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "unable to re-encode dataset")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="`+file+`"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", data)
}

func (s *Server) handleUploadForm(c echo.Context) error {
	id := s.sessionID(c)
	st := s.sessions.Get(id)
	if done, err := s.redirectPending(c, id, &st, session.PageUpload); done {
		return err
	}
	s.sessions.Put(id, st)

	return s.render(c, "upload", uploadView{
		Active: "upload",
		Saved:  c.QueryParam("saved"),
		Error:  c.QueryParam("error"),
	})
}

func (s *Server) handleUploadSubmit(c echo.Context) error {
	fail := func(msg string) error {
		s.countUpload(false)
		return c.Redirect(http.StatusSeeOther, "/upload?error="+url.QueryEscape(msg))
	}

	dest := c.FormValue("dest")
	if strings.TrimSpace(dest) == "" {
		return fail("Enter a destination path.")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return fail("Choose a file to upload.")
	}
	src, err := fh.Open()
	if err != nil {
		return fail("Unable to read the uploaded file.")
	}
	defer src.Close()

	written, err := s.uploads.Write(dest, src)
	switch {
	case errors.Is(err, sanitize.ErrAbsolutePath), errors.Is(err, sanitize.ErrPathTraversal):
		return fail("Destination must be a relative path inside the catalog.")
	case errors.Is(err, sanitize.ErrEmptyPath):
		return fail("Enter a destination path.")
	case err != nil:
		s.logger.Error("upload failed", zap.String("dest", dest), zap.Error(err))
		return fail("Saving the file failed.")
	}

	s.countUpload(true)
	rel, relErr := filepath.Rel(s.scanner.Root(), written)
	if relErr != nil {
		rel = dest
	}
	return c.Redirect(http.StatusSeeOther, "/upload?saved="+url.QueryEscape(rel))
}

func (s *Server) handleAbout(c echo.Context) error {
	id := s.sessionID(c)
	st := s.sessions.Get(id)
	if done, err := s.redirectPending(c, id, &st, session.PageAbout); done {
		return err
	}
	s.sessions.Put(id, st)

	return s.render(c, "about", aboutView{Active: "about"})
}

func (s *Server) countUpload(accepted bool) {
	if s.metrics != nil {
		s.metrics.CountUpload(accepted)
	}
}
