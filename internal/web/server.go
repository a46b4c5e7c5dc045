// Package web serves the foliod browsing UI: server-rendered HTML views over
// the project catalog, CSV downloads, uploads, and operational endpoints.
package web

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/fernworks/foliod/internal/catalog"
	"github.com/fernworks/foliod/internal/session"
	"github.com/fernworks/foliod/internal/upload"
)

// sessionCookie names the cookie carrying the session ID.
const sessionCookie = "foliod_session"

// Config holds HTTP server configuration.
type Config struct {
	Host           string
	Port           int
	MaxUploadBytes int64
}

// Server provides the foliod HTTP endpoints.
type Server struct {
	echo     *echo.Echo
	scanner  *catalog.Scanner
	sessions *session.Store
	uploads  *upload.Handler
	metrics  *Metrics
	logger   *zap.Logger
	config   *Config
}

// NewServer creates the HTTP server.
func NewServer(scanner *catalog.Scanner, sessions *session.Store, uploads *upload.Handler, metrics *Metrics, logger *zap.Logger, cfg *Config) (*Server, error) {
	if scanner == nil {
		return nil, fmt.Errorf("scanner cannot be nil")
	}
	if sessions == nil {
		return nil, fmt.Errorf("session store cannot be nil")
	}
	if uploads == nil {
		return nil, fmt.Errorf("upload handler cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required for request tracking and debugging")
	}
	if cfg == nil {
		cfg = &Config{
			Host:           "",
			Port:           8080,
			MaxUploadBytes: 50 << 20,
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			logger.Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", duration),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)

			return err
		}
	})
	if metrics != nil {
		e.Use(metrics.Middleware())
	}

	s := &Server{
		echo:     e,
		scanner:  scanner,
		sessions: sessions,
		uploads:  uploads,
		metrics:  metrics,
		logger:   logger,
		config:   cfg,
	}

	s.registerRoutes()

	return s, nil
}

// registerRoutes sets up the HTTP endpoints.
func (s *Server) registerRoutes() {
	s.echo.GET("/", s.handleHome)
	s.echo.POST("/open", s.handleOpen)
	s.echo.GET("/projects", s.handleProjects)
	s.echo.GET("/projects/files/*", s.handleProjectFile)
	s.echo.GET("/download", s.handleDownload)
	s.echo.GET("/upload", s.handleUploadForm)
	s.echo.POST("/upload", s.handleUploadSubmit,
		middleware.BodyLimit(strconv.FormatInt(s.config.MaxUploadBytes, 10)))
	s.echo.GET("/about", s.handleAbout)

	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Service: "foliod"})
}

// sessionID returns the request's session ID, minting one and setting the
// cookie when the browser has none yet.
func (s *Server) sessionID(c echo.Context) string {
	if ck, err := c.Cookie(sessionCookie); err == nil && ck.Value != "" {
		return ck.Value
	}
	id := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// pagePath maps a page to its URL.
func pagePath(p session.Page) string {
	switch p {
	case session.PageProjects:
		return "/projects"
	case session.PageUpload:
		return "/upload"
	case session.PageAbout:
		return "/about"
	default:
		return "/"
	}
}

// redirectPending consumes a pending programmatic navigation request. When
// the request targets another page the caller must return immediately: the
// redirect stands in for that page's render, and the cleared request means
// it wins for exactly that one cycle.
func (s *Server) redirectPending(c echo.Context, id string, st *session.State, current session.Page) (bool, error) {
	p := st.ConsumePending()
	if !p.Valid() || p == current {
		return false, nil
	}
	s.sessions.Put(id, *st)
	return true, c.Redirect(http.StatusSeeOther, pagePath(p))
}

// render executes a page template into the response.
func (s *Server) render(c echo.Context, name string, data any) error {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		s.logger.Error("template render failed", zap.String("template", name), zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "render failed")
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// Echo exposes the underlying router, used by tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

// Start starts the HTTP server and blocks until ctx is cancelled, then
// performs graceful shutdown with the given timeout.
func (s *Server) Start(ctx context.Context, shutdownTimeout time.Duration) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.logger.Info("starting http server", zap.String("addr", addr))

	errCh := make(chan error, 1)
	go func() {
		if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("server start: %w", err)
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down http server")
		return s.echo.Shutdown(shutdownCtx)
	}
}
