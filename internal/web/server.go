// Package web serves the launch simulator as a browser page.
package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/rocketlab/internal/logging"
	"github.com/yaklabco/rocketlab/pkg/height"
	"github.com/yaklabco/rocketlab/pkg/launch"
	"github.com/yaklabco/rocketlab/pkg/plot"
)

const (
	// DefaultAddr is used when Options.Addr is empty.
	DefaultAddr = ":8501"

	// DefaultShutdownTimeout bounds graceful shutdown.
	DefaultShutdownTimeout = 5 * time.Second

	readHeaderTimeout = 10 * time.Second
)

// Options configures a Server. Every field is read-only after New.
type Options struct {
	// Addr is the TCP listen address.
	Addr string

	// ShutdownTimeout bounds how long in-flight requests may finish.
	ShutdownTimeout time.Duration

	Model height.Model
	Input launch.Input
	Chart plot.Options

	// AssetPath is the marker image, loaded on every request.
	AssetPath string

	// Logger receives request and lifecycle logs. Defaults to logging.Default().
	Logger *log.Logger
}

// Server renders one launch per request.
type Server struct {
	opts    Options
	logger  *log.Logger
	handler http.Handler
	page    *page
}

// New validates opts and builds the request handler.
func New(opts Options) (*Server, error) {
	if opts.Addr == "" {
		opts.Addr = DefaultAddr
	}
	if opts.ShutdownTimeout <= 0 {
		opts.ShutdownTimeout = DefaultShutdownTimeout
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}

	if err := opts.Model.Validate(); err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}
	if err := opts.Input.Validate(); err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	if err := opts.Chart.Validate(); err != nil {
		return nil, fmt.Errorf("chart: %w", err)
	}

	pg, err := newPage()
	if err != nil {
		return nil, err
	}

	srv := &Server{
		opts:   opts,
		logger: opts.Logger,
		page:   pg,
	}
	srv.handler = srv.routes()

	return srv, nil
}

// Handler returns the HTTP handler, including request logging.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.opts.Addr
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /chart.png", s.handleChart)
	mux.HandleFunc("GET /api/launch", s.handleLaunch)
	mux.HandleFunc("GET /healthz", handleHealth)
	return s.withLogging(mux)
}

// Run listens on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.opts.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts
// down gracefully within the configured timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	httpSrv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.Serve(ln)
	}()

	s.logger.Info("serving rocket launches", logging.FieldAddr, ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down", logging.FieldDuration, s.opts.ShutdownTimeout)
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
