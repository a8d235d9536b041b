// Package serve publishes green's HTML report over HTTP.
package serve

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/abdul-hamid-achik/green/packages/core/runner"
	"github.com/abdul-hamid-achik/green/packages/output"
	"golang.org/x/time/rate"
)

// Handler runs suites on every request and responds with the HTML
// report. A "suite" query parameter filters suites by name pattern.
// The status is 200 when every assertion passed and 500 otherwise, so
// health checks can poll the report.
func Handler(logger *slog.Logger, suites ...runner.Suite) http.Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		run := runner.NewRunner(&runner.Config{
			NameFilter: r.URL.Query().Get("suite"),
			Warn: func(format string, args ...any) {
				logger.Warn("suite warning", "detail", fmt.Sprintf(format, args...))
			},
		})
		summary := run.Run(suites...)

		var buf bytes.Buffer
		if err := run.Finalize(output.NewHTMLRenderer(output.HTMLWithWriter(&buf))); err != nil {
			logger.Error("rendering report", "err", err)
			http.Error(w, "failed to render report", http.StatusInternalServerError)
			return
		}

		status := http.StatusOK
		if !summary.Passed() {
			status = http.StatusInternalServerError
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		if r.Method == http.MethodGet {
			_, _ = w.Write(buf.Bytes())
		}

		logger.Info("report served",
			"run", run.Recorder().ID(),
			"suites", summary.Suites,
			"success", summary.Success,
			"failure", summary.Failure,
			"duration", summary.Duration,
			"errors", len(summary.Errors),
		)
	})
}

// Server serves the report handler.
type Server struct {
	addr    string
	logger  *slog.Logger
	suites  []runner.Suite
	handler http.Handler
	limiter *rate.Limiter
}

// Option is a functional option for Server
type Option func(*Server)

// WithAddr sets the listen address
func WithAddr(addr string) Option {
	return func(s *Server) {
		s.addr = addr
	}
}

// WithLogger sets the logger for requests and lifecycle events
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithRateLimit caps report runs at perSecond requests per second with
// bursts of up to burst. Requests over the limit get 429. A perSecond of
// zero or less leaves the server unlimited.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(s *Server) {
		if perSecond <= 0 {
			s.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		s.limiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// NewServer creates a server reporting on suites
func NewServer(suites []runner.Suite, opts ...Option) *Server {
	s := &Server{
		addr:   "127.0.0.1:8080",
		logger: slog.New(slog.DiscardHandler),
		suites: suites,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.handler = Handler(s.logger, s.suites...)
	return s
}

// Handler returns the server's root handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/", s.limit(s.handler))
	return mux
}

// limit rejects requests the limiter does not allow. Every report request
// runs the suites, so the limiter bounds how often they run.
func (s *Server) limit(next http.Handler) http.Handler {
	if s.limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			s.logger.Warn("rate limited", "remote", r.RemoteAddr, "path", r.URL.Path)
			w.Header().Set("Retry-After", "1")
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// StartWithContext serves until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) StartWithContext(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is StartWithContext on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	server := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("shutdown", "err", err)
		}
	}()

	s.logger.Info("serving report", "addr", "http://"+ln.Addr().String())
	err := server.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		<-done
		return nil
	}
	return err
}
