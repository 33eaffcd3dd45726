package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/wordseek"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server serves entry lookups over HTTP.
type Server struct {
	router    chi.Router
	fetcher   wordseek.PageFetcher
	extractor wordseek.Extractor
	logger    *slog.Logger
	metrics   http.Handler
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithServerLogger sets the logger receiving one record per request.
func WithServerLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetricsHandler mounts h at /metrics.
func WithMetricsHandler(h http.Handler) ServerOption {
	return func(s *Server) {
		s.metrics = h
	}
}

// NewServer creates a Server answering lookups with fetcher and extractor.
func NewServer(fetcher wordseek.PageFetcher, extractor wordseek.Extractor, opts ...ServerOption) *Server {
	s := &Server{
		fetcher:   fetcher,
		extractor: extractor,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))

	r.Get("/healthz", s.handleHealth)
	r.Get("/entries/{word}", s.handleEntry)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// handleEntry looks up a word. The language is taken from the lang query
// parameter as typed by a user ("middle english"); format selects json
// (default), text or legacy output.
func (s *Server) handleEntry(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")
	languageArgs := strings.Fields(r.URL.Query().Get("lang"))

	entry, err := wordseek.Lookup(r.Context(), s.fetcher, s.extractor, word, languageArgs)
	if err != nil {
		s.error(w, r, err)
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(entry)
	case "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(wordseek.FormatEntry(entry) + "\n"))
	case "legacy":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(wordseek.FormatLegacy(entry) + "\n"))
	default:
		s.error(w, r, wordseek.Errorf(wordseek.EINVALID, "unknown format %q", format))
	}
}

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	wordseek.EINVALID:   http.StatusBadRequest,
	wordseek.ENOTFOUND:  http.StatusNotFound,
	wordseek.ELANGUAGE:  http.StatusNotFound,
	wordseek.EETYMOLOGY: http.StatusUnprocessableEntity,
	wordseek.EUPSTREAM:  http.StatusBadGateway,
	wordseek.EINTERNAL:  http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if status, ok := codes[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func (s *Server) error(w http.ResponseWriter, r *http.Request, err error) {
	code := wordseek.ErrorCode(err)
	if code == wordseek.EINTERNAL {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(ErrorStatusCode(code))
	_ = json.NewEncoder(w).Encode(map[string]string{
		"code":  code,
		"error": wordseek.ErrorMessage(err),
	})
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func(begin time.Time) {
				logger.Info("request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"request_id", middleware.GetReqID(r.Context()),
					"duration", time.Since(begin),
				)
			}(time.Now())
			next.ServeHTTP(ww, r)
		})
	}
}
