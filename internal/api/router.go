// Package api serves recommendations over HTTP. One read-only Recommender
// is shared by every request.
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"movierec/internal/domain"
)

// Defaults are the result counts used when a request omits n.
type Defaults struct {
	SimilarTopN int
	GenreTopN   int
	TopRatedN   int
}

// Server holds the HTTP handlers and their metrics.
type Server struct {
	rec      domain.Recommender
	defaults Defaults
	log      zerolog.Logger
	registry *prometheus.Registry
	queries  *prometheus.CounterVec
	results  *prometheus.HistogramVec
}

// NewServer creates handlers over rec with a private metrics registry.
func NewServer(rec domain.Recommender, defaults Defaults, log zerolog.Logger) *Server {
	reg := prometheus.NewRegistry()
	queries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "movierec_queries_total",
		Help: "Recommendation queries by kind and outcome.",
	}, []string{"kind", "outcome"})
	results := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "movierec_query_results",
		Help:    "Number of movies returned per query.",
		Buckets: []float64{0, 1, 5, 10, 20},
	}, []string{"kind"})
	reg.MustRegister(queries, results)
	return &Server{rec: rec, defaults: defaults, log: log, registry: reg, queries: queries, results: results}
}

// Routes returns the chi router for the API.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(s.requestLogger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.health)
		r.Route("/movies", func(r chi.Router) {
			r.Get("/", s.listMovies)
			r.Get("/similar", s.similar)
			r.Get("/genre", s.byGenre)
			r.Get("/top", s.topRated)
		})
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

type moviesResponse struct {
	Movies []domain.Movie `json:"movies"`
	Count  int            `json:"count"`
}

type similarResponse struct {
	Title   string               `json:"title"`
	Results []domain.ScoredMovie `json:"results"`
	Count   int                  `json:"count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listMovies(w http.ResponseWriter, _ *http.Request) {
	movies := s.rec.Movies()
	s.respondJSON(w, http.StatusOK, moviesResponse{Movies: movies, Count: len(movies)})
}

func (s *Server) similar(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		s.respondError(w, "similar", http.StatusBadRequest, "title is required")
		return
	}
	n, ok := s.parseN(w, r, "similar", s.defaults.SimilarTopN)
	if !ok {
		return
	}
	res := s.rec.SimilarScored(title, n)
	s.observe("similar", len(res))
	s.respondJSON(w, http.StatusOK, similarResponse{Title: title, Results: res, Count: len(res)})
}

func (s *Server) byGenre(w http.ResponseWriter, r *http.Request) {
	genre := r.URL.Query().Get("genre")
	if genre == "" {
		s.respondError(w, "genre", http.StatusBadRequest, "genre is required")
		return
	}
	n, ok := s.parseN(w, r, "genre", s.defaults.GenreTopN)
	if !ok {
		return
	}
	res := s.rec.RecommendByGenre(genre, n)
	s.observe("genre", len(res))
	s.respondJSON(w, http.StatusOK, moviesResponse{Movies: res, Count: len(res)})
}

func (s *Server) topRated(w http.ResponseWriter, r *http.Request) {
	n, ok := s.parseN(w, r, "top", s.defaults.TopRatedN)
	if !ok {
		return
	}
	res := s.rec.TopRated(n)
	s.observe("top", len(res))
	s.respondJSON(w, http.StatusOK, moviesResponse{Movies: res, Count: len(res)})
}

func (s *Server) parseN(w http.ResponseWriter, r *http.Request, kind string, def int) (int, bool) {
	raw := r.URL.Query().Get("n")
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		s.respondError(w, kind, http.StatusBadRequest, "n must be an integer")
		return 0, false
	}
	return n, true
}

func (s *Server) observe(kind string, count int) {
	s.queries.WithLabelValues(kind, "ok").Inc()
	s.results.WithLabelValues(kind).Observe(float64(count))
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		s.log.Error().Err(err).Msg("marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		s.log.Error().Err(err).Msg("write response")
	}
}

func (s *Server) respondError(w http.ResponseWriter, kind string, status int, msg string) {
	s.queries.WithLabelValues(kind, "bad_request").Inc()
	s.respondJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Debug().
			Str("request_id", chimiddleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
