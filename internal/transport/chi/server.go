// Package chi exposes the search service over HTTP using the chi router.
package chi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/studyfind/studyfind/internal/domain/search/filter"
	"github.com/studyfind/studyfind/internal/domain/search/options"
	healthuc "github.com/studyfind/studyfind/internal/usecase/health"
	searchuc "github.com/studyfind/studyfind/internal/usecase/search"
)

// Limits carries the configured request-size bounds. Zero values fall back
// to the options package defaults.
type Limits struct {
	SuggestionLimit int
	DefaultPageSize int
	MaxPageSize     int
}

// Server holds the HTTP handlers for the search API.
type Server struct {
	search *searchuc.Service
	health *healthuc.Service
	logger *zap.Logger
	limits Limits
}

// NewServer creates an HTTP API server.
func NewServer(search *searchuc.Service, health *healthuc.Service, logger *zap.Logger, limits Limits) *Server {
	return &Server{
		search: search,
		health: health,
		logger: logger,
		limits: limits,
	}
}

// Register mounts all routes on the given router.
func (s *Server) Register(r chi.Router) {
	r.Route("/api/v1/search", func(r chi.Router) {
		r.Get("/", s.SearchAll)
		r.Get("/materials", s.SearchMaterials)
		r.Get("/comments", s.SearchComments)
		r.Get("/subjects", s.SearchSubjects)
		r.Get("/suggestions", s.Suggestions)
	})
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// SearchAll handles GET /api/v1/search.
func (s *Server) SearchAll(w http.ResponseWriter, r *http.Request) {
	term, f, opts, ok := s.parseSearchParams(w, r)
	if !ok {
		return
	}

	combined := s.search.SearchAll(r.Context(), term, f, opts)
	writeJSON(w, http.StatusOK, combinedToDTO(combined))
}

// SearchMaterials handles GET /api/v1/search/materials.
func (s *Server) SearchMaterials(w http.ResponseWriter, r *http.Request) {
	term, f, opts, ok := s.parseSearchParams(w, r)
	if !ok {
		return
	}

	page := s.search.SearchMaterials(r.Context(), term, f, opts)
	items := make([]materialItem, len(page.Items))
	for i := range page.Items {
		items[i] = materialToDTO(&page.Items[i])
	}
	writeJSON(w, http.StatusOK, pageResponse[materialItem]{
		Items:  items,
		Total:  page.Total,
		Limit:  opts.Limit(),
		Offset: opts.Offset(),
	})
}

// SearchComments handles GET /api/v1/search/comments.
func (s *Server) SearchComments(w http.ResponseWriter, r *http.Request) {
	term, f, opts, ok := s.parseSearchParams(w, r)
	if !ok {
		return
	}

	page := s.search.SearchComments(r.Context(), term, f, opts)
	items := make([]commentItem, len(page.Items))
	for i := range page.Items {
		items[i] = commentToDTO(&page.Items[i])
	}
	writeJSON(w, http.StatusOK, pageResponse[commentItem]{
		Items:  items,
		Total:  page.Total,
		Limit:  opts.Limit(),
		Offset: opts.Offset(),
	})
}

// SearchSubjects handles GET /api/v1/search/subjects.
func (s *Server) SearchSubjects(w http.ResponseWriter, r *http.Request) {
	term, f, opts, ok := s.parseSearchParams(w, r)
	if !ok {
		return
	}

	page := s.search.SearchSubjects(r.Context(), term, f, opts)
	items := make([]subjectItem, len(page.Items))
	for i := range page.Items {
		items[i] = subjectToDTO(&page.Items[i])
	}
	writeJSON(w, http.StatusOK, pageResponse[subjectItem]{
		Items:  items,
		Total:  page.Total,
		Limit:  opts.Limit(),
		Offset: opts.Offset(),
	})
}

// Suggestions handles GET /api/v1/search/suggestions.
func (s *Server) Suggestions(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")
	if len(term) > options.MaxQueryLength {
		writeError(w, http.StatusBadRequest, codeValidationFailed,
			fmt.Sprintf("query must not exceed %d characters", options.MaxQueryLength))
		return
	}

	limit := s.limits.SuggestionLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, codeValidationFailed, "limit must be a positive integer")
			return
		}
		if n < limit {
			limit = n
		}
	}

	suggestions := s.search.Suggestions(r.Context(), term, limit)
	if suggestions == nil {
		suggestions = []string{}
	}
	writeJSON(w, http.StatusOK, suggestionsResponse{Suggestions: suggestions})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// parseSearchParams reads the shared query parameters of the search
// endpoints. On validation failure it writes a 400 response and reports ok
// as false.
func (s *Server) parseSearchParams(
	w http.ResponseWriter, r *http.Request,
) (term string, f filter.Filters, opts options.Options, ok bool) {
	q := r.URL.Query()

	term = q.Get("q")
	if len(term) > options.MaxQueryLength {
		writeError(w, http.StatusBadRequest, codeValidationFailed,
			fmt.Sprintf("query must not exceed %d characters", options.MaxQueryLength))
		return "", filter.Filters{}, options.Options{}, false
	}

	semester, err := intParam(q.Get("semester"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "semester must be an integer")
		return "", filter.Filters{}, options.Options{}, false
	}
	uploadedFrom, err := int64Param(q.Get("uploaded_from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "uploaded_from must be a unix ms timestamp")
		return "", filter.Filters{}, options.Options{}, false
	}
	uploadedTo, err := int64Param(q.Get("uploaded_to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "uploaded_to must be a unix ms timestamp")
		return "", filter.Filters{}, options.Options{}, false
	}

	f, err = filter.New(
		q.Get("programme_id"), q.Get("subject_code"), q.Get("type"),
		semester, q.Get("uploader_id"),
		uploadedFrom, uploadedTo,
	)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return "", filter.Filters{}, options.Options{}, false
	}

	limit, err := intParam(q.Get("limit"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "limit must be an integer")
		return "", filter.Filters{}, options.Options{}, false
	}
	offset, err := intParam(q.Get("offset"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "offset must be an integer")
		return "", filter.Filters{}, options.Options{}, false
	}

	opts, err = options.NewBounded(
		options.SortBy(q.Get("sort_by")), options.SortOrder(q.Get("sort_order")),
		limit, offset,
		s.limits.DefaultPageSize, s.limits.MaxPageSize,
	)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return "", filter.Filters{}, options.Options{}, false
	}

	return term, f, opts, true
}

func intParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func int64Param(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// WriteInternalError writes the generic JSON 500 body. Used by the panic
// recoverer at the composition root, which lives outside this package.
func WriteInternalError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
