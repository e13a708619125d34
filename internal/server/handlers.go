package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/opendatakr/foodsearch/internal/model"
)

// productsPerPage is the default page size for the per-company product
// listing, larger than the general default because the list is short and
// usually consumed whole.
const productsPerPage = 20

func (s *Server) handleCompanies(w http.ResponseWriter, r *http.Request) {
	p := r.URL.Query()
	q := model.CompanyQuery{
		Keyword:      p.Get("keyword"),
		Region:       p.Get("region"),
		BusinessType: p.Get("business_type"),
		Page:         intParam(p, "page", 1),
		PerPage:      intParam(p, "per_page", model.DefaultPerPage),
	}
	writeJSON(w, http.StatusOK, s.svc.SearchCompanies(r.Context(), q))
}

func (s *Server) handleCompanyProducts(w http.ResponseWriter, r *http.Request) {
	p := r.URL.Query()
	page := intParam(p, "page", 1)
	perPage := intParam(p, "per_page", productsPerPage)
	res := s.svc.SearchProductsByCompany(r.Context(), pathName(r), page, perPage)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleRepresentatives(w http.ResponseWriter, r *http.Request) {
	res := s.svc.RepresentativeHistory(r.Context(), pathName(r), r.URL.Query().Get("license_no"))
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleLicenseChanges(w http.ResponseWriter, r *http.Request) {
	res := s.svc.LicenseChangeHistory(r.Context(), pathName(r), r.URL.Query().Get("license_no"))
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	p := r.URL.Query()
	keyword := strings.TrimSpace(p.Get("q"))
	if keyword == "" {
		writeError(w, http.StatusBadRequest, "q is required")
		return
	}
	q := model.ProductQuery{
		Keyword: keyword,
		Page:    intParam(p, "page", 1),
		PerPage: intParam(p, "per_page", model.DefaultPerPage),
	}
	writeJSON(w, http.StatusOK, s.svc.SearchProducts(r.Context(), q))
}

func (s *Server) handleRegions(w http.ResponseWriter, _ *http.Request) {
	regions := model.Regions()
	names := make([]string, 0, len(regions))
	for _, rc := range regions {
		names = append(names, rc.Name)
	}
	writeJSON(w, http.StatusOK, map[string][]string{"regions": names})
}

func (s *Server) handleBusinessTypes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"business_types": model.BusinessTypes()})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "food-search-api",
	})
}

// pathName extracts the company name path segment. Hangul names arrive
// percent-encoded, and chi hands the segment back still escaped.
func pathName(r *http.Request) string {
	name := chi.URLParam(r, "name")
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	return name
}

// intParam reads a positive integer query parameter, substituting def for
// absent, malformed, or non-positive values.
func intParam(p url.Values, key string, def int) int {
	raw := p.Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("server: encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
