// Package server exposes the search engine over HTTP. Handlers are thin:
// they parse and clamp query parameters, call the engine, and serialize
// the result. The engine contract is total, so handlers never see
// provider errors; the only client errors are malformed requests.
package server

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/opendatakr/foodsearch/internal/model"
)

// Searcher is the engine surface the HTTP layer serves. *search.Service
// implements it.
type Searcher interface {
	SearchCompanies(ctx context.Context, q model.CompanyQuery) model.PagedResult[model.CompanyRecord]
	SearchProductsByCompany(ctx context.Context, companyName string, page, perPage int) model.PagedResult[model.ProductRecord]
	SearchProducts(ctx context.Context, q model.ProductQuery) model.PagedResult[model.ProductRecord]
	RepresentativeHistory(ctx context.Context, companyName, licenseNo string) model.RepresentativeHistory
	LicenseChangeHistory(ctx context.Context, companyName, licenseNo string) model.LicenseChangeHistory
}

// Options tunes the HTTP surface.
type Options struct {
	// StaticDir, when set, serves a frontend: index.html at / and assets
	// under /static/.
	StaticDir string
}

// Server owns the route table over a search engine.
type Server struct {
	svc       Searcher
	staticDir string
}

// New creates a Server over the given engine.
func New(svc Searcher, opts Options) *Server {
	return &Server{svc: svc, staticDir: opts.StaticDir}
}

// Handler builds the router with request-ID, logging, panic recovery and
// CORS middleware applied to every route.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(requestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/companies", s.handleCompanies)
		r.Get("/companies/{name}/products", s.handleCompanyProducts)
		r.Get("/companies/{name}/representatives", s.handleRepresentatives)
		r.Get("/companies/{name}/license-changes", s.handleLicenseChanges)
		r.Get("/search", s.handleSearch)
		r.Get("/regions", s.handleRegions)
		r.Get("/business-types", s.handleBusinessTypes)
		r.Get("/health", s.handleHealth)
	})

	if s.staticDir != "" {
		fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir(s.staticDir)))
		r.Get("/static/*", fileServer.ServeHTTP)
		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			http.ServeFile(w, req, filepath.Join(s.staticDir, "index.html"))
		})
	}

	return r
}
