package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	obsmw "jobboard/internal/observability/middleware"
	"jobboard/internal/service"
)

type API struct {
	Auth         service.AuthService
	Tokens       service.TokenService
	Listings     service.ListingService
	Companies    service.CompanyService
	Applications service.ApplicationService

	// CORSOrigins restricts cross-origin access when non-empty.
	CORSOrigins []string
}

func NewRouter(api API) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(httprate.LimitByIP(100, 1*time.Minute))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   originsIfSet(api.CORSOrigins),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(obsmw.WithRequestAndTrace)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Public auth surface; logout alone needs a bearer token.
	r.Route("/v1/auth", func(r chi.Router) {
		r.Post("/signup", api.handleSignup)
		r.Get("/activate/{uid}/{token}", api.handleActivate)
		r.Post("/login", api.handleLogin)
		r.Post("/refresh", api.handleRefresh)
		r.With(RequireAuth(api.Tokens)).Post("/logout", api.handleLogout)
	})

	// Everything else needs a bearer token.
	r.Group(func(r chi.Router) {
		r.Use(RequireAuth(api.Tokens))

		r.Route("/v1/jobs", func(r chi.Router) {
			r.Get("/", api.handleListListings)
			r.Post("/", api.handleCreateListing)
			r.Get("/{id}", api.handleGetListing)
			r.Put("/{id}", api.handleUpdateListing)
			r.Patch("/{id}", api.handleUpdateListing)
			r.Delete("/{id}", api.handleDeleteListing)
		})

		r.Route("/v1/companies", func(r chi.Router) {
			r.Get("/", api.handleListCompanies)
			r.Post("/", api.handleCreateCompany)
			r.Get("/{id}", api.handleGetCompany)
			r.Put("/{id}", api.handleUpdateCompany)
			r.Patch("/{id}", api.handleUpdateCompany)
			r.Delete("/{id}", api.handleDeleteCompany)
		})

		r.Route("/v1/applications", func(r chi.Router) {
			r.Get("/", api.handleListApplications)
			r.Post("/", api.handleSubmitApplication)
			r.Get("/{id}", api.handleGetApplication)
			r.Get("/{id}/resume", api.handleDownloadResume)
			r.Patch("/{id}", api.handleUpdateApplicationStatus)
		})

		r.Delete("/v1/users/{id}", api.handleDeleteUser)
	})

	return r
}

func originsIfSet(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		if s := strings.TrimSpace(o); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
