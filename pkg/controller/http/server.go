package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/domain/interfaces"
)

// Config holds HTTP server settings
type Config struct {
	addr           string
	allowedOrigins []string
}

// NewConfig creates a new HTTP server config
func NewConfig(addr string, allowedOrigins []string) *Config {
	return &Config{
		addr:           addr,
		allowedOrigins: allowedOrigins,
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
	router  chi.Router
	handler *BathRecordHandler
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, config *Config, bathRecordUC interfaces.BathRecord) *Server {
	router := chi.NewRouter()
	handler := NewBathRecordHandler(bathRecordUC)

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)
	router.Use(CORS(config.allowedOrigins))

	// Health check
	router.Get("/health", handleHealth)

	router.Route("/api", func(r chi.Router) {
		r.Get("/carousel", handler.HandleCarousel)

		r.Route("/weeks", func(r chi.Router) {
			r.Get("/of/{date}", handler.HandleWeekOf)
			r.Get("/{weekStart}/bath-records", handler.HandleSelectForWeek)
		})

		r.Route("/bath-records", func(r chi.Router) {
			r.Post("/", handler.HandleCreate)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handler.HandleGet)
				r.Patch("/", handler.HandleUpdate)
				r.Delete("/", handler.HandleDelete)
				r.Put("/approval", handler.HandleSetApproval)
			})
		})

		r.Post("/maintenance/repair-week-starts", handler.HandleRepairWeekStarts)
	})

	return &Server{
		Server: &http.Server{
			Addr:              config.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:  router,
		handler: handler,
	}
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "petshop",
	})
}
