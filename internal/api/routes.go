package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	canonhttp "github.com/nhalm/canonlog/http"
	"github.com/nhalm/chikit/ratelimit"
	"github.com/nhalm/chikit/ratelimit/store"
	chikitvalidate "github.com/nhalm/chikit/validate"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/stockboard/stockboard/docs" // Swagger docs
)

const defaultOrigin = "http://localhost:5173"

// RouteConfig tunes the middleware stack. Zero values fall back to
// DefaultRouteConfig.
type RouteConfig struct {
	ReadRPS        int
	WriteRPS       int
	MaxBodyBytes   int64
	RequestTimeout time.Duration
	AllowedOrigins []string
}

func DefaultRouteConfig() RouteConfig {
	return RouteConfig{
		ReadRPS:        100,
		WriteRPS:       20,
		MaxBodyBytes:   1048576,
		RequestTimeout: 60 * time.Second,
		AllowedOrigins: []string{defaultOrigin},
	}
}

func (c RouteConfig) withDefaults() RouteConfig {
	d := DefaultRouteConfig()
	if c.ReadRPS <= 0 {
		c.ReadRPS = d.ReadRPS
	}
	if c.WriteRPS <= 0 {
		c.WriteRPS = d.WriteRPS
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = d.MaxBodyBytes
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = d.RequestTimeout
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = d.AllowedOrigins
	}
	return c
}

func (h *Handler) Routes() http.Handler {
	return h.RoutesWithConfig(DefaultRouteConfig())
}

func (h *Handler) RoutesWithConfig(config RouteConfig) http.Handler {
	config = config.withDefaults()
	r := chi.NewRouter()

	st := store.NewMemory()
	read := ratelimit.NewBuilder(st).
		WithName("read").
		WithIP().
		Limit(config.ReadRPS, time.Second)
	write := ratelimit.NewBuilder(st).
		WithName("write").
		WithIP().
		Limit(config.WriteRPS, time.Second)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(canonhttp.ChiMiddleware(nil))
	r.Use(chikitvalidate.MaxBodySize(config.MaxBodyBytes))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(config.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.With(read).Get("/", h.ListProducts)
			r.With(write).Post("/", h.CreateProduct)
			r.With(write).Post("/delete", h.DeleteProducts)
			r.Route("/{id}", func(r chi.Router) {
				r.With(read).Get("/", h.GetProduct)
				r.With(write).Patch("/", h.UpdateProduct)
				r.With(write).Delete("/", h.DeleteProduct)
			})
		})

		// View state shared by every list request.
		r.With(read).Get("/filters", h.GetFilters)
		r.With(write).Put("/filters", h.SetFilters)
		r.With(read).Get("/sort", h.GetSort)
		r.With(write).Put("/sort", h.SetSort)
		r.With(read).Get("/pagination", h.GetPagination)
		r.With(write).Put("/pagination", h.SetPagination)
		r.With(read).Get("/categories/stats", h.CategoryStats)

		r.Route("/selection", func(r chi.Router) {
			r.With(read).Get("/", h.GetSelection)
			r.With(write).Post("/toggle-visible", h.ToggleVisibleSelection)
			r.With(write).Post("/{id}/toggle", h.ToggleSelection)
		})
	})

	return r
}

// ParseAllowedOrigins splits a comma separated origin list, dropping
// empty entries.
func ParseAllowedOrigins(originsStr string) []string {
	var origins []string
	for _, origin := range strings.Split(originsStr, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{defaultOrigin}
	}
	return origins
}
