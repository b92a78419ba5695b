package api

import (
	"net/http"
	"time"

	"github.com/athebyme/gomarket-platform/storefront-service/internal/api/handlers"
	"github.com/athebyme/gomarket-platform/storefront-service/internal/api/middleware"
	"github.com/athebyme/gomarket-platform/storefront-service/internal/domain/services"
	"github.com/athebyme/gomarket-platform/storefront-service/pkg/interfaces"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// RouterOptions настройки маршрутизатора
type RouterOptions struct {
	Handlers           handlers.Options
	CORSAllowedOrigins []string
	RequestTimeout     time.Duration
	MetricsEnabled     bool
	MetricsEndpoint    string
}

// SetupRouter настраивает маршрутизатор
func SetupRouter(
	storefrontService services.StorefrontServiceInterface,
	logger interfaces.LoggerPort,
	opts RouterOptions,
) *chi.Mux {
	r := chi.NewRouter()

	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}

	// Глобальные middleware
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Tracing)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	if opts.MetricsEnabled {
		r.Use(middleware.Metrics)
	}
	r.Use(middleware.Timeout(opts.RequestTimeout))
	r.Use(middleware.CORS(opts.CORSAllowedOrigins))

	r.Method(http.MethodGet, "/health", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}))
	r.Method(http.MethodHead, "/health", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	if opts.MetricsEnabled {
		endpoint := opts.MetricsEndpoint
		if endpoint == "" {
			endpoint = "/metrics"
		}
		r.Handle(endpoint, promhttp.Handler())
	}

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	catalogHandler := handlers.NewCatalogHandler(storefrontService, logger, opts.Handlers)
	productHandler := handlers.NewProductHandler(storefrontService, logger, opts.Handlers)

	// HTML страницы витрины
	r.Get("/", catalogHandler.CatalogPage)
	r.Get("/catalog", catalogHandler.CatalogPage)
	r.Get("/product/{slugOrID}", productHandler.ProductPage)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", catalogHandler.ListCatalog)
		r.Get("/categories", catalogHandler.ListCategories)
		r.Get("/brands", catalogHandler.ListBrands)
		r.Get("/products/on-sale", catalogHandler.ListOnSale)
		r.Get("/products/{slugOrID}", productHandler.GetProduct)
	})

	return r
}
