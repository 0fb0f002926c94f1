package router

import (
	"context"
	"net/http"

	_ "pet-adoption/docs" // registra el documento swagger
	mem "pet-adoption/internal/adapters/storage/memory"
	"pet-adoption/internal/domain/catalog"
	"pet-adoption/internal/domain/intake"
	"pet-adoption/internal/middleware"
	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // puede ser nil (no loguea)

	// Opcional: si viene, las métricas se registran ahí y /metrics lo expone.
	// Si no, se usa un registry nuevo (aislado por router, útil en tests).
	Registry *prometheus.Registry

	// SeedCatalog carga el catálogo inicial (Rex, Luna, Thor).
	SeedCatalog bool
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := metrics.New(reg)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Catálogo: único dueño de las fichas; el listado lee, el intake agrega.
	catalogSvc := catalog.NewService(mem.NewCatalogRepo(), catalog.WithMetrics(m))
	if opts.SeedCatalog {
		if err := catalogSvc.Seed(context.Background(), catalog.DefaultSeed()); err != nil {
			log.Error("catalog seed failed", map[string]any{"error": err.Error()})
		}
	}

	intakeSvc := intake.NewService(
		mem.NewDraftsRepo(),
		catalogSvc,
		intake.WithLogger(log.With(map[string]any{"module": "intake"})),
		intake.WithMetrics(m),
	)

	// Rutas por módulo
	catalog.RegisterRoutes(r, catalogSvc)
	intake.RegisterRoutes(r, intakeSvc)

	return r
}
