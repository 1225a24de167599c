package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/xavierca1/wa-gateway/docs" // registra o doc.json no swag
	"github.com/xavierca1/wa-gateway/internal/infra/http/middleware"
)

type RouterConfig struct {
	Messages       *MessageHandler
	Health         *HealthHandler
	AllowedOrigins []string
	BodyLimit      int64
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Group(func(r chi.Router) {
		if cfg.BodyLimit > 0 {
			r.Use(chimw.RequestSize(cfg.BodyLimit))
		}
		r.Post("/send-message", cfg.Messages.SendMessage)
		r.Post("/send-image", cfg.Messages.SendImage)
		r.Post("/send-file", cfg.Messages.SendFile)
	})

	if cfg.Health != nil {
		r.Get("/health", cfg.Health.Handle)
	}
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/api-docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api-docs/index.html", http.StatusMovedPermanently)
	})
	r.Get("/api-docs/*", httpSwagger.Handler(httpSwagger.URL("/api-docs/doc.json")))

	return r
}
