package http

import (
	"net/http"

	"github.com/MKhiriev/go-purchase-tracker/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	// spans start before the trace id is chosen so the two can match
	if h.metrics != nil {
		router.Use(h.metrics.Middleware)
	}
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(middleware.Compress(5, "application/json"))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(h.rateLimit())

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.With(requireJSON).Post("/api/auth", h.login)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Put("/api/auth", h.refresh)

		r.Get("/api/purchases", h.getPurchases)
		r.With(requireJSON).Post("/api/purchases", h.createPurchase)
		r.Get("/api/purchases/{id}", h.getPurchase)
		r.With(requireJSON).Put("/api/purchases/{id}", h.updatePurchase)
		r.Delete("/api/purchases/{id}", h.deletePurchase)

		r.Get("/api/country-currencies", h.getCountryCurrencies)
		r.Get("/api/country-currencies/{country}/{currency}/{date}", h.getExchangeRate)

		r.Get("/api/sync/status", h.getSyncStatus)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound), nil)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
