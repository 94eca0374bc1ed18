package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.corsAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
	}))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/login", h.login)
		r.Get("/produtos", h.listProducts)
		r.Get("/relatorios/pedidos", h.ordersReport)
		r.Get("/relatorios/estoque", h.criticalStockReport)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/produtos", h.createProduct)
		r.Put("/produtos/{id}", h.updateProduct)
		r.Delete("/produtos/{id}", h.deleteProduct)
	})

	router.Get("/*", h.static())
	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
