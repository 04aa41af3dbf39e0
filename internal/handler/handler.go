package handler

import (
	"io"
	"net/http"

	"marketplace/ecommerce/internal/metrics"

	"github.com/andybalholm/brotli"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Logger logrus.FieldLogger

	// AuthLimiter throttles /api/auth per client. Nil disables it.
	AuthLimiter *RateLimiter
}

type Handler struct {
	router *chi.Mux

	products *ProductHandler
	auth     *AuthHandler
	orders   *OrderHandler
	limiter  *RateLimiter
}

func NewHandler(products *ProductHandler, auth *AuthHandler, orders *OrderHandler, opts Options) *Handler {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: log, NoColor: true}))
	router.Use(middleware.Recoverer)
	router.Use(metrics.Instrument)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		MaxAge:         1800,
	}))
	router.Use(newCompressor().Handler)

	h := &Handler{
		router:   router,
		products: products,
		auth:     auth,
		orders:   orders,
		limiter:  opts.AuthLimiter,
	}

	h.registerRoutes()
	return h
}

func newCompressor() *middleware.Compressor {
	c := middleware.NewCompressor(5, "application/json", "text/plain")
	c.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})
	return c
}

func (h *Handler) registerRoutes() {
	h.router.Route("/v1", func(r chi.Router) {
		r.Get("/health", h.HealthCheck)
	})
	h.router.Handle("/metrics", metrics.Handler())

	h.router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			if h.limiter != nil {
				r.Use(h.limiter.Handler)
			}
			r.Post("/register", h.auth.Register)
			r.Post("/login", h.auth.Login)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.products.ListProducts)
			r.Post("/", h.products.AddProduct)
			r.Delete("/{id}", h.products.DeleteProduct)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/checkout", h.orders.PlaceOrder)
			r.Get("/user/{userId}", h.orders.ListUserOrders)
		})
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
