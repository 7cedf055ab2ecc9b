// Package apiserver provides the JSON API HTTP server implementation
package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/homehub/v2/internal/infrastructure/config"
	"github.com/homehub/v2/internal/infrastructure/http/handlers"
	"github.com/homehub/v2/internal/infrastructure/http/middleware"
	"github.com/homehub/v2/internal/ports/inbound"
)

// APIServer serves the HomeHub JSON API
type APIServer struct {
	config           *config.Config
	logger           *zap.Logger
	server           *http.Server
	router           *chi.Mux
	registry         *prometheus.Registry
	inventoryService inbound.InventoryService
	recipeService    inbound.RecipeService
	shoppingService  inbound.ShoppingListService
}

// NewAPIServer creates a new API server instance
func NewAPIServer(
	cfg *config.Config,
	log *zap.Logger,
	inventoryService inbound.InventoryService,
	recipeService inbound.RecipeService,
	shoppingService inbound.ShoppingListService,
) *APIServer {
	server := &APIServer{
		config:           cfg,
		logger:           log,
		registry:         prometheus.NewRegistry(),
		inventoryService: inventoryService,
		recipeService:    recipeService,
		shoppingService:  shoppingService,
	}

	server.router = server.setupRoutes()
	server.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return server
}

// setupRoutes configures the JSON API routes
func (s *APIServer) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	metrics := middleware.NewMetrics(s.registry)

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	r.Use(metrics.Handler())
	r.Use(middleware.RateLimit(s.config.RateLimit))
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(chimiddleware.Compress(5))

	// Operational endpoints
	r.Get("/health", s.handleHealthCheck)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		s.setupAPIRoutes(r)
	})

	return r
}

// setupAPIRoutes configures the resource endpoints
func (s *APIServer) setupAPIRoutes(r chi.Router) {
	inventoryH := handlers.NewInventoryHandlers(s.inventoryService, s.logger)
	recipeH := handlers.NewRecipeHandlers(s.recipeService, s.logger)
	shoppingH := handlers.NewShoppingListHandlers(s.shoppingService, s.logger)

	r.Route("/Inventory", func(r chi.Router) {
		r.Get("/", inventoryH.List)
		r.Post("/", inventoryH.Create)
		r.Get("/{id}", inventoryH.Get)
		r.Put("/{id}", inventoryH.Update)
		r.Delete("/{id}", inventoryH.Delete)
	})

	r.Route("/Recipe", func(r chi.Router) {
		r.Get("/", recipeH.List)
		r.Post("/", recipeH.Create)
		r.Post("/generate-from-inventory", recipeH.Generate)
		r.Get("/{id}", recipeH.Get)
		r.Delete("/{id}", recipeH.Delete)
	})

	r.Route("/ShoppingList", func(r chi.Router) {
		r.Get("/", shoppingH.List)
		r.Post("/generate", shoppingH.Generate)
		r.Get("/{id}", shoppingH.Get)
		r.Put("/{id}/completed", shoppingH.SetCompleted)
		r.Put("/{id}/items/{itemId}/purchased", shoppingH.SetItemPurchased)
		r.Delete("/{id}", shoppingH.Delete)
	})
}

// handleHealthCheck responds to health check requests
func (s *APIServer) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"healthy","service":%q,"version":%q,"timestamp":%q}`,
		s.config.App.Name,
		s.config.App.Version,
		time.Now().UTC().Format(time.RFC3339),
	)
}

// Router exposes the configured router, mainly for tests
func (s *APIServer) Router() *chi.Mux {
	return s.router
}

// Start starts the HTTP server and blocks until it stops
func (s *APIServer) Start() error {
	s.logger.Info("Starting API server",
		zap.String("addr", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *APIServer) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server")
	return s.server.Shutdown(ctx)
}
