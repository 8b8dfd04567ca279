package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/blogem/export-portal/config"
	"github.com/blogem/export-portal/controllers"
	"github.com/blogem/export-portal/logger"
	reqlog "github.com/blogem/export-portal/middleware"
	"github.com/blogem/export-portal/models"
	"github.com/blogem/export-portal/repositories"
	"github.com/blogem/export-portal/services"
	"github.com/blogem/export-portal/storage"
)

func main() {
	// Load configuration from .env, environment and flags
	opts := config.NewOptions()
	opts.ParseFlags()

	nLogger, err := logger.NewLogger(opts.LogLevel())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer nLogger.Sync()

	// Initialize storage and seed the record collections
	store := storage.NewJSONStore(opts.DataDir())
	if err := store.Bootstrap(); err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	repos := repositories.NewRepositories(store)

	ctx := context.Background()
	if err := repos.Products.EnsureSeeded(ctx); err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}
	if err := repos.Categories.EnsureSeeded(ctx); err != nil {
		log.Fatalf("Failed to seed categories: %v", err)
	}

	// Initialize services
	srvs := services.NewServices(repos)

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs, store)

	// Set up router
	r := setupRouter(ctrl, nLogger, opts)

	nLogger.Info("starting server",
		zap.String("addr", opts.RunAddr()),
		zap.String("data_dir", opts.DataDir()),
	)

	if err := http.ListenAndServe(opts.RunAddr(), r); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, nLogger *logger.Logger, opts *config.Options) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(reqlog.RequestLogger(nLogger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(chimiddleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CorsOrigins(),
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/data1", ctrl.Catalog.Products)
		r.Get("/data2", ctrl.Catalog.Categories)

		r.Post("/submit", ctrl.Submission.Submit)
		r.Get("/submissions", ctrl.Submission.List)
		r.Delete("/submissions/{id}", ctrl.Submission.Delete)

		r.Get("/health", ctrl.Health.Status)
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(models.NotFoundResponse{
			Error: "Route not found",
			Path:  req.URL.Path,
		})
	})

	return r
}
