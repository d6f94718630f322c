package api

import (
	"net/http"

	"github.com/RMahshie/filterform/internal/api/handlers"
	"github.com/RMahshie/filterform/internal/config"
	"github.com/RMahshie/filterform/internal/processing"
	"github.com/RMahshie/filterform/internal/web"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds the HTTP router with middleware, pages and API operations
func NewRouter(cfg *config.Config, renderer handlers.PageRenderer, designSvc processing.DesignService, version string) *chi.Mux {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(zerologLogger())
	router.Use(middleware.Recoverer)
	router.Use(middleware.GetHead)
	router.Use(middleware.Compress(5))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))
	router.Use(middleware.RequestSize(cfg.Server.MaxFormBytes))

	humaConfig := huma.DefaultConfig("Filterform API", version)
	humaConfig.OpenAPIPath = "/api/openapi"
	humaConfig.DocsPath = "/api/docs"
	humaConfig.SchemasPath = "/api/schemas"
	api := humachi.New(router, humaConfig)

	RegisterPages(router, handlers.NewFormHandler(renderer, designSvc))
	RegisterOperations(api, handlers.NewParametersHandler(designSvc), handlers.NewHealthHandler(version))

	return router
}

// RegisterPages sets up the HTML form routes and static assets
func RegisterPages(router chi.Router, formHandler *handlers.FormHandler) {
	router.Get("/", formHandler.Index)
	router.Post("/calculate", formHandler.Calculate)
	router.Handle("/static/*", http.StripPrefix("/static", web.StaticHandler()))
}

// RegisterOperations sets up all JSON API operations
func RegisterOperations(api huma.API, paramsHandler *handlers.ParametersHandler, healthHandler *handlers.HealthHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Returns the health status of the service",
		Tags:        []string{"Service"},
	}, healthHandler.Health)

	huma.Register(api, huma.Operation{
		OperationID: "submitParameters",
		Method:      http.MethodPost,
		Path:        "/api/parameters",
		Summary:     "Submit filter parameters",
		Description: "Accepts cutoff frequency, gain, capacitor value and approximation type and acknowledges them",
		Tags:        []string{"Design"},
	}, paramsHandler.SubmitParameters)
}
