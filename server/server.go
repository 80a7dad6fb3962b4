package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
	log "github.com/sirupsen/logrus"

	"github.com/palmwatch/millatlas/api/handlers"
	"github.com/palmwatch/millatlas/api/middleware"
	"github.com/palmwatch/millatlas/service"
	"github.com/palmwatch/millatlas/settings"
	"github.com/palmwatch/millatlas/tiles"
	"github.com/palmwatch/millatlas/uml"
)

// Start starts the millatlas server with the given configuration and
// loaded dataset. It sets up the routes and listens for incoming HTTP
// requests on the configured port until a stop signal arrives.
func Start(config settings.Config, ds *uml.Dataset) {
	// A bad tile credential only degrades the web map, never the API.
	if err := tiles.CheckCredential(config.Tiles); err != nil {
		log.Warnf("Tile provider check failed: %v", err)
	}

	router := createRouter(config, ds)
	server := &http.Server{Addr: fmt.Sprintf(":%v", config.Server.Port), Handler: router}
	serverCtx, serverStopCtx := context.WithCancel(context.Background())

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sig

		log.Info("Stop signal received, shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(serverCtx, 5*time.Second)
		defer cancel()

		go func() {
			<-shutdownCtx.Done()
			if shutdownCtx.Err() == context.DeadlineExceeded {
				log.Fatal("graceful shutdown timed out.. forcing exit.")
			}
		}()

		err := server.Shutdown(shutdownCtx)
		if err != nil {
			log.Fatal(err)
		}

		log.Info("Server stopped successfully")
		serverStopCtx()
	}()

	log.Info(fmt.Sprintf("millatlas started, running on port %v", config.Server.Port))

	err := server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}

	<-serverCtx.Done()
}

// createRouter creates and configures the router for the server. The
// analytical endpoints are registered through huma, the GeoJSON and
// web map routes are plain chi routes.
func createRouter(config settings.Config, ds *uml.Dataset) http.Handler {
	router := chi.NewMux()
	router.Use(middleware.Logger("router", log.StandardLogger(), logrus.DebugLevel))
	router.Use(chimiddleware.Recoverer)
	router.Use(chimiddleware.Throttle(config.Server.MaxConcurrentRequests))
	router.Use(chimiddleware.Timeout(time.Duration(config.Server.Timeout) * time.Second))
	router.Use(chimiddleware.Compress(5, "application/json", "application/geo+json"))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   config.Server.CORS.AllowOrigins,
		AllowedMethods:   config.Server.CORS.AllowMethods,
		AllowedHeaders:   config.Server.CORS.AllowHeaders,
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           600,
	}))
	router.NotFound(handlers.NotFoundHandler)

	humaConfig := createHumaConfig()
	api := humachi.New(router, humaConfig)
	registerRoutes(api, config, ds)

	router.Get("/", handlers.MapHandler(config.Tiles))
	router.Get("/mills", handlers.MillsHandler(ds))

	return router
}

func createHumaConfig() huma.Config {
	humaConfig := huma.DefaultConfig("Millatlas", "1.0.0")
	humaConfig.CreateHooks = nil
	humaConfig.Info.Description = "Millatlas serves the Universal Mill List, a public dataset of palm oil mills. It answers the dataset's standing questions (size, spatial extent, unknown parent companies, mills per country, RSPO certification split), exposes the mills as GeoJSON and renders them on an interactive web map."
	humaConfig.Info.License = &huma.License{
		Name: "MIT",
	}

	return humaConfig
}

func registerRoutes(api huma.API, config settings.Config, ds *uml.Dataset) {
	index := service.NewParentIndex(ds)

	huma.Register(api, huma.Operation{
		OperationID: "status",
		Method:      http.MethodGet,
		Path:        "/status",
		Summary:     "Status",
		Description: "Get the status of the millatlas server.",
	}, handlers.StatusHandler(time.Now(), ds.Len()))

	huma.Register(api, huma.Operation{
		OperationID: "stats",
		Method:      http.MethodGet,
		Path:        "/stats",
		Summary:     "Dataset statistics",
		Description: "Row count, spatial extent, unknown parent companies, per-country counts and the certification split.",
	}, handlers.StatsHandler(ds))

	huma.Register(api, huma.Operation{
		OperationID: "search",
		Method:      http.MethodGet,
		Path:        "/search",
		Summary:     "Parent company search",
		Description: "Fuzzy search over parent company names, tolerant of typing errors.",
	}, handlers.SearchHandler(index, config.Search.MaxDistance))
}
