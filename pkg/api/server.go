// Package api is the promash REST API
//
// @title           promash REST API
// @version         1.0.0
// @description     Decode, flatten and archive ProMash recipe files.
// @host            localhost:8080
// @BasePath        /api/v1
//
// @securityDefinitions.apikey ApiKeyAuth
// @in              header
// @name            X-API-Key
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/swag"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const shutdownTimeout = 10 * time.Second

// NewRouter builds the HTTP handler for s. gatherer backs /metrics.
func NewRouter(s *Server, gatherer prometheus.Gatherer) http.Handler {
	metrics := s.metrics

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// Swagger documentation (unprotected)
	r.Get("/swagger/*", swaggerHandler(s.logger))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(metrics.InstrumentAuthMiddleware(apiKeyMiddleware(s.config.APIKey)))

		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", s.handleHealth))

		// Stateless decoding
		r.Post("/decode", metrics.InstrumentHandler("POST", "/api/v1/decode", s.handleDecode))
		r.Post("/attributes", metrics.InstrumentHandler("POST", "/api/v1/attributes", s.handleAttributes))

		if s.archive == nil {
			return
		}

		// Archive
		r.Post("/recipes", metrics.InstrumentHandler("POST", "/api/v1/recipes", s.handleCreateRecipe))
		r.Get("/recipes", metrics.InstrumentHandler("GET", "/api/v1/recipes", s.handleListRecipes))
		r.Get("/recipes/{id}", metrics.InstrumentHandler("GET", "/api/v1/recipes/{id}", s.handleGetRecipe))
		r.Get("/recipes/{id}/raw", metrics.InstrumentHandler("GET", "/api/v1/recipes/{id}/raw", s.handleGetRecipeRaw))
		r.Delete("/recipes/{id}", metrics.InstrumentHandler("DELETE", "/api/v1/recipes/{id}", s.handleDeleteRecipe))
	})

	return r
}

const swaggerUI = `<!DOCTYPE html>
<html>
<head>
	<title>promash API Documentation</title>
	<link rel="stylesheet" type="text/css" href="https://unpkg.com/swagger-ui-dist@3.25.0/swagger-ui.css" />
</head>
<body>
	<div id="swagger-ui"></div>
	<script src="https://unpkg.com/swagger-ui-dist@3.25.0/swagger-ui-bundle.js"></script>
	<script>
	  window.onload = function() {
	    SwaggerUIBundle({
	      url: '/swagger/swagger.json',
	      dom_id: '#swagger-ui',
	      presets: [
	        SwaggerUIBundle.presets.apis,
	        SwaggerUIBundle.presets.standalone
	      ]
	    });
	  };
	</script>
</body>
</html>`

// swaggerHandler serves the UI and the registered OpenAPI document as JSON or YAML
func swaggerHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/swagger/", "/swagger/index.html":
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(swaggerUI))
		case "/swagger/swagger.json":
			doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
			if err != nil {
				logger.Error("failed to render swagger doc", zap.Error(err))
				http.Error(w, "Failed to generate Swagger documentation", http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(doc))
		case "/swagger/swagger.yaml":
			doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
			if err == nil {
				var out []byte
				out, err = jsonToYAML([]byte(doc))
				doc = string(out)
			}
			if err != nil {
				logger.Error("failed to render swagger doc", zap.Error(err))
				http.Error(w, "Failed to generate Swagger documentation", http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/yaml")
			_, _ = w.Write([]byte(doc))
		default:
			http.NotFound(w, r)
		}
	}
}

// jsonToYAML re-encodes a JSON document as block-style YAML, keeping key order
func jsonToYAML(data []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	clearStyle(&node)
	return yaml.Marshal(&node)
}

func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}

// StartServer serves the API until ctx is cancelled, then shuts down gracefully
func StartServer(ctx context.Context, decoder RecipeDecoder, archive RecipeArchive, config ServerConfig, logger *zap.Logger) error {
	if config.APIKey == "" {
		return errors.New("an API key is required to start the server")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	registry := config.Registry
	if registry == nil {
		registry = NewRegistry()
	}

	metrics := NewMetricsWithRegistry(registry)
	server := NewServer(decoder, archive, config, metrics, logger)
	server.refreshArchiveGauge()

	addr := net.JoinHostPort(config.Bind, strconv.Itoa(config.Port))
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(server, registry),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting promash REST API server",
			zap.String("addr", addr),
			zap.String("metrics", fmt.Sprintf("http://%s/metrics", addr)),
		)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return nil
	}
}
