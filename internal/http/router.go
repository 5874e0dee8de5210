// Package httpapi wires the HTTP transport (Gin) to the application
// services, middleware, and route handlers. It centralizes cross-cutting
// concerns: tracing, correlation IDs, logging, the error-translation
// boundary, metrics, compression, CORS, and security headers.
//
// Design goals:
//   - Safe-by-default middleware ordering (correlation → logging → error boundary)
//   - Deterministic, minimal router setup; all dependencies injected
//   - One error wire format for the whole app, produced only by the boundary
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "github.com/tzelal/go-htmx-starter/docs"
	"github.com/tzelal/go-htmx-starter/internal/apperr"
	"github.com/tzelal/go-htmx-starter/internal/config"
	"github.com/tzelal/go-htmx-starter/internal/http/handlers"
	"github.com/tzelal/go-htmx-starter/internal/http/middleware"
	"github.com/tzelal/go-htmx-starter/internal/repo"
	"github.com/tzelal/go-htmx-starter/internal/services"
	"github.com/tzelal/go-htmx-starter/internal/web"
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. CorrelationID: bind/propagate the correlation id before dispatch
//  3. Logger: structured access logs carrying the correlation id
//  4. ErrorHandler: the translation boundary (typed failures, panics)
//  5. Body size limiter
//  6. Metrics, gzip, CORS, security headers
func RegisterRoutes(r *gin.Engine, itemRepo repo.ItemRepository, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.CorrelationID())

	// 3) Structured access logging
	r.Use(middleware.Logger())

	// 4) Error boundary: typed failures and panics become well-formed
	//    responses (JSON envelope or HTML fragment)
	r.Use(middleware.ErrorHandler())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Response compression
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// CORS posture (safe defaults: allow all if none configured)
	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.HeaderCorrelationID, "HX-Request", "HX-Trigger", "HX-Target"},
		ExposeHeaders:    []string{middleware.HeaderCorrelationID, "Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS: cfg.Security.EnableHSTS,
		HSTSMaxAge: cfg.Security.HSTSMaxAge,
	}))

	// Fallbacks go through the same error boundary as everything else, so
	// they honor the fragment/JSON split.
	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperr.NotFound("Route not found", nil))
		c.Abort()
	})
	// 405 has no kind in the failure taxonomy; emit the envelope directly.
	r.NoMethod(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, middleware.ErrorEnvelope{
			Error: middleware.ErrorBody{Message: "Method not allowed", Details: map[string]any{}},
		})
	})

	// Embedded templates and static assets
	r.SetHTMLTemplate(web.Templates())
	r.StaticFS("/static", http.FS(web.StaticFS()))

	// Dependency injection: handlers ← service ← repository
	itemSvc := services.NewItemService(itemRepo)
	h := handlers.New(itemSvc, cfg.Version, cfg.APIBasePath, cfg.ProjectName)

	// Root route redirects to the HTMX index page.
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, cfg.APIBasePath+"/htmx/")
	})

	// Swagger UI (off by default; mirrors exposing docs only in debug setups)
	if cfg.SwaggerEnabled {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		// Health probes
		health := api.Group("/health")
		health.GET("/", h.Health)
		health.GET("/ready", h.Ready)
		health.GET("/live", h.Live)

		// Items (JSON API)
		items := api.Group("/items")
		items.GET("", h.ListItems)
		items.POST("", h.CreateItem)
		items.GET("/:id", h.GetItem)
		items.PUT("/:id", h.UpdateItem)
		items.DELETE("/:id", h.DeleteItem)

		// HTMX fragments
		hx := api.Group("/htmx")
		hx.GET("/", h.Index)
		hx.GET("/example/swap", h.ExampleSwap)
		hx.POST("/example/form", h.ExampleForm)
		hx.GET("/items", h.HTMXListItems)
		hx.GET("/items/form", h.HTMXItemForm)
		hx.GET("/items/:id", h.HTMXGetItem)
		hx.POST("/items", h.HTMXCreateItem)
		hx.DELETE("/items/:id", h.HTMXDeleteItem)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints using http.MaxBytesReader. Requests exceeding the cap will cause
// downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
