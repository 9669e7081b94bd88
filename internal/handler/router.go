package handler

import (
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"barber-booking/internal/handler/api"
	"barber-booking/internal/handler/middleware"
	"barber-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	bookingHandler *api.BookingHandler,
	catalogHandler *api.CatalogHandler,
	testimonialHandler *api.TestimonialHandler,
	notificationHandler *api.NotificationHandler,
	adminMiddleware *middleware.AdminMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, bookingHandler, catalogHandler, testimonialHandler, notificationHandler, adminMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	cfg config.Config,
	bookingHandler *api.BookingHandler,
	catalogHandler *api.CatalogHandler,
	testimonialHandler *api.TestimonialHandler,
	notificationHandler *api.NotificationHandler,
	adminMiddleware *middleware.AdminMiddleware,
) {
	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		apiGroup.GET("/health", healthCheck(cfg))

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
			})

			adminOnly := bookings.Group("")
			adminOnly.Use(adminMiddleware.RequireAdmin())
			addRoutes(adminOnly, []route{
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.List},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.Delete},
				{Method: http.MethodPatch, Path: "/:id/confirm", Handler: bookingHandler.Confirm},
			})
		}

		stats := apiGroup.Group("/stats")
		stats.Use(adminMiddleware.RequireAdmin())
		{
			addRoutes(stats, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: bookingHandler.Stats},
			})
		}

		notifications := apiGroup.Group("/notifications")
		notifications.Use(adminMiddleware.RequireAdmin())
		{
			addRoutes(notifications, []route{
				{Method: http.MethodGet, Path: "", Handler: notificationHandler.Recent},
			})
		}

		testimonials := apiGroup.Group("/testimonials")
		{
			addRoutes(testimonials, []route{
				{Method: http.MethodGet, Path: "", Handler: testimonialHandler.List},
				{Method: http.MethodPost, Path: "", Handler: testimonialHandler.Create},
				{Method: http.MethodDelete, Path: "/:id", Handler: testimonialHandler.Delete, Mw: []gin.HandlerFunc{adminMiddleware.RequireAdmin()}},
			})
		}

		services := apiGroup.Group("/services")
		{
			addRoutes(services, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.ListServices},
				{Method: http.MethodPost, Path: "", Handler: catalogHandler.CreateService, Mw: []gin.HandlerFunc{adminMiddleware.RequireAdmin()}},
				{Method: http.MethodPut, Path: "/:id", Handler: catalogHandler.UpdateService, Mw: []gin.HandlerFunc{adminMiddleware.RequireAdmin()}},
				{Method: http.MethodDelete, Path: "/:id", Handler: catalogHandler.DeleteService, Mw: []gin.HandlerFunc{adminMiddleware.RequireAdmin()}},
			})
		}

		gallery := apiGroup.Group("/gallery")
		{
			addRoutes(gallery, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.ListGallery},
				{Method: http.MethodPost, Path: "", Handler: catalogHandler.CreateGalleryItem, Mw: []gin.HandlerFunc{adminMiddleware.RequireAdmin()}},
				{Method: http.MethodPut, Path: "/:id", Handler: catalogHandler.UpdateGalleryItem, Mw: []gin.HandlerFunc{adminMiddleware.RequireAdmin()}},
				{Method: http.MethodDelete, Path: "/:id", Handler: catalogHandler.DeleteGalleryItem, Mw: []gin.HandlerFunc{adminMiddleware.RequireAdmin()}},
			})
		}
	}

	engine.NoRoute(staticSiteHandler(cfg.Server.StaticDir))
}

// @Summary Health check
// @Description Check if the service is healthy and whether an admin secret is configured
// @Tags health
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/health [get]
func healthCheck(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"time":      time.Now().Format(time.RFC3339),
			"hasSecret": cfg.Admin.Secret != "",
		})
	}
}

// staticSiteHandler serves the public site for anything the API does not
// claim. Unknown /api paths stay JSON so dashboard fetches never parse HTML.
func staticSiteHandler(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqPath := c.Request.URL.Path
		if reqPath == "/api" || strings.HasPrefix(reqPath, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{
				"error": fmt.Sprintf("API endpoint %s %s not found", c.Request.Method, reqPath),
			})
			return
		}

		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.String(http.StatusNotFound, "Page not found")
			return
		}

		rel := strings.TrimPrefix(path.Clean(reqPath), "/")
		if rel == "" {
			rel = "index.html"
		}
		full := filepath.Join(staticDir, filepath.FromSlash(rel))
		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			c.File(full)
			return
		}

		c.String(http.StatusNotFound, "Page not found")
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
