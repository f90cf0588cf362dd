// Package router builds the gin engine from the application's modules.
package router

import (
	"net/http"
	"time"

	apphttp "tapquote_backend/internal/http"
	"tapquote_backend/platform/httpkit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const serviceName = "TapQuote API"

// New creates the engine with global middleware, health routes and every
// module's routes mounted.
func New(app *apphttp.App) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(app.Logger))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(cors.New(corsConfig(app.Config)))

	engine.GET("/", func(c *gin.Context) {
		httpkit.OK(c, gin.H{"service": serviceName, "status": "running", "version": app.Version})
	})
	health := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	}
	engine.GET("/health", health)
	engine.GET("/api/health", health)

	limiter := httpkit.NewIPRateLimiter(rate.Limit(app.Config.GetRateLimitRPS()), app.Config.GetRateLimitBurst(), app.Logger)

	rctx := &apphttp.RouterContext{
		Engine:    engine,
		V1:        engine.Group("/api/v1"),
		RateLimit: limiter.RateLimit(),
	}

	for _, module := range app.Modules {
		app.Logger.Debug("registering module routes", "module", module.Name())
		module.RegisterRoutes(rctx)
	}

	return engine
}

func corsConfig(cfg apphttp.RouterConfig) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", httpkit.HeaderRequestID},
		ExposeHeaders:    []string{"Content-Disposition", httpkit.HeaderRequestID},
		AllowCredentials: cfg.GetCORSAllowCreds(),
		MaxAge:           12 * time.Hour,
	}
	if cfg.GetCORSAllowAll() {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.GetCORSOrigins()
	}
	return c
}
