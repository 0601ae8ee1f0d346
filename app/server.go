// Package app assembles the SupplySense HTTP server.
package app

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"supplysense/api"
	_ "supplysense/api/actions"
	_ "supplysense/api/balance"
	_ "supplysense/api/fulfilment"
	_ "supplysense/api/graphql"
	_ "supplysense/api/insight"
	_ "supplysense/api/inventory"
	_ "supplysense/api/orders"
	_ "supplysense/api/params"
	"supplysense/config"
	"supplysense/core/auth"
)

// NewServer builds the echo instance with every registered module mounted.
func NewServer(db *gorm.DB) *echo.Echo {
	cfg := config.App()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())
	e.Use(requestDuration)

	e.GET("/health", healthHandler(db))

	apiGroup := e.Group("/api")
	if cfg.RateLimit > 0 {
		apiGroup.Use(rateLimiter(cfg.RateLimit))
	}
	apiGroup.Use(auth.Middleware(db))

	api.ApplyModules(apiGroup, db)
	api.ApplyRoutes(e, db)
	return e
}

func requestDuration(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		duration := time.Since(start).Milliseconds()
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
		if config.App().Debug {
			log.Printf("Request duration: %d ms", duration)
		}
		return err
	}
}

// rateLimiter limits /api per client IP; burst is twice the rate.
func rateLimiter(perSecond float64) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perSecond),
		Burst:     int(perSecond * 2),
		ExpiresIn: 3 * time.Minute,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "rate limit exceeded"})
		},
	})
}

func healthHandler(db *gorm.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		status := echo.Map{"status": "ok", "redis": config.RedisClient != nil, "modules": api.ModuleCount()}
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request().Context())
		}
		if err != nil {
			status["status"] = "degraded"
			status["db"] = err.Error()
			return c.JSON(http.StatusServiceUnavailable, status)
		}
		status["db"] = "ok"
		return c.JSON(http.StatusOK, status)
	}
}
