package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Pinger is anything the readiness probe should check.
type Pinger func(ctx context.Context) error

type RouterConfig struct {
	AllowedOrigins []string
	Readiness      map[string]Pinger
}

func NewRouter(cfg RouterConfig, log *zerolog.Logger, bookings *BookingHandler, experiences *ExperienceHandler, promos *PromoHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log), cors.New(corsConfig(cfg.AllowedOrigins)))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/readyz", readiness(cfg.Readiness))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/experiences", experiences.List)
	r.GET("/experiences/:id", experiences.Get)
	r.GET("/experiences/:id/quote", experiences.Quote)
	r.POST("/promo/validate", promos.Validate)
	r.POST("/bookings", bookings.CreateBooking)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func readiness(checks map[string]Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		for name, ping := range checks {
			if err := ping(ctx); err != nil {
				c.String(http.StatusServiceUnavailable, name+" not ready")
				return
			}
		}

		c.String(http.StatusOK, "ready")
	}
}

func requestLogger(log *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ev := log.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			ev = log.Warn()
		}

		ev.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
