package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/nextgenxp/nextgenxp-backend/config"
	"github.com/nextgenxp/nextgenxp-backend/internal/api/http/middleware"
	"github.com/nextgenxp/nextgenxp-backend/internal/api/http/routes"
	"github.com/nextgenxp/nextgenxp-backend/internal/projects/repository"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	CORS        config.CORSConfig
	RateLimit   config.RateLimitConfig
	Store       repository.Store
	Logger      *zap.Logger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.Logger))
	r.Use(middleware.MetricsMiddleware())
	r.Use(cors.New(corsConfig(dep.CORS)))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.Use(middleware.RateLimitMiddleware(dep.RateLimit.RPS, dep.RateLimit.Burst))

	routes.RegisterAPI(r, routes.APIDeps{
		ServiceName: dep.ServiceName,
		Version:     dep.Version,
		Store:       dep.Store,
	})

	return r
}

func corsConfig(c config.CORSConfig) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	cfg.AllowHeaders = append(cfg.AllowHeaders, middleware.RequestIDHeader)
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	if c.AllowAll() {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = c.AllowOrigins
	}
	return cfg
}
