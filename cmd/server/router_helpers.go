package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"mise.backend/internal/config"
	"mise.backend/internal/interfaces/http/middleware"
	"mise.backend/internal/metrics"
)

const (
	serviceName    = "mise-backend"
	serviceVersion = "0.1.0"
)

func newRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(metrics.GinMiddleware())

	applyCORSMiddleware(r, cfg.Server.CORSOrigins)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, buildRouteDeps(cfg, db))
	return r
}

func applyCORSMiddleware(r *gin.Engine, origins []string) {
	r.Use(middleware.CORSMiddleware(origins))
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
			"version": serviceVersion,
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", metrics.Handler())
}
