package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/helping-hands/discovery/config"
	"github.com/helping-hands/discovery/internal/middleware"
	"github.com/helping-hands/discovery/pkg/response"
)

// routeRegistrar mounts a package's routes under /api.
type routeRegistrar interface {
	Register(g gin.IRoutes)
}

func newRouter(cfg config.ServerConfig, logger *zap.Logger, handlers ...routeRegistrar) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.AllowedOrigins()))
	router.Use(middleware.Logger(logger))

	router.GET("/health", func(c *gin.Context) { response.OK(c, gin.H{"status": "ok"}) })

	api := router.Group("/api")
	for _, h := range handlers {
		h.Register(api)
	}
	return router
}
