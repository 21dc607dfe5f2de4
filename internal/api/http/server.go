// Package http 提供HTTP API服务装配
package http

import (
	"github.com/gin-gonic/gin"
	"github.com/luoshu/v1/internal/api/http/handlers"
	"github.com/luoshu/v1/pkg/interfaces/infrastructure/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter 创建并装配HTTP路由
func NewRouter(assetHandler *handlers.AssetHandler, logger log.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())

	// 健康检查
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Prometheus指标
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	assetHandler.RegisterRoutes(router)

	logger.Info("HTTP路由装配完成")
	return router
}
