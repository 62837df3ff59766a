package app

import (
	"paymee-bridge/pkg/logger"
	"paymee-bridge/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(
		logger.CorrelationMiddleware(),
		logger.RequestLogger(),
		metrics.GinMiddleware(),
		gin.Recovery(),
	)

	return engine
}
