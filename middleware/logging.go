package middleware

import (
	"time"

	"github.com/Zoh007/WealthScore/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccessLog writes one structured line per request.
func AccessLog(c *gin.Context) {
	start := time.Now()
	c.Next()

	logger.Get().Info("request",
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", c.Writer.Status()),
		zap.Duration("duration", time.Since(start)),
		zap.String("request_id", c.GetString(RequestIDKey)))
}
