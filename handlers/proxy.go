package handlers

import (
	"net/http"
	"strings"

	"github.com/Zoh007/WealthScore/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandleProxy forwards any unmatched /api path to the demo banking API with
// the server's key appended, relaying the upstream JSON verbatim. Registered
// as the router's NoRoute fallback so named routes always win. No retry, no
// backoff; the caller is not authenticated.
func HandleProxy(c *gin.Context) {
	if !strings.HasPrefix(c.Request.URL.Path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodPost {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
		return
	}
	path := strings.TrimPrefix(c.Request.URL.Path, "/api/")

	var body = c.Request.Body
	if c.Request.Method == http.MethodGet {
		body = nil
	}

	result, err := Bank.Proxy(c.Request.Context(), c.Request.Method, path, c.Request.URL.RawQuery, body)
	if err != nil {
		logger.Get().Error("proxy request failed",
			zap.String("path", path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if !result.OK {
		logger.Get().Error("upstream returned error status",
			zap.String("path", path), zap.Int("status", result.StatusCode))
		c.JSON(result.StatusCode, gin.H{"error": "Failed to fetch data from Nessie API"})
		return
	}

	contentType := result.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	c.Data(http.StatusOK, contentType, result.Body)
}
