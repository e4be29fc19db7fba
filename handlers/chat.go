package handlers

import (
	"net/http"
	"strings"

	"github.com/Zoh007/WealthScore/llm"
	"github.com/Zoh007/WealthScore/logger"
	"github.com/Zoh007/WealthScore/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const noResponseFallback = "I apologize, but I could not generate a response. Please try again."

// HandleChat forwards the user's message, conversation history and financial
// summary to the LLM and returns the reply. When the client doesn't send
// financial data the poller's current snapshot is used instead.
func HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Get().Error("error binding chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	snapshot := req.FinancialData
	if snapshot == nil && Snapshots != nil {
		current := Snapshots.Snapshot()
		if !current.LastUpdated.IsZero() {
			snapshot = &current
		}
	}

	messages := llm.BuildMessages(req, snapshot)
	response, err := Chat.Complete(c.Request.Context(), messages)
	if err != nil {
		logger.Get().Error("chat completion failed", zap.Error(err))
		if strings.Contains(err.Error(), "API key") || strings.Contains(err.Error(), "OPENAI_API_KEY") {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "OpenAI API key not configured properly"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process your request. Please try again."})
		return
	}
	if response == "" {
		response = noResponseFallback
	}
	c.JSON(http.StatusOK, models.ChatResponse{Response: response})
}
