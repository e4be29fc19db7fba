package handlers

import (
	"net/http"
	"time"

	"github.com/Zoh007/WealthScore/logger"
	"github.com/Zoh007/WealthScore/models"
	"github.com/Zoh007/WealthScore/score"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandlePlanningProgress classifies each submitted goal against the savings
// the given income and rate produce. Stateless: goals live in the browser.
func HandlePlanningProgress(c *gin.Context) {
	var req models.PlanningRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Get().Error("error binding planning request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results := score.EvaluateGoals(req.Goals, req.MonthlyIncome, req.SavingsRate, time.Now())
	c.JSON(http.StatusOK, gin.H{"results": results})
}
