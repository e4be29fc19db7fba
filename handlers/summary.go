package handlers

import (
	"net/http"
	"time"

	"github.com/Zoh007/WealthScore/analytics"
	"github.com/Zoh007/WealthScore/models"
	"github.com/Zoh007/WealthScore/score"
	"github.com/gin-gonic/gin"
)

// HandleSummary returns the current snapshot with its score status, trend and
// month/week transaction rollups.
func HandleSummary(c *gin.Context) {
	snapshot := Snapshots.Snapshot()

	all := make([]models.Transaction, 0,
		len(snapshot.Deposits)+len(snapshot.Purchases)+len(snapshot.Bills))
	all = append(all, snapshot.Deposits...)
	all = append(all, snapshot.Purchases...)
	all = append(all, snapshot.Bills...)

	now := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"data":         snapshot,
		"status":       score.Status(snapshot.WealthScore),
		"trend":        score.Trend(snapshot.WealthScore),
		"monthSummary": analytics.MonthSummary(all, now.Year(), now.Month()),
		"weekSummary":  analytics.WeekSummary(all, now),
		"isPolling":    Snapshots.IsRunning(),
	})
}
