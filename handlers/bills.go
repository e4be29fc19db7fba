package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Zoh007/WealthScore/analytics"
	"github.com/Zoh007/WealthScore/logger"
	"github.com/Zoh007/WealthScore/models"
	"github.com/Zoh007/WealthScore/nessie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const dateOnly = "2006-01-02"

// HandleEnterpriseBills proxies the enterprise bills feed, always returning
// an array: upstream objects are wrapped, unrecognizable payloads are
// replaced by a single sample bill so the UI has something to render.
func HandleEnterpriseBills(c *gin.Context) {
	bills, err := Bank.EnterpriseBills(c.Request.Context())
	if err != nil {
		var statusErr *nessie.StatusError
		if errors.As(err, &statusErr) {
			logger.Get().Error("enterprise bills upstream error",
				zap.Int("status", statusErr.Status))
			c.JSON(statusErr.Status, gin.H{"error": "Failed to fetch bills from Nessie API"})
			return
		}
		logger.Get().Error("enterprise bills request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if bills == nil {
		bills = []models.Bill{{
			ID:                  "sample-enterprise-bill",
			PaymentAmount:       145.99,
			Nickname:            "Sample Enterprise Bill",
			UpcomingPaymentDate: time.Now().Format(dateOnly),
			Payee:               "Sample Service Provider",
			Status:              "pending",
			RecurringDate:       15,
		}}
	}
	c.JSON(http.StatusOK, bills)
}

// sampleBills returns synthetic bills dated yesterday, today and tomorrow so
// the calendar UI always has entries around the current date.
func sampleBills(now time.Time) []models.Bill {
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	tomorrowRecurring := (now.Day() + 1) % 30
	if tomorrowRecurring == 0 {
		tomorrowRecurring = 30
	}
	yesterdayRecurring := now.Day() - 1
	if yesterdayRecurring == 0 {
		yesterdayRecurring = 30
	}

	return []models.Bill{
		{
			ID:                  "sample-bill-today",
			PaymentAmount:       1120.50,
			UpcomingPaymentDate: now.Format(dateOnly),
			Nickname:            "Roof Repairs",
			RecurringDate:       now.Day(),
			Status:              "pending",
			Payee:               "Sample Service Today",
		},
		{
			ID:                  "sample-bill-tomorrow",
			PaymentAmount:       75.25,
			UpcomingPaymentDate: tomorrow.Format(dateOnly),
			Nickname:            "Tomorrow's Bill",
			RecurringDate:       tomorrowRecurring,
			Status:              "pending",
			Payee:               "Sample Service Tomorrow",
		},
		{
			ID:                  "sample-bill-yesterday",
			PaymentAmount:       2245.99,
			UpcomingPaymentDate: yesterday.Format(dateOnly),
			Nickname:            "Monthly Rent",
			RecurringDate:       yesterdayRecurring,
			Status:              "executed",
			Payee:               "Sample Service Yesterday",
		},
	}
}

// HandleEnterpriseBillsDebug returns the upstream bills plus the synthetic
// yesterday/today/tomorrow samples. The samples come back even when the
// upstream call fails, so the endpoint always yields at least three bills.
func HandleEnterpriseBillsDebug(c *gin.Context) {
	bills, err := Bank.EnterpriseBills(c.Request.Context())
	if err != nil {
		logger.Get().Warn("enterprise bills fetch failed, serving samples only", zap.Error(err))
		bills = nil
	}
	c.JSON(http.StatusOK, append(bills, sampleBills(time.Now())...))
}

// HandleBillEvents converts the enterprise bills feed into calendar events.
func HandleBillEvents(c *gin.Context) {
	bills, err := Bank.EnterpriseBills(c.Request.Context())
	if err != nil {
		logger.Get().Error("enterprise bills request failed", zap.Error(err))
		bills = nil
	}
	c.JSON(http.StatusOK, analytics.BillsToEvents(bills))
}
