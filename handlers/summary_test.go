package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Zoh007/WealthScore/models"
	"github.com/gin-gonic/gin"
)

func TestSummaryEndpoint(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	Snapshots = &fakeSnapshots{
		snapshot: models.Snapshot{
			Accounts:    []models.Account{{ID: "a1", Balance: 6000}},
			Deposits:    []models.Transaction{{Amount: 1000, Type: models.TypeDeposit, Date: today}},
			Purchases:   []models.Transaction{{Amount: 200, Type: models.TypePurchase, Date: today}},
			WealthScore: 65,
			LastUpdated: time.Now(),
		},
		running: true,
	}
	t.Cleanup(func() { Snapshots = nil })

	router := gin.New()
	router.GET("/api/summary", HandleSummary)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/summary", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Status    string `json:"status"`
		Trend     int    `json:"trend"`
		IsPolling bool   `json:"isPolling"`
		Data      struct {
			WealthScore int `json:"wealthScore"`
		} `json:"data"`
		MonthSummary struct {
			Count int `json:"count"`
		} `json:"monthSummary"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "Good" {
		t.Errorf("status = %q, want Good", body.Status)
	}
	if body.Trend != 2 {
		t.Errorf("trend = %d, want 2", body.Trend)
	}
	if !body.IsPolling {
		t.Error("isPolling should be true")
	}
	if body.Data.WealthScore != 65 {
		t.Errorf("wealthScore = %d, want 65", body.Data.WealthScore)
	}
	if body.MonthSummary.Count != 2 {
		t.Errorf("month summary count = %d, want 2", body.MonthSummary.Count)
	}
}

func TestPlanningProgressEndpoint(t *testing.T) {
	router := gin.New()
	router.POST("/api/planning/progress", HandlePlanningProgress)

	target := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	w := doJSON(t, router, http.MethodPost, "/api/planning/progress", models.PlanningRequest{
		Goals: []models.Goal{
			{Name: "Emergency Fund", Amount: 6000, TargetDate: target},
			{Name: "House", Amount: 500000, TargetDate: target},
		},
		MonthlyIncome: 5000,
		SavingsRate:   20,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var body struct {
		Results []models.GoalProgress `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(body.Results))
	}
	if body.Results[0].Status != "on-track" {
		t.Errorf("emergency fund status = %q, want on-track", body.Results[0].Status)
	}
	if body.Results[1].Status != "at-risk" {
		t.Errorf("house status = %q, want at-risk", body.Results[1].Status)
	}
}

func TestPlanningProgressRejectsBadJSON(t *testing.T) {
	router := gin.New()
	router.POST("/api/planning/progress", HandlePlanningProgress)

	req := httptest.NewRequest(http.MethodPost, "/api/planning/progress", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
