package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Zoh007/WealthScore/models"
	"github.com/Zoh007/WealthScore/nessie"
	"github.com/gin-gonic/gin"
)

func billsRouter() *gin.Engine {
	router := gin.New()
	router.GET("/api/enterprise/bills", HandleEnterpriseBills)
	router.GET("/api/enterprise/bills-debug", HandleEnterpriseBillsDebug)
	router.GET("/api/enterprise/bill-events", HandleBillEvents)
	return router
}

func billsUpstream(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestEnterpriseBillsArrayPassthrough(t *testing.T) {
	upstream := billsUpstream(t, `[{"_id":"b1","payment_amount":99.50,"nickname":"Water"}]`, http.StatusOK)
	Bank = nessie.NewClient(upstream.URL, "test-key")

	w := httptest.NewRecorder()
	billsRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/enterprise/bills", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var bills []models.Bill
	if err := json.Unmarshal(w.Body.Bytes(), &bills); err != nil {
		t.Fatal(err)
	}
	if len(bills) != 1 || bills[0].Nickname != "Water" {
		t.Fatalf("bills = %+v", bills)
	}
}

func TestEnterpriseBillsWrapsSingleObject(t *testing.T) {
	upstream := billsUpstream(t, `{"_id":"b1","payment_amount":20,"nickname":"Lone Bill"}`, http.StatusOK)
	Bank = nessie.NewClient(upstream.URL, "test-key")

	w := httptest.NewRecorder()
	billsRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/enterprise/bills", nil))

	var bills []models.Bill
	if err := json.Unmarshal(w.Body.Bytes(), &bills); err != nil {
		t.Fatal(err)
	}
	if len(bills) != 1 || bills[0].ID != "b1" {
		t.Fatalf("bills = %+v", bills)
	}
}

func TestEnterpriseBillsSampleOnUnrecognizedPayload(t *testing.T) {
	upstream := billsUpstream(t, `"maintenance"`, http.StatusOK)
	Bank = nessie.NewClient(upstream.URL, "test-key")

	w := httptest.NewRecorder()
	billsRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/enterprise/bills", nil))

	var bills []models.Bill
	if err := json.Unmarshal(w.Body.Bytes(), &bills); err != nil {
		t.Fatal(err)
	}
	if len(bills) != 1 || bills[0].ID != "sample-enterprise-bill" {
		t.Fatalf("expected sample bill fallback, got %+v", bills)
	}
}

func TestEnterpriseBillsRelaysUpstreamStatus(t *testing.T) {
	upstream := billsUpstream(t, `{"message":"nope"}`, http.StatusUnauthorized)
	Bank = nessie.NewClient(upstream.URL, "test-key")

	w := httptest.NewRecorder()
	billsRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/enterprise/bills", nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want relayed 401", w.Code)
	}
}

func TestBillsDebugAlwaysIncludesSamples(t *testing.T) {
	// Upstream failure still yields the yesterday/today/tomorrow samples.
	upstream := billsUpstream(t, `{"message":"boom"}`, http.StatusInternalServerError)
	Bank = nessie.NewClient(upstream.URL, "test-key")

	w := httptest.NewRecorder()
	billsRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/enterprise/bills-debug", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var bills []models.Bill
	if err := json.Unmarshal(w.Body.Bytes(), &bills); err != nil {
		t.Fatal(err)
	}
	if len(bills) != 3 {
		t.Fatalf("got %d bills, want 3 samples", len(bills))
	}

	today := time.Now().Format("2006-01-02")
	dates := map[string]bool{}
	for _, b := range bills {
		dates[b.UpcomingPaymentDate] = true
	}
	if !dates[today] {
		t.Errorf("no sample dated today (%s): %v", today, dates)
	}
	if !dates[time.Now().AddDate(0, 0, 1).Format("2006-01-02")] {
		t.Errorf("no sample dated tomorrow: %v", dates)
	}
	if !dates[time.Now().AddDate(0, 0, -1).Format("2006-01-02")] {
		t.Errorf("no sample dated yesterday: %v", dates)
	}
}

func TestBillsDebugAppendsSamplesToUpstream(t *testing.T) {
	upstream := billsUpstream(t, `[{"_id":"real-1","payment_amount":10,"upcoming_payment_date":"2025-09-05"}]`, http.StatusOK)
	Bank = nessie.NewClient(upstream.URL, "test-key")

	w := httptest.NewRecorder()
	billsRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/enterprise/bills-debug", nil))

	var bills []models.Bill
	if err := json.Unmarshal(w.Body.Bytes(), &bills); err != nil {
		t.Fatal(err)
	}
	if len(bills) != 4 {
		t.Fatalf("got %d bills, want upstream + 3 samples", len(bills))
	}
	if bills[0].ID != "real-1" {
		t.Errorf("upstream bill should come first, got %+v", bills[0])
	}
}

func TestBillEventsEndpoint(t *testing.T) {
	upstream := billsUpstream(t, `[{"_id":"b1","payment_amount":145.99,"nickname":"Internet","upcoming_payment_date":"2025-09-15","recurring_date":15}]`, http.StatusOK)
	Bank = nessie.NewClient(upstream.URL, "test-key")

	w := httptest.NewRecorder()
	billsRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/enterprise/bill-events", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var events []models.CalendarEvent
	if err := json.Unmarshal(w.Body.Bytes(), &events); err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Kind != models.KindBill || events[0].Amount == nil || *events[0].Amount != -145.99 {
		t.Fatalf("event = %+v", events[0])
	}
}
