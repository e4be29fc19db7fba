package poller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Zoh007/WealthScore/models"
)

// mockBank returns canned data per dataset; any nil function errors.
type mockBank struct {
	accounts  func() ([]models.Account, error)
	deposits  func() ([]models.Transaction, error)
	purchases func() ([]models.Transaction, error)
	bills     func() ([]models.Transaction, error)
}

func (m *mockBank) Accounts(ctx context.Context, customerID string) ([]models.Account, error) {
	if m.accounts == nil {
		return nil, errors.New("accounts unavailable")
	}
	return m.accounts()
}

func (m *mockBank) Deposits(ctx context.Context, accountID string) ([]models.Transaction, error) {
	if m.deposits == nil {
		return nil, errors.New("deposits unavailable")
	}
	return m.deposits()
}

func (m *mockBank) Purchases(ctx context.Context, accountID string) ([]models.Transaction, error) {
	if m.purchases == nil {
		return nil, errors.New("purchases unavailable")
	}
	return m.purchases()
}

func (m *mockBank) Bills(ctx context.Context, accountID string) ([]models.Transaction, error) {
	if m.bills == nil {
		return nil, errors.New("bills unavailable")
	}
	return m.bills()
}

func healthyBank() *mockBank {
	return &mockBank{
		accounts: func() ([]models.Account, error) {
			return []models.Account{{ID: "a1", Balance: 6000, Type: "Checking"}}, nil
		},
		deposits: func() ([]models.Transaction, error) {
			return []models.Transaction{{Amount: 1000, Type: models.TypeDeposit}}, nil
		},
		purchases: func() ([]models.Transaction, error) {
			return []models.Transaction{{Amount: 200, Type: models.TypePurchase}}, nil
		},
		bills: func() ([]models.Transaction, error) {
			return []models.Transaction{{Amount: 150, Type: models.TypeBill}}, nil
		},
	}
}

func TestRefreshBuildsScoredSnapshot(t *testing.T) {
	p := New(healthyBank(), "cust", "acc", time.Minute)

	snapshot := p.Refresh(context.Background())

	if snapshot.WealthScore != 50 {
		t.Errorf("wealthScore = %d, want 50", snapshot.WealthScore)
	}
	if len(snapshot.Accounts) != 1 || len(snapshot.Deposits) != 1 ||
		len(snapshot.Purchases) != 1 || len(snapshot.Bills) != 1 {
		t.Errorf("snapshot sizes = %d/%d/%d/%d",
			len(snapshot.Accounts), len(snapshot.Deposits),
			len(snapshot.Purchases), len(snapshot.Bills))
	}
	if snapshot.LastUpdated.IsZero() {
		t.Error("lastUpdated not stamped")
	}
	if got := p.Snapshot(); got.WealthScore != snapshot.WealthScore {
		t.Errorf("stored snapshot score = %d", got.WealthScore)
	}
}

func TestRefreshDegradesFailedFetchesToEmpty(t *testing.T) {
	bank := healthyBank()
	bank.deposits = nil
	bank.bills = nil
	p := New(bank, "cust", "acc", time.Minute)

	snapshot := p.Refresh(context.Background())

	if snapshot.Deposits == nil || len(snapshot.Deposits) != 0 {
		t.Errorf("deposits = %v, want empty non-nil slice", snapshot.Deposits)
	}
	if snapshot.Bills == nil || len(snapshot.Bills) != 0 {
		t.Errorf("bills = %v, want empty non-nil slice", snapshot.Bills)
	}
	// Accounts and purchases still came through and still get scored.
	if len(snapshot.Accounts) != 1 {
		t.Errorf("accounts = %d, want 1", len(snapshot.Accounts))
	}
	if snapshot.WealthScore == 0 {
		t.Error("score should not collapse to zero when some fetches succeed")
	}
}

func TestOnUpdateCallbacksFire(t *testing.T) {
	p := New(healthyBank(), "cust", "acc", time.Minute)

	var mu sync.Mutex
	var got []int
	p.OnUpdate(func(s models.Snapshot) {
		mu.Lock()
		got = append(got, s.WealthScore)
		mu.Unlock()
	})

	p.Refresh(context.Background())
	p.Refresh(context.Background())

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 2 {
		t.Fatalf("callback fired %d times, want 2", len(got))
	}
	if got[0] != 50 {
		t.Errorf("callback score = %d, want 50", got[0])
	}
}

func TestStartStopLifecycle(t *testing.T) {
	p := New(healthyBank(), "cust", "acc", time.Minute)
	if p.IsRunning() {
		t.Fatal("poller running before Start")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)
	if !p.IsRunning() {
		t.Fatal("poller not running after Start")
	}

	// Second Start is a no-op, not a second loop.
	p.Start(ctx)

	// The immediate refresh lands shortly after Start.
	deadline := time.Now().Add(2 * time.Second)
	for p.Snapshot().LastUpdated.IsZero() {
		if time.Now().After(deadline) {
			t.Fatal("no snapshot after Start")
		}
		time.Sleep(10 * time.Millisecond)
	}

	p.Stop()
	if p.IsRunning() {
		t.Fatal("poller still running after Stop")
	}
	// Stopping twice is safe.
	p.Stop()
}

func TestIntervalFloor(t *testing.T) {
	p := New(healthyBank(), "cust", "acc", time.Second)
	if p.interval != minInterval {
		t.Errorf("interval = %v, want floor %v", p.interval, minInterval)
	}
	p = New(healthyBank(), "cust", "acc", 0)
	if p.interval != defaultInterval {
		t.Errorf("zero interval = %v, want default %v", p.interval, defaultInterval)
	}
}
