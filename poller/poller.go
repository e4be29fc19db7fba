// Package poller keeps the financial snapshot current by re-fetching the four
// upstream datasets on a fixed interval. Each cycle rebuilds the snapshot
// wholesale and swaps it in atomically; readers never see a partial update.
package poller

import (
	"context"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/Zoh007/WealthScore/logger"
	"github.com/Zoh007/WealthScore/models"
	"github.com/Zoh007/WealthScore/score"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultInterval = 60 * time.Second
	minInterval     = 15 * time.Second
	cycleTimeout    = 30 * time.Second
)

// BankClient is the slice of the nessie client the poller needs.
type BankClient interface {
	Accounts(ctx context.Context, customerID string) ([]models.Account, error)
	Deposits(ctx context.Context, accountID string) ([]models.Transaction, error)
	Purchases(ctx context.Context, accountID string) ([]models.Transaction, error)
	Bills(ctx context.Context, accountID string) ([]models.Transaction, error)
}

type Poller struct {
	client     BankClient
	customerID string
	accountID  string
	interval   time.Duration

	mu       sync.RWMutex
	snapshot models.Snapshot
	running  bool
	cancel   context.CancelFunc
	done     chan struct{}

	onUpdate []func(models.Snapshot)
}

// New creates a poller. Intervals below the minimum are raised to it so a
// misconfigured value can't hammer the upstream.
func New(client BankClient, customerID, accountID string, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	if interval < minInterval {
		interval = minInterval
	}
	return &Poller{
		client:     client,
		customerID: customerID,
		accountID:  accountID,
		interval:   interval,
	}
}

// NewFromEnv reads CUSTOMER_ID, CHECKING_ACCOUNT_ID and POLL_INTERVAL_SECONDS.
func NewFromEnv(client BankClient) *Poller {
	interval := defaultInterval
	if raw := os.Getenv("POLL_INTERVAL_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			interval = time.Duration(secs) * time.Second
		}
	}
	return New(client, os.Getenv("CUSTOMER_ID"), os.Getenv("CHECKING_ACCOUNT_ID"), interval)
}

// OnUpdate registers a callback invoked with each fresh snapshot. Must be
// called before Start.
func (p *Poller) OnUpdate(fn func(models.Snapshot)) {
	p.onUpdate = append(p.onUpdate, fn)
}

// Start launches the polling loop: one immediate refresh, then one per
// interval. Calling Start on a running poller is a no-op. The loop stops when
// ctx is cancelled or Stop is called; cancellation aborts in-flight fetches.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		logger.Get().Warn("poller already running")
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	p.running = true
	p.cancel = cancel
	p.done = make(chan struct{})
	p.mu.Unlock()

	logger.Get().Info("starting financial data polling",
		zap.Duration("interval", p.interval))

	go func() {
		defer close(p.done)
		p.Refresh(ctx)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				p.Refresh(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop cancels the loop and any in-flight fetches, then waits for the loop
// goroutine to exit.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.running = false
	cancel, done := p.cancel, p.done
	p.mu.Unlock()

	cancel()
	<-done
	logger.Get().Info("financial data polling stopped")
}

// IsRunning reports whether the polling loop is active.
func (p *Poller) IsRunning() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.running
}

// Snapshot returns the current snapshot.
func (p *Poller) Snapshot() models.Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshot
}

// Refresh fetches all four datasets in parallel and swaps in the rebuilt
// snapshot. Individual fetch failures degrade to empty slices; the cycle as a
// whole always produces a snapshot.
func (p *Poller) Refresh(ctx context.Context) models.Snapshot {
	ctx, cancel := context.WithTimeout(ctx, cycleTimeout)
	defer cancel()

	var (
		accounts  []models.Account
		deposits  []models.Transaction
		purchases []models.Transaction
		bills     []models.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if accounts, err = p.client.Accounts(gctx, p.customerID); err != nil {
			logger.Get().Error("error fetching accounts", zap.Error(err))
			accounts = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if deposits, err = p.client.Deposits(gctx, p.accountID); err != nil {
			logger.Get().Error("error fetching deposits", zap.Error(err))
			deposits = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if purchases, err = p.client.Purchases(gctx, p.accountID); err != nil {
			logger.Get().Error("error fetching purchases", zap.Error(err))
			purchases = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if bills, err = p.client.Bills(gctx, p.accountID); err != nil {
			logger.Get().Error("error fetching bills", zap.Error(err))
			bills = nil
		}
		return nil
	})
	g.Wait()

	result := score.Calculate(accounts, deposits, purchases)
	snapshot := models.Snapshot{
		Accounts:    emptyIfNil(accounts),
		Deposits:    emptyTxIfNil(deposits),
		Purchases:   emptyTxIfNil(purchases),
		Bills:       emptyTxIfNil(bills),
		WealthScore: result.Score,
		Breakdown:   result.Breakdown,
		LastUpdated: time.Now(),
	}

	p.mu.Lock()
	p.snapshot = snapshot
	p.mu.Unlock()

	logger.Get().Debug("snapshot refreshed",
		zap.Int("accounts", len(snapshot.Accounts)),
		zap.Int("deposits", len(snapshot.Deposits)),
		zap.Int("purchases", len(snapshot.Purchases)),
		zap.Int("bills", len(snapshot.Bills)),
		zap.Int("wealth_score", snapshot.WealthScore))

	for _, fn := range p.onUpdate {
		fn(snapshot)
	}
	return snapshot
}

func emptyIfNil(accounts []models.Account) []models.Account {
	if accounts == nil {
		return []models.Account{}
	}
	return accounts
}

func emptyTxIfNil(txns []models.Transaction) []models.Transaction {
	if txns == nil {
		return []models.Transaction{}
	}
	return txns
}
