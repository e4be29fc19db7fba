// Package worker runs seeding jobs on a fixed set of partitioned workers.
// Jobs for the same partition execute in order; partitions run in parallel.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/Zoh007/WealthScore/logger"
	"go.uber.org/zap"
)

// Job is one unit of seeding work.
type Job func(ctx context.Context) error

type Pool struct {
	workers    int
	partitions []chan Job
	wg         sync.WaitGroup
	ctx        context.Context
	cancelFunc context.CancelFunc

	// stopMu orders submits against shutdown: Stop waits for in-flight
	// submits before closing the partitions, so Submit never sends on a
	// closed channel.
	stopMu  sync.RWMutex
	stopped bool

	mu            sync.RWMutex
	jobsProcessed uint64
	jobsFailed    uint64
	jobsDropped   uint64
	totalDuration uint64
}

func NewPool(workers int) *Pool {
	ctx, cancel := context.WithCancel(context.Background())
	partitions := make([]chan Job, workers)
	for i := range partitions {
		partitions[i] = make(chan Job, 100)
	}
	return &Pool{
		workers:    workers,
		partitions: partitions,
		ctx:        ctx,
		cancelFunc: cancel,
	}
}

func (p *Pool) Start() {
	logger.Get().Info("starting worker pool", zap.Int("workers", p.workers))
	for i := range p.partitions {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// Stop closes the partitions and waits for queued jobs to drain. Stopping an
// already-stopped pool is a no-op.
func (p *Pool) Stop() {
	p.stopMu.Lock()
	if p.stopped {
		p.stopMu.Unlock()
		return
	}
	p.stopped = true
	p.stopMu.Unlock()

	logger.Get().Info("stopping worker pool")
	for _, ch := range p.partitions {
		close(ch)
	}
	p.wg.Wait()
	p.cancelFunc()
}

// Submit queues a job on a partition. Jobs submitted after shutdown are
// dropped and counted.
func (p *Pool) Submit(job Job, partition int32) {
	if int(partition) >= len(p.partitions) || partition < 0 {
		p.mu.Lock()
		p.jobsDropped++
		p.mu.Unlock()
		logger.Get().Error("invalid partition number",
			zap.Int32("partition", partition),
			zap.Int("max_partitions", len(p.partitions)))
		return
	}

	p.stopMu.RLock()
	defer p.stopMu.RUnlock()
	if p.stopped {
		p.mu.Lock()
		p.jobsDropped++
		p.mu.Unlock()
		logger.Get().Warn("worker pool is stopped, job not submitted")
		return
	}
	p.partitions[partition] <- job
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	logger.Get().Debug("worker started", zap.Int("worker_id", id))

	for job := range p.partitions[id] {
		startTime := time.Now()
		err := job(p.ctx)

		p.mu.Lock()
		p.jobsProcessed++
		p.totalDuration += uint64(time.Since(startTime).Milliseconds())
		if err != nil {
			p.jobsFailed++
		}
		p.mu.Unlock()

		if err != nil {
			logger.Get().Error("seed job failed",
				zap.Int("worker_id", id),
				zap.Error(err))
		}
	}
	logger.Get().Debug("worker stopping", zap.Int("worker_id", id))
}

// Metrics returns a snapshot of the pool counters.
func (p *Pool) Metrics() map[string]any {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var avgMillis float64
	if p.jobsProcessed > 0 {
		avgMillis = float64(p.totalDuration) / float64(p.jobsProcessed)
	}
	return map[string]any{
		"jobs_processed":    p.jobsProcessed,
		"jobs_failed":       p.jobsFailed,
		"jobs_dropped":      p.jobsDropped,
		"avg_processing_ms": avgMillis,
		"active_workers":    p.workers,
	}
}
