package service

import (
	"context"
	"sync"
	"time"
)

type summaryJob struct {
	summaryService SummaryService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSummaryJob creates a summaryJob that calls summaryService.Snapshot on a
// ticker. The job is idle until Start is called.
func NewSummaryJob(summaryService SummaryService) SummaryJob {
	return &summaryJob{summaryService: summaryService}
}

// Start implements SummaryJob. It stops any previously running job, then
// launches a background goroutine that snapshots every interval. If interval
// is zero or negative it defaults to 5 minutes. The goroutine exits when ctx
// is cancelled or Stop is called.
func (j *summaryJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		// one snapshot right away so the widget is never minutes stale
		_ = j.summaryService.Snapshot(jobCtx)

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = j.summaryService.Snapshot(jobCtx)
			}
		}
	}()
}

// Stop implements SummaryJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *summaryJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
