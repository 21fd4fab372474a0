package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-sky-client/internal/logger"
)

type refreshJob struct {
	session SessionManager
	ahead   time.Duration
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a refreshJob that keeps the access token fresh by
// refreshing the session once its expiry falls within the ahead window. The
// job is idle until Start is called.
func NewRefreshJob(session SessionManager, ahead time.Duration, logger *logger.Logger) RefreshJob {
	if ahead <= 0 {
		ahead = 2 * time.Minute
	}
	return &refreshJob{session: session, ahead: ahead, logger: logger}
}

// Start implements RefreshJob. It stops any previously running job, then
// launches a background goroutine that checks the token expiry every
// interval. If interval is zero or negative it defaults to 30 seconds. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *refreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
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

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.refreshIfNearExpiry(jobCtx)
			}
		}
	}()
}

func (j *refreshJob) refreshIfNearExpiry(ctx context.Context) {
	expiry, ok := j.session.AccessTokenExpiry()
	if !ok {
		return
	}

	if time.Until(expiry) > j.ahead {
		return
	}

	if err := j.session.Refresh(ctx); err != nil {
		// a failed refresh has already forced a sign-out and emitted the
		// absence update; nothing more to do here
		j.logger.Warn().Err(err).Msg("proactive session refresh failed")
	}
}

// Stop implements RefreshJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
