// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spySummaryService counts Snapshot calls.
type spySummaryService struct {
	calls atomic.Int64
	err   error
}

func (s *spySummaryService) Snapshot(context.Context) error {
	s.calls.Add(1)
	return s.err
}

func TestNewSummaryJob_ReturnsInterface(t *testing.T) {
	spy := &spySummaryService{}
	job := NewSummaryJob(spy)
	require.NotNil(t, job)

	var _ SummaryJob = job
}

func TestSummaryJob_Start_SnapshotsImmediatelyAndOnTicks(t *testing.T) {
	spy := &spySummaryService{}
	job := NewSummaryJob(spy)
	ctx := context.Background()

	// 10ms interval: one immediate snapshot plus ~5 ticks in 55ms
	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(4), "expected immediate snapshot plus ticks, got %d", got)
}

func TestSummaryJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spySummaryService{}
	job := NewSummaryJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	callsLater := spy.calls.Load()

	assert.Equal(t, callsAfterStop, callsLater, "no new snapshots after Stop")
}

func TestSummaryJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewSummaryJob(&spySummaryService{})

	assert.NotPanics(t, func() { job.Stop() })
}

func TestSummaryJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewSummaryJob(&spySummaryService{})

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestSummaryJob_SnapshotError_DoesNotStopJob(t *testing.T) {
	spy := &spySummaryService{err: assert.AnError}
	job := NewSummaryJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "snapshots keep running despite errors: %d", got)
}

func TestSummaryJob_ContextCancel_StopsJob(t *testing.T) {
	spy := &spySummaryService{}
	job := NewSummaryJob(spy)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
		// ok
	case <-time.After(1 * time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}
