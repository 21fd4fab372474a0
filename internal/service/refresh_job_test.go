// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-sky-client/internal/logger"
)

func TestRefreshJob_RefreshesWhenExpiryInsideWindow(t *testing.T) {
	session := signedInSession()
	session.expiry = time.Now().Add(time.Minute)
	session.expiryOK = true

	job := NewRefreshJob(session, 2*time.Minute, logger.Nop())
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.Greater(t, session.refreshed.Load(), int64(0), "expiry within the ahead window must trigger a refresh")
}

func TestRefreshJob_IdleWhenExpiryFarAway(t *testing.T) {
	session := signedInSession()
	session.expiry = time.Now().Add(time.Hour)
	session.expiryOK = true

	job := NewRefreshJob(session, 2*time.Minute, logger.Nop())
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(0), session.refreshed.Load())
}

func TestRefreshJob_IdleWithoutSession(t *testing.T) {
	session := &fakeSession{}

	job := NewRefreshJob(session, 2*time.Minute, logger.Nop())
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(0), session.refreshed.Load())
}

func TestRefreshJob_RefreshErrorDoesNotStopJob(t *testing.T) {
	session := signedInSession()
	session.expiry = time.Now().Add(time.Minute)
	session.expiryOK = true
	session.refreshErr = assert.AnError

	job := NewRefreshJob(session, 2*time.Minute, logger.Nop())
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, session.refreshed.Load(), int64(3), "refresh attempts continue despite errors")
}

func TestRefreshJob_StopBeforeStart_NoPanic(t *testing.T) {
	job := NewRefreshJob(&fakeSession{}, 0, logger.Nop())

	assert.NotPanics(t, func() { job.Stop() })
}
