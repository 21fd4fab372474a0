// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-sky-client/internal/adapter"
	"github.com/MKhiriev/go-sky-client/internal/logger"
	"github.com/MKhiriev/go-sky-client/models"
)

// Manager is the single owner of the session configuration. All mutations
// go through it; every mutation replaces the whole bundle atomically and is
// published to subscribers.
type Manager struct {
	adapter adapter.ServiceAdapter
	vault   *Vault // nil when session persistence is disabled
	logger  *logger.Logger

	mu      sync.RWMutex
	current *models.SessionConfig

	stream *broadcaster
}

// NewManager constructs a Manager. vault may be nil, in which case sessions
// are not persisted and Restore returns ErrNoVault.
func NewManager(serviceAdapter adapter.ServiceAdapter, vault *Vault, logger *logger.Logger) *Manager {
	return &Manager{
		adapter: serviceAdapter,
		vault:   vault,
		logger:  logger,
		stream:  newBroadcaster(),
	}
}

// Subscribe registers a new stream subscriber. Every update emitted after
// the call is delivered to the returned channel; cancel detaches the
// subscriber and closes the channel.
func (m *Manager) Subscribe() (<-chan Update, func()) {
	return m.stream.subscribe()
}

// Current returns a copy of the current configuration, or nil when no
// session is held.
func (m *Manager) Current() *models.SessionConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return nil
	}
	cfg := *m.current
	return &cfg
}

// AccessTokenExpiry returns the expiry of the current access token. ok is
// false when no session is held or the token carries no expiry.
func (m *Manager) AccessTokenExpiry() (expiry time.Time, ok bool) {
	cfg := m.Current()
	if cfg == nil {
		return time.Time{}, false
	}

	exp, err := accessTokenExpiry(cfg.AccessJWT)
	if err != nil {
		m.logger.Warn().Err(err).Msg("cannot parse access token expiry")
		return time.Time{}, false
	}
	return exp, true
}

// Login performs com.atproto.server.createSession and installs the issued
// configuration. On success the update stream emits ReasonLogin.
func (m *Manager) Login(ctx context.Context, identifier, password string) error {
	cfg, err := m.adapter.CreateSession(ctx, identifier, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	m.install(ctx, cfg, ReasonLogin)
	return nil
}

// Restore loads a previously persisted configuration from the vault without
// touching the network. On success the update stream emits ReasonRestore.
func (m *Manager) Restore(ctx context.Context) error {
	if m.vault == nil {
		return ErrNoVault
	}

	cfg, err := m.vault.Load(ctx)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	m.install(ctx, cfg, ReasonRestore)
	return nil
}

// Refresh exchanges the refresh token for a fresh bundle. Any failure,
// whether transport or a revoked token, clears the local configuration and
// emits an absence update: stale credentials are never kept.
func (m *Manager) Refresh(ctx context.Context) error {
	current := m.Current()
	if current == nil {
		return ErrNotAuthenticated
	}

	cfg, err := m.adapter.RefreshSession(ctx, current.RefreshJWT)
	if err != nil {
		m.logger.Warn().Err(err).Msg("session refresh failed, forcing sign-out")
		m.clear(ctx, ReasonExpired)
		return fmt.Errorf("refresh session: %w", err)
	}

	m.install(ctx, cfg, ReasonRefresh)
	return nil
}

// Logout revokes the session remotely and clears it locally. Local state is
// authoritative: the configuration is cleared and an absence update emitted
// even when the remote revoke fails, and Logout itself never returns a
// transport error.
func (m *Manager) Logout(ctx context.Context) {
	current := m.Current()
	if current != nil {
		if err := m.adapter.DeleteSession(ctx, current.RefreshJWT); err != nil {
			m.logger.Warn().Err(err).Msg("remote session revoke failed, clearing local state anyway")
		}
	}

	m.clear(ctx, ReasonLogout)
}

// Close shuts the update stream down, closing all subscriber channels.
func (m *Manager) Close() {
	m.stream.close()
}

func (m *Manager) install(ctx context.Context, cfg models.SessionConfig, reason Reason) {
	m.mu.Lock()
	m.current = &cfg
	m.mu.Unlock()

	m.adapter.SetToken(cfg.AccessJWT)

	if m.vault != nil {
		if err := m.vault.Save(ctx, cfg); err != nil {
			m.logger.Warn().Err(err).Msg("cannot persist session to vault")
		}
	}

	emitted := cfg
	m.stream.publish(Update{Config: &emitted, Reason: reason})
}

func (m *Manager) clear(ctx context.Context, reason Reason) {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()

	m.adapter.SetToken("")

	if m.vault != nil {
		if err := m.vault.Delete(ctx); err != nil {
			m.logger.Warn().Err(err).Msg("cannot delete session from vault")
		}
	}

	m.stream.publish(Update{Config: nil, Reason: reason})
}
