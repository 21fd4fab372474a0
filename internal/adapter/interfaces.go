// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter implements the XRPC transport facade for the AT Protocol
// HTTP API. It is the only package that talks to the network; everything
// above it works with the value records in the models package.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-sky-client/models"
)

// ServiceAdapter is the full XRPC surface the client consumes. One adapter
// is bound to one service endpoint; the bearer token is swapped by the
// session manager on login, refresh, and logout.
type ServiceAdapter interface {
	// SetToken stores the access token sent as the bearer credential on
	// all subsequent authenticated requests. An empty token clears it.
	SetToken(token string)

	// Token returns the bearer token currently held by the adapter.
	Token() string

	// CreateSession performs com.atproto.server.createSession with an
	// account identifier (handle, DID, or email) and an app password.
	CreateSession(ctx context.Context, identifier, password string) (models.SessionConfig, error)

	// RefreshSession performs com.atproto.server.refreshSession using the
	// given refresh token as the bearer credential.
	RefreshSession(ctx context.Context, refreshJWT string) (models.SessionConfig, error)

	// DeleteSession revokes the session on the server using the refresh
	// token as the bearer credential.
	DeleteSession(ctx context.Context, refreshJWT string) error

	// GetTimeline performs app.bsky.feed.getTimeline. An empty cursor
	// requests the newest page; the returned cursor is empty when no
	// further pages exist.
	GetTimeline(ctx context.Context, cursor string, limit int) ([]models.FeedItem, string, error)

	// GetAuthorFeed performs app.bsky.feed.getAuthorFeed for actor
	// (handle or DID).
	GetAuthorFeed(ctx context.Context, actor, cursor string, limit int) ([]models.FeedItem, string, error)

	// GetProfile performs app.bsky.actor.getProfile for actor.
	GetProfile(ctx context.Context, actor string) (models.Profile, error)

	// ListNotifications performs app.bsky.notification.listNotifications.
	ListNotifications(ctx context.Context, cursor string, limit int) ([]models.Notification, string, error)

	// GetUnreadCount performs app.bsky.notification.getUnreadCount.
	GetUnreadCount(ctx context.Context) (int64, error)

	// CreateRecord performs com.atproto.repo.createRecord in the given
	// collection of the repo identified by did, returning the AT-URI of
	// the created record.
	CreateRecord(ctx context.Context, did, collection string, record any) (string, error)

	// DeleteRecord performs com.atproto.repo.deleteRecord for the record
	// identified by its AT-URI. The URI's authority must match did.
	DeleteRecord(ctx context.Context, did, recordURI string) error
}
