// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-sky-client/internal/config"
	"github.com/MKhiriev/go-sky-client/internal/logger"
	"github.com/MKhiriev/go-sky-client/models"
	"github.com/go-resty/resty/v2"
)

type xrpcAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewXRPCAdapter constructs the HTTP/XRPC implementation of
// [ServiceAdapter]. It normalises and validates the base URL from
// svcCfg.Endpoint and configures the underlying resty client with the
// resolved base URL and request timeout.
//
// Returns an error if svcCfg.Endpoint is empty or cannot be parsed as a
// valid URL.
func NewXRPCAdapter(svcCfg config.Service, logger *logger.Logger) (ServiceAdapter, error) {
	baseURL, err := normalizeBaseURL(svcCfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid service endpoint: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(svcCfg.RequestTimeout)

	return &xrpcAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServiceAdapter]. It stores token
// (whitespace-trimmed) for use in the Authorization header of all subsequent
// authenticated requests.
func (a *xrpcAdapter) SetToken(token string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.token = strings.TrimSpace(token)
}

// Token implements [ServiceAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (a *xrpcAdapter) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token
}

// CreateSession implements [ServiceAdapter]. It POSTs the credentials to
// com.atproto.server.createSession and returns the issued configuration.
// The adapter does NOT store the access token itself; ownership of the
// credential bundle belongs to the session manager.
func (a *xrpcAdapter) CreateSession(ctx context.Context, identifier, password string) (models.SessionConfig, error) {
	var sr models.SessionResponse

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateSessionRequest{Identifier: identifier, Password: password}).
		SetResult(&sr).
		Post("/xrpc/com.atproto.server.createSession")
	if err != nil {
		return models.SessionConfig{}, fmt.Errorf("create session request: %w", err)
	}
	if err = mapXRPCError(resp); err != nil {
		return models.SessionConfig{}, err
	}

	return a.sessionConfig(sr), nil
}

// RefreshSession implements [ServiceAdapter]. It POSTs to
// com.atproto.server.refreshSession with refreshJWT as the bearer
// credential and returns the replacement configuration.
func (a *xrpcAdapter) RefreshSession(ctx context.Context, refreshJWT string) (models.SessionConfig, error) {
	var sr models.SessionResponse

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+refreshJWT).
		SetResult(&sr).
		Post("/xrpc/com.atproto.server.refreshSession")
	if err != nil {
		return models.SessionConfig{}, fmt.Errorf("refresh session request: %w", err)
	}
	if err = mapXRPCError(resp); err != nil {
		return models.SessionConfig{}, err
	}

	return a.sessionConfig(sr), nil
}

// DeleteSession implements [ServiceAdapter]. It POSTs to
// com.atproto.server.deleteSession with refreshJWT as the bearer credential.
func (a *xrpcAdapter) DeleteSession(ctx context.Context, refreshJWT string) error {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+refreshJWT).
		Post("/xrpc/com.atproto.server.deleteSession")
	if err != nil {
		return fmt.Errorf("delete session request: %w", err)
	}

	return mapXRPCError(resp)
}

// GetTimeline implements [ServiceAdapter].
func (a *xrpcAdapter) GetTimeline(ctx context.Context, cursor string, limit int) ([]models.FeedItem, string, error) {
	return a.feedQuery(ctx, "/xrpc/app.bsky.feed.getTimeline", map[string]string{}, cursor, limit)
}

// GetAuthorFeed implements [ServiceAdapter].
func (a *xrpcAdapter) GetAuthorFeed(ctx context.Context, actor, cursor string, limit int) ([]models.FeedItem, string, error) {
	return a.feedQuery(ctx, "/xrpc/app.bsky.feed.getAuthorFeed", map[string]string{"actor": actor}, cursor, limit)
}

func (a *xrpcAdapter) feedQuery(ctx context.Context, path string, params map[string]string, cursor string, limit int) ([]models.FeedItem, string, error) {
	req := a.authedRequest(ctx).SetQueryParams(params)
	if cursor != "" {
		req.SetQueryParam("cursor", cursor)
	}
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, "", fmt.Errorf("feed request: %w", err)
	}
	if err = mapXRPCError(resp); err != nil {
		return nil, "", err
	}

	var fr models.FeedResponse
	if err = json.Unmarshal(resp.Body(), &fr); err != nil {
		return nil, "", fmt.Errorf("decode feed response: %w", err)
	}

	items := make([]models.FeedItem, 0, len(fr.Feed))
	for _, entry := range fr.Feed {
		items = append(items, mapFeedItem(entry))
	}
	return items, fr.Cursor, nil
}

// GetProfile implements [ServiceAdapter].
func (a *xrpcAdapter) GetProfile(ctx context.Context, actor string) (models.Profile, error) {
	resp, err := a.authedRequest(ctx).
		SetQueryParam("actor", actor).
		Get("/xrpc/app.bsky.actor.getProfile")
	if err != nil {
		return models.Profile{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapXRPCError(resp); err != nil {
		return models.Profile{}, err
	}

	var pv models.ProfileView
	if err = json.Unmarshal(resp.Body(), &pv); err != nil {
		return models.Profile{}, fmt.Errorf("decode profile response: %w", err)
	}

	return models.Profile{
		DID:            pv.DID,
		Handle:         pv.Handle,
		DisplayName:    pv.DisplayName,
		Description:    pv.Description,
		FollowersCount: pv.FollowersCount,
		FollowsCount:   pv.FollowsCount,
		PostsCount:     pv.PostsCount,
	}, nil
}

// ListNotifications implements [ServiceAdapter].
func (a *xrpcAdapter) ListNotifications(ctx context.Context, cursor string, limit int) ([]models.Notification, string, error) {
	req := a.authedRequest(ctx)
	if cursor != "" {
		req.SetQueryParam("cursor", cursor)
	}
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	resp, err := req.Get("/xrpc/app.bsky.notification.listNotifications")
	if err != nil {
		return nil, "", fmt.Errorf("list notifications request: %w", err)
	}
	if err = mapXRPCError(resp); err != nil {
		return nil, "", err
	}

	var nr models.NotificationsResponse
	if err = json.Unmarshal(resp.Body(), &nr); err != nil {
		return nil, "", fmt.Errorf("decode notifications response: %w", err)
	}

	items := make([]models.Notification, 0, len(nr.Notifications))
	for _, nv := range nr.Notifications {
		items = append(items, models.Notification{
			URI:           nv.URI,
			CID:           nv.CID,
			Author:        models.Author(nv.Author),
			Reason:        nv.Reason,
			ReasonSubject: nv.ReasonSubject,
			IsRead:        nv.IsRead,
			IndexedAt:     nv.IndexedAt,
		})
	}
	return items, nr.Cursor, nil
}

// GetUnreadCount implements [ServiceAdapter].
func (a *xrpcAdapter) GetUnreadCount(ctx context.Context) (int64, error) {
	resp, err := a.authedRequest(ctx).Get("/xrpc/app.bsky.notification.getUnreadCount")
	if err != nil {
		return 0, fmt.Errorf("get unread count request: %w", err)
	}
	if err = mapXRPCError(resp); err != nil {
		return 0, err
	}

	var ur models.UnreadCountResponse
	if err = json.Unmarshal(resp.Body(), &ur); err != nil {
		return 0, fmt.Errorf("decode unread count response: %w", err)
	}
	return ur.Count, nil
}

// CreateRecord implements [ServiceAdapter].
func (a *xrpcAdapter) CreateRecord(ctx context.Context, did, collection string, record any) (string, error) {
	var cr models.CreateRecordResponse

	resp, err := a.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateRecordRequest{Repo: did, Collection: collection, Record: record}).
		SetResult(&cr).
		Post("/xrpc/com.atproto.repo.createRecord")
	if err != nil {
		return "", fmt.Errorf("create record request: %w", err)
	}
	if err = mapXRPCError(resp); err != nil {
		return "", err
	}

	return cr.URI, nil
}

// DeleteRecord implements [ServiceAdapter]. The record is addressed by its
// AT-URI; the URI's authority must match did, otherwise the call is refused
// locally.
func (a *xrpcAdapter) DeleteRecord(ctx context.Context, did, recordURI string) error {
	parsed, err := ParseATURI(recordURI)
	if err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	if parsed.Authority != did {
		return fmt.Errorf("delete record: uri authority %q does not match repo %q", parsed.Authority, did)
	}

	resp, err := a.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DeleteRecordRequest{Repo: did, Collection: parsed.Collection, RKey: parsed.RKey}).
		Post("/xrpc/com.atproto.repo.deleteRecord")
	if err != nil {
		return fmt.Errorf("delete record request: %w", err)
	}

	return mapXRPCError(resp)
}

func (a *xrpcAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := a.client.R().SetContext(ctx)
	if token := a.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func (a *xrpcAdapter) sessionConfig(sr models.SessionResponse) models.SessionConfig {
	return models.SessionConfig{
		DID:        sr.DID,
		Handle:     sr.Handle,
		Endpoint:   a.client.BaseURL,
		AccessJWT:  sr.AccessJWT,
		RefreshJWT: sr.RefreshJWT,
	}
}

func mapFeedItem(entry models.FeedViewPost) models.FeedItem {
	var record models.PostRecordView
	_ = json.Unmarshal(entry.Post.Record, &record)

	item := models.FeedItem{
		Post: models.Post{
			URI:         entry.Post.URI,
			CID:         entry.Post.CID,
			Author:      models.Author(entry.Post.Author),
			Text:        record.Text,
			CreatedAt:   record.CreatedAt,
			IndexedAt:   entry.Post.IndexedAt,
			ReplyCount:  entry.Post.ReplyCount,
			RepostCount: entry.Post.RepostCount,
			LikeCount:   entry.Post.LikeCount,
			Viewer: models.ViewerState{
				LikeURI:   entry.Post.Viewer.Like,
				RepostURI: entry.Post.Viewer.Repost,
			},
		},
	}
	if entry.Reason != nil && entry.Reason.Type == "app.bsky.feed.defs#reasonRepost" {
		item.RepostedBy = entry.Reason.By.Handle
	}
	return item
}
