package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-sky-client/models"
)

// fakeSession is a hand-rolled SessionManager for service tests.
type fakeSession struct {
	cfg       *models.SessionConfig
	expiry    time.Time
	expiryOK  bool
	refreshed atomic.Int64

	refreshErr error
	onRefresh  func()
}

func signedInSession() *fakeSession {
	return &fakeSession{
		cfg: &models.SessionConfig{
			DID:        "did:plc:alice",
			Handle:     "alice.bsky.social",
			AccessJWT:  "access-1",
			RefreshJWT: "refresh-1",
		},
	}
}

func (s *fakeSession) Current() *models.SessionConfig {
	if s.cfg == nil {
		return nil
	}
	cfg := *s.cfg
	return &cfg
}

func (s *fakeSession) Refresh(context.Context) error {
	s.refreshed.Add(1)
	if s.onRefresh != nil {
		s.onRefresh()
	}
	return s.refreshErr
}

func (s *fakeSession) AccessTokenExpiry() (time.Time, bool) {
	return s.expiry, s.expiryOK
}

// fakeAdapter is a configurable ServiceAdapter; unset methods return zero
// values.
type fakeAdapter struct {
	token string

	getTimelineFn   func(ctx context.Context, cursor string, limit int) ([]models.FeedItem, string, error)
	getAuthorFeedFn func(ctx context.Context, actor, cursor string, limit int) ([]models.FeedItem, string, error)
	getProfileFn    func(ctx context.Context, actor string) (models.Profile, error)
	listNotifsFn    func(ctx context.Context, cursor string, limit int) ([]models.Notification, string, error)
	unreadCountFn   func(ctx context.Context) (int64, error)
	createRecordFn  func(ctx context.Context, did, collection string, record any) (string, error)
	deleteRecordFn  func(ctx context.Context, did, recordURI string) error
}

func (a *fakeAdapter) SetToken(token string) { a.token = token }
func (a *fakeAdapter) Token() string         { return a.token }

func (a *fakeAdapter) CreateSession(context.Context, string, string) (models.SessionConfig, error) {
	return models.SessionConfig{}, nil
}

func (a *fakeAdapter) RefreshSession(context.Context, string) (models.SessionConfig, error) {
	return models.SessionConfig{}, nil
}

func (a *fakeAdapter) DeleteSession(context.Context, string) error { return nil }

func (a *fakeAdapter) GetTimeline(ctx context.Context, cursor string, limit int) ([]models.FeedItem, string, error) {
	if a.getTimelineFn == nil {
		return nil, "", nil
	}
	return a.getTimelineFn(ctx, cursor, limit)
}

func (a *fakeAdapter) GetAuthorFeed(ctx context.Context, actor, cursor string, limit int) ([]models.FeedItem, string, error) {
	if a.getAuthorFeedFn == nil {
		return nil, "", nil
	}
	return a.getAuthorFeedFn(ctx, actor, cursor, limit)
}

func (a *fakeAdapter) GetProfile(ctx context.Context, actor string) (models.Profile, error) {
	if a.getProfileFn == nil {
		return models.Profile{}, nil
	}
	return a.getProfileFn(ctx, actor)
}

func (a *fakeAdapter) ListNotifications(ctx context.Context, cursor string, limit int) ([]models.Notification, string, error) {
	if a.listNotifsFn == nil {
		return nil, "", nil
	}
	return a.listNotifsFn(ctx, cursor, limit)
}

func (a *fakeAdapter) GetUnreadCount(ctx context.Context) (int64, error) {
	if a.unreadCountFn == nil {
		return 0, nil
	}
	return a.unreadCountFn(ctx)
}

func (a *fakeAdapter) CreateRecord(ctx context.Context, did, collection string, record any) (string, error) {
	if a.createRecordFn == nil {
		return "", nil
	}
	return a.createRecordFn(ctx, did, collection, record)
}

func (a *fakeAdapter) DeleteRecord(ctx context.Context, did, recordURI string) error {
	if a.deleteRecordFn == nil {
		return nil
	}
	return a.deleteRecordFn(ctx, did, recordURI)
}

func feedPage(uris ...string) []models.FeedItem {
	items := make([]models.FeedItem, 0, len(uris))
	for _, uri := range uris {
		items = append(items, models.FeedItem{Post: models.Post{
			URI:    uri,
			CID:    "bafy-" + uri,
			Author: models.Author{DID: "did:plc:bob", Handle: "bob.bsky.social"},
			Text:   "post " + uri,
		}})
	}
	return items
}
