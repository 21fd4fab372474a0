package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-sky-client/internal/pager"
	"github.com/MKhiriev/go-sky-client/models"
)

// SessionManager is the slice of the session manager the services consume:
// reading the current configuration and forcing a refresh when the server
// rejects an expired access token.
type SessionManager interface {
	// Current returns a copy of the current session configuration, or nil
	// when no session is held.
	Current() *models.SessionConfig

	// Refresh exchanges the refresh token for a fresh credential bundle.
	Refresh(ctx context.Context) error

	// AccessTokenExpiry returns the expiry of the current access token.
	// ok is false when no session is held or the token carries no expiry.
	AccessTokenExpiry() (expiry time.Time, ok bool)
}

// FeedService owns the feed pagers and the per-post actions (like, repost,
// bookmark). Pagers returned by the constructor-like methods are owned by the
// caller; the service only builds them.
type FeedService interface {
	// Timeline builds a pager over app.bsky.feed.getTimeline.
	Timeline() *pager.Pager[models.FeedItem]

	// AuthorFeed builds a pager over app.bsky.feed.getAuthorFeed for actor
	// (handle or DID).
	AuthorFeed(actor string) *pager.Pager[models.FeedItem]

	// Bookmarks builds a pager over the local bookmark store, scoped to the
	// signed-in account.
	Bookmarks() *pager.Pager[models.Bookmark]

	// Like creates an app.bsky.feed.like record for the post and returns
	// the AT-URI of the created record, needed later to unlike.
	Like(ctx context.Context, post models.Post) (string, error)

	// Unlike deletes the viewer's like record identified by likeURI.
	Unlike(ctx context.Context, likeURI string) error

	// Repost creates an app.bsky.feed.repost record for the post and
	// returns the AT-URI of the created record.
	Repost(ctx context.Context, post models.Post) (string, error)

	// Unrepost deletes the viewer's repost record identified by repostURI.
	Unrepost(ctx context.Context, repostURI string) error

	// ToggleBookmark saves the post as a local bookmark, or removes the
	// bookmark when one already exists. Returns the resulting state.
	ToggleBookmark(ctx context.Context, post models.Post) (bool, error)
}

// ProfileService reads actor profiles.
type ProfileService interface {
	// GetProfile fetches the profile of actor (handle or DID).
	GetProfile(ctx context.Context, actor string) (models.Profile, error)

	// CurrentProfile fetches the profile of the signed-in account.
	CurrentProfile(ctx context.Context) (models.Profile, error)
}

// NotificationService owns the notification pager and the unread counter.
type NotificationService interface {
	// Notifications builds a pager over
	// app.bsky.notification.listNotifications.
	Notifications() *pager.Pager[models.Notification]

	// UnreadCount fetches the current unread notification count.
	UnreadCount(ctx context.Context) (int64, error)
}

// SummaryService assembles the widget summary snapshot and writes it to the
// shared store.
type SummaryService interface {
	// Snapshot fetches follower count, unread count, and the latest
	// notification for the signed-in account and replaces the stored
	// snapshot.
	Snapshot(ctx context.Context) error
}

// SummaryJob is the background worker that periodically rewrites the widget
// summary snapshot.
type SummaryJob interface {
	// Start launches the background goroutine. It snapshots every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

// RefreshJob is the background worker that refreshes the session before the
// access token expires, so interactive requests rarely see ExpiredToken.
type RefreshJob interface {
	// Start launches the background goroutine. It checks the token expiry
	// every interval, defaulting to 30 seconds if interval is zero or
	// negative.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
