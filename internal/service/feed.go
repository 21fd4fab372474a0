// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sky-client/internal/adapter"
	"github.com/MKhiriev/go-sky-client/internal/config"
	"github.com/MKhiriev/go-sky-client/internal/logger"
	"github.com/MKhiriev/go-sky-client/internal/pager"
	"github.com/MKhiriev/go-sky-client/internal/store"
	"github.com/MKhiriev/go-sky-client/models"
)

// Record collections used by the per-post actions.
const (
	likeCollection   = "app.bsky.feed.like"
	repostCollection = "app.bsky.feed.repost"
)

type feedService struct {
	adapter  adapter.ServiceAdapter
	session  SessionManager
	storages *store.Storages
	logger   *logger.Logger

	pageSize int
	maxItems int
}

func NewFeedService(serviceAdapter adapter.ServiceAdapter, session SessionManager, storages *store.Storages, cfg config.App, logger *logger.Logger) FeedService {
	return &feedService{
		adapter:  serviceAdapter,
		session:  session,
		storages: storages,
		logger:   logger,
		pageSize: cfg.PageSize,
		maxItems: cfg.MaxFeedItems,
	}
}

// Timeline implements FeedService.
func (f *feedService) Timeline() *pager.Pager[models.FeedItem] {
	fetch := func(ctx context.Context, cursor string) ([]models.FeedItem, string, error) {
		return f.fetchFeedPage(ctx, func(ctx context.Context) ([]models.FeedItem, string, error) {
			return f.adapter.GetTimeline(ctx, cursor, f.pageSize)
		})
	}
	return pager.New(fetch, pager.WithMaxItems[models.FeedItem](f.maxItems))
}

// AuthorFeed implements FeedService.
func (f *feedService) AuthorFeed(actor string) *pager.Pager[models.FeedItem] {
	fetch := func(ctx context.Context, cursor string) ([]models.FeedItem, string, error) {
		return f.fetchFeedPage(ctx, func(ctx context.Context) ([]models.FeedItem, string, error) {
			return f.adapter.GetAuthorFeed(ctx, actor, cursor, f.pageSize)
		})
	}
	return pager.New(fetch, pager.WithMaxItems[models.FeedItem](f.maxItems))
}

// Bookmarks implements FeedService. The local bookmark listing exposes the
// same cursor shape as the remote feeds, so the same pager drives it.
func (f *feedService) Bookmarks() *pager.Pager[models.Bookmark] {
	fetch := func(ctx context.Context, cursor string) ([]models.Bookmark, string, error) {
		current := f.session.Current()
		if current == nil {
			return nil, "", ErrNotSignedIn
		}
		return f.storages.Bookmarks.ListBookmarks(ctx, current.DID, cursor, f.pageSize)
	}
	return pager.New(fetch)
}

// fetchFeedPage runs one remote page fetch with the expired-token retry and
// decorates the result with local bookmark state.
func (f *feedService) fetchFeedPage(ctx context.Context, op func(context.Context) ([]models.FeedItem, string, error)) ([]models.FeedItem, string, error) {
	log := logger.FromContext(ctx)

	items, cursor, err := fetchPageWithRefresh(ctx, f.session, op)
	if err != nil {
		return nil, "", err
	}

	current := f.session.Current()
	if current == nil {
		return items, cursor, nil
	}

	for i := range items {
		bookmarked, bErr := f.storages.Bookmarks.IsBookmarked(ctx, current.DID, items[i].Post.URI)
		if bErr != nil {
			// bookmark decoration is best-effort; the feed still renders
			log.Warn().Err(bErr).Str("uri", items[i].Post.URI).Msg("cannot read bookmark state")
			continue
		}
		items[i].Post.Viewer.Bookmarked = bookmarked
	}

	return items, cursor, nil
}

// Like implements FeedService.
func (f *feedService) Like(ctx context.Context, post models.Post) (string, error) {
	return f.createSubjectRecord(ctx, likeCollection, post)
}

// Unlike implements FeedService.
func (f *feedService) Unlike(ctx context.Context, likeURI string) error {
	return f.deleteOwnRecord(ctx, likeURI)
}

// Repost implements FeedService.
func (f *feedService) Repost(ctx context.Context, post models.Post) (string, error) {
	return f.createSubjectRecord(ctx, repostCollection, post)
}

// Unrepost implements FeedService.
func (f *feedService) Unrepost(ctx context.Context, repostURI string) error {
	return f.deleteOwnRecord(ctx, repostURI)
}

// ToggleBookmark implements FeedService.
func (f *feedService) ToggleBookmark(ctx context.Context, post models.Post) (bool, error) {
	current := f.session.Current()
	if current == nil {
		return false, ErrNotSignedIn
	}

	bookmarked, err := f.storages.Bookmarks.IsBookmarked(ctx, current.DID, post.URI)
	if err != nil {
		return false, fmt.Errorf("read bookmark state: %w", err)
	}

	if bookmarked {
		if err := f.storages.Bookmarks.DeleteBookmark(ctx, current.DID, post.URI); err != nil {
			return true, fmt.Errorf("delete bookmark: %w", err)
		}
		return false, nil
	}

	bookmark := models.Bookmark{
		AccountDID:   current.DID,
		URI:          post.URI,
		CID:          post.CID,
		AuthorHandle: post.Author.Handle,
		Text:         post.Text,
		SavedAt:      time.Now(),
	}
	if err := f.storages.Bookmarks.SaveBookmark(ctx, bookmark); err != nil {
		return false, fmt.Errorf("save bookmark: %w", err)
	}

	return true, nil
}

// createSubjectRecord writes a like or repost record into the signed-in
// account's repo and returns the new record's AT-URI.
func (f *feedService) createSubjectRecord(ctx context.Context, collection string, post models.Post) (string, error) {
	current := f.session.Current()
	if current == nil {
		return "", ErrNotSignedIn
	}

	record := models.SubjectRecord{
		Type:      collection,
		Subject:   models.StrongRef{URI: post.URI, CID: post.CID},
		CreatedAt: time.Now().UTC(),
	}

	uri, err := withRefreshRetry(ctx, f.session, func(ctx context.Context) (string, error) {
		return f.adapter.CreateRecord(ctx, current.DID, collection, record)
	})
	if err != nil {
		return "", fmt.Errorf("create %s record: %w", collection, err)
	}

	return uri, nil
}

func (f *feedService) deleteOwnRecord(ctx context.Context, recordURI string) error {
	current := f.session.Current()
	if current == nil {
		return ErrNotSignedIn
	}

	_, err := withRefreshRetry(ctx, f.session, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, f.adapter.DeleteRecord(ctx, current.DID, recordURI)
	})
	if err != nil {
		return fmt.Errorf("delete record %s: %w", recordURI, err)
	}

	return nil
}

// withRefreshRetry runs op once and, if the server rejected the access token
// as expired, refreshes the session and retries exactly once. A failed
// refresh has already forced a sign-out; the original error is returned then.
func withRefreshRetry[T any](ctx context.Context, session SessionManager, op func(context.Context) (T, error)) (T, error) {
	out, err := op(ctx)
	if !errors.Is(err, adapter.ErrExpiredToken) {
		return out, err
	}

	if refreshErr := session.Refresh(ctx); refreshErr != nil {
		return out, err
	}

	return op(ctx)
}

// fetchPageWithRefresh is withRefreshRetry for the (items, cursor, error)
// page-fetch shape.
func fetchPageWithRefresh[T any](ctx context.Context, session SessionManager, op func(context.Context) ([]T, string, error)) ([]T, string, error) {
	type page struct {
		items  []T
		cursor string
	}

	result, err := withRefreshRetry(ctx, session, func(ctx context.Context) (page, error) {
		items, cursor, err := op(ctx)
		return page{items: items, cursor: cursor}, err
	})

	return result.items, result.cursor, err
}
