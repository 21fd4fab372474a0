// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-sky-client/internal/adapter"
	"github.com/MKhiriev/go-sky-client/internal/config"
	"github.com/MKhiriev/go-sky-client/internal/logger"
	"github.com/MKhiriev/go-sky-client/internal/mock"
	"github.com/MKhiriev/go-sky-client/internal/store"
	"github.com/MKhiriev/go-sky-client/models"
)

// newTestFeedSvc builds a feed service with a mocked bookmark store.
func newTestFeedSvc(
	t *testing.T,
	ctrl *gomock.Controller,
	serviceAdapter adapter.ServiceAdapter,
	session SessionManager,
) (FeedService, *mock.MockBookmarkRepository) {
	t.Helper()
	mockBookmarks := mock.NewMockBookmarkRepository(ctrl)

	storages := &store.Storages{
		Bookmarks: mockBookmarks,
	}
	cfg := config.App{PageSize: 10, MaxFeedItems: 100}
	svc := NewFeedService(serviceAdapter, session, storages, cfg, logger.Nop())
	return svc, mockBookmarks
}

// ── Timeline ─────────────────────────────────────────────────────────────────

func TestFeedService_Timeline_DecoratesBookmarkState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fake := &fakeAdapter{
		getTimelineFn: func(_ context.Context, cursor string, limit int) ([]models.FeedItem, string, error) {
			assert.Empty(t, cursor)
			assert.Equal(t, 10, limit)
			return feedPage("at://a", "at://b"), "next", nil
		},
	}
	session := signedInSession()
	svc, mockBookmarks := newTestFeedSvc(t, ctrl, fake, session)

	mockBookmarks.EXPECT().IsBookmarked(gomock.Any(), "did:plc:alice", "at://a").Return(true, nil)
	mockBookmarks.EXPECT().IsBookmarked(gomock.Any(), "did:plc:alice", "at://b").Return(false, nil)

	p := svc.Timeline()
	require.NoError(t, p.Load(context.Background()))

	state := p.State()
	require.Len(t, state.Items, 2)
	assert.True(t, state.Items[0].Post.Viewer.Bookmarked)
	assert.False(t, state.Items[1].Post.Viewer.Bookmarked)
	assert.Equal(t, "next", state.Cursor)
}

func TestFeedService_Timeline_RefreshesExpiredTokenOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	calls := 0
	fake := &fakeAdapter{
		getTimelineFn: func(context.Context, string, int) ([]models.FeedItem, string, error) {
			calls++
			if calls == 1 {
				return nil, "", adapter.ErrExpiredToken
			}
			return feedPage("at://a"), "", nil
		},
	}
	session := signedInSession()
	svc, mockBookmarks := newTestFeedSvc(t, ctrl, fake, session)

	mockBookmarks.EXPECT().IsBookmarked(gomock.Any(), "did:plc:alice", "at://a").Return(false, nil)

	p := svc.Timeline()
	require.NoError(t, p.Load(context.Background()))

	assert.Equal(t, 2, calls, "fetch retried exactly once after refresh")
	assert.Equal(t, int64(1), session.refreshed.Load())
}

func TestFeedService_Timeline_FailedRefreshPropagatesOriginalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fake := &fakeAdapter{
		getTimelineFn: func(context.Context, string, int) ([]models.FeedItem, string, error) {
			return nil, "", adapter.ErrExpiredToken
		},
	}
	session := signedInSession()
	session.refreshErr = assert.AnError
	svc, _ := newTestFeedSvc(t, ctrl, fake, session)

	p := svc.Timeline()
	err := p.Load(context.Background())
	require.ErrorIs(t, err, adapter.ErrExpiredToken)
	assert.Equal(t, int64(1), session.refreshed.Load())
}

func TestFeedService_Timeline_BookmarkLookupFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	fake := &fakeAdapter{
		getTimelineFn: func(context.Context, string, int) ([]models.FeedItem, string, error) {
			return feedPage("at://a"), "", nil
		},
	}
	session := signedInSession()
	svc, mockBookmarks := newTestFeedSvc(t, ctrl, fake, session)

	mockBookmarks.EXPECT().IsBookmarked(gomock.Any(), "did:plc:alice", "at://a").Return(false, errors.New("db locked"))

	p := svc.Timeline()
	require.NoError(t, p.Load(context.Background()))
	require.Len(t, p.State().Items, 1)
}

// ── Bookmarks pager ──────────────────────────────────────────────────────────

func TestFeedService_Bookmarks_PagesThroughLocalStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := signedInSession()
	svc, mockBookmarks := newTestFeedSvc(t, ctrl, &fakeAdapter{}, session)

	saved := []models.Bookmark{{ID: "b-1", AccountDID: "did:plc:alice", URI: "at://a"}}
	mockBookmarks.EXPECT().
		ListBookmarks(gomock.Any(), "did:plc:alice", "", 10).
		Return(saved, "", nil)

	p := svc.Bookmarks()
	require.NoError(t, p.Load(context.Background()))

	state := p.State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, "at://a", state.Items[0].URI)
	assert.False(t, state.HasMore())
}

func TestFeedService_Bookmarks_RequiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestFeedSvc(t, ctrl, &fakeAdapter{}, &fakeSession{})

	p := svc.Bookmarks()
	err := p.Load(context.Background())
	require.ErrorIs(t, err, ErrNotSignedIn)
}

// ── Like / Repost ────────────────────────────────────────────────────────────

func TestFeedService_Like_CreatesLikeRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var gotCollection string
	var gotRecord models.SubjectRecord
	fake := &fakeAdapter{
		createRecordFn: func(_ context.Context, did, collection string, record any) (string, error) {
			assert.Equal(t, "did:plc:alice", did)
			gotCollection = collection
			gotRecord = record.(models.SubjectRecord)
			return "at://did:plc:alice/app.bsky.feed.like/3like", nil
		},
	}
	svc, _ := newTestFeedSvc(t, ctrl, fake, signedInSession())

	post := models.Post{URI: "at://did:plc:bob/app.bsky.feed.post/3post", CID: "bafy-post"}
	uri, err := svc.Like(context.Background(), post)
	require.NoError(t, err)

	assert.Equal(t, "at://did:plc:alice/app.bsky.feed.like/3like", uri)
	assert.Equal(t, "app.bsky.feed.like", gotCollection)
	assert.Equal(t, "app.bsky.feed.like", gotRecord.Type)
	assert.Equal(t, post.URI, gotRecord.Subject.URI)
	assert.Equal(t, post.CID, gotRecord.Subject.CID)
	assert.False(t, gotRecord.CreatedAt.IsZero())
}

func TestFeedService_Like_RequiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestFeedSvc(t, ctrl, &fakeAdapter{}, &fakeSession{})

	_, err := svc.Like(context.Background(), models.Post{URI: "at://x"})
	require.ErrorIs(t, err, ErrNotSignedIn)
}

func TestFeedService_Repost_CreatesRepostRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var gotCollection string
	fake := &fakeAdapter{
		createRecordFn: func(_ context.Context, _, collection string, _ any) (string, error) {
			gotCollection = collection
			return "at://did:plc:alice/app.bsky.feed.repost/3rp", nil
		},
	}
	svc, _ := newTestFeedSvc(t, ctrl, fake, signedInSession())

	uri, err := svc.Repost(context.Background(), models.Post{URI: "at://x", CID: "c"})
	require.NoError(t, err)
	assert.Equal(t, "app.bsky.feed.repost", gotCollection)
	assert.NotEmpty(t, uri)
}

func TestFeedService_Unlike_DeletesRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var gotURI string
	fake := &fakeAdapter{
		deleteRecordFn: func(_ context.Context, did, recordURI string) error {
			assert.Equal(t, "did:plc:alice", did)
			gotURI = recordURI
			return nil
		},
	}
	svc, _ := newTestFeedSvc(t, ctrl, fake, signedInSession())

	require.NoError(t, svc.Unlike(context.Background(), "at://did:plc:alice/app.bsky.feed.like/3like"))
	assert.Equal(t, "at://did:plc:alice/app.bsky.feed.like/3like", gotURI)
}

// ── ToggleBookmark ───────────────────────────────────────────────────────────

func TestFeedService_ToggleBookmark_SavesWhenAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBookmarks := newTestFeedSvc(t, ctrl, &fakeAdapter{}, signedInSession())

	post := models.Post{
		URI:    "at://did:plc:bob/app.bsky.feed.post/3post",
		CID:    "bafy-post",
		Author: models.Author{Handle: "bob.bsky.social"},
		Text:   "hello",
	}

	mockBookmarks.EXPECT().IsBookmarked(gomock.Any(), "did:plc:alice", post.URI).Return(false, nil)
	mockBookmarks.EXPECT().
		SaveBookmark(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b models.Bookmark) error {
			assert.Equal(t, "did:plc:alice", b.AccountDID)
			assert.Equal(t, post.URI, b.URI)
			assert.Equal(t, "bob.bsky.social", b.AuthorHandle)
			assert.False(t, b.SavedAt.IsZero())
			return nil
		})

	bookmarked, err := svc.ToggleBookmark(context.Background(), post)
	require.NoError(t, err)
	assert.True(t, bookmarked)
}

func TestFeedService_ToggleBookmark_DeletesWhenPresent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockBookmarks := newTestFeedSvc(t, ctrl, &fakeAdapter{}, signedInSession())

	post := models.Post{URI: "at://did:plc:bob/app.bsky.feed.post/3post"}

	mockBookmarks.EXPECT().IsBookmarked(gomock.Any(), "did:plc:alice", post.URI).Return(true, nil)
	mockBookmarks.EXPECT().DeleteBookmark(gomock.Any(), "did:plc:alice", post.URI).Return(nil)

	bookmarked, err := svc.ToggleBookmark(context.Background(), post)
	require.NoError(t, err)
	assert.False(t, bookmarked)
}

func TestFeedService_ToggleBookmark_RequiresSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestFeedSvc(t, ctrl, &fakeAdapter{}, &fakeSession{})

	_, err := svc.ToggleBookmark(context.Background(), models.Post{URI: "at://x"})
	require.ErrorIs(t, err, ErrNotSignedIn)
}
