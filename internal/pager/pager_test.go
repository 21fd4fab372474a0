// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pager

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pageFetcher serves fixed pages keyed by cursor. Each page is identified by
// the cursor it is fetched with; "" is the first page.
type pageFetcher struct {
	pages map[string]struct {
		items []string
		next  string
	}
	failOn map[string]error
	calls  []string
}

func newPageFetcher() *pageFetcher {
	return &pageFetcher{
		pages: make(map[string]struct {
			items []string
			next  string
		}),
		failOn: make(map[string]error),
	}
}

func (f *pageFetcher) add(cursor string, next string, items ...string) {
	f.pages[cursor] = struct {
		items []string
		next  string
	}{items: items, next: next}
}

func (f *pageFetcher) fetch(_ context.Context, cursor string) ([]string, string, error) {
	f.calls = append(f.calls, cursor)
	if err, ok := f.failOn[cursor]; ok {
		return nil, "", err
	}
	page, ok := f.pages[cursor]
	if !ok {
		return nil, "", fmt.Errorf("unexpected cursor %q", cursor)
	}
	return page.items, page.next, nil
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestPager_InitialState(t *testing.T) {
	p := New[string](newPageFetcher().fetch)

	st := p.State()
	assert.Equal(t, PhaseUninitialized, st.Phase)
	assert.Empty(t, st.Items)
	assert.Empty(t, st.Cursor)
	assert.NoError(t, st.Err)
}

func TestPager_Load_FirstPage(t *testing.T) {
	f := newPageFetcher()
	f.add("", "c1", "a", "b")
	p := New[string](f.fetch)

	require.NoError(t, p.Load(context.Background()))

	st := p.State()
	assert.Equal(t, PhaseLoaded, st.Phase)
	assert.Equal(t, []string{"a", "b"}, st.Items)
	assert.Equal(t, "c1", st.Cursor)
	assert.True(t, st.HasMore())
}

func TestPager_Load_NoOpWhenLoaded(t *testing.T) {
	f := newPageFetcher()
	f.add("", "c1", "a")
	p := New[string](f.fetch)

	require.NoError(t, p.Load(context.Background()))
	require.NoError(t, p.Load(context.Background()))

	assert.Len(t, f.calls, 1, "second Load must not refetch")
}

func TestPager_Load_FailureYieldsFailedWithoutItems(t *testing.T) {
	f := newPageFetcher()
	f.failOn[""] = assert.AnError
	p := New[string](f.fetch)

	err := p.Load(context.Background())
	require.ErrorIs(t, err, assert.AnError)

	st := p.State()
	assert.Equal(t, PhaseFailed, st.Phase)
	assert.Empty(t, st.Items)
	assert.ErrorIs(t, st.Err, assert.AnError)
}

// ── LoadMore ─────────────────────────────────────────────────────────────────

func TestPager_LoadMore_PreservesPageOrderAndFinalCursor(t *testing.T) {
	f := newPageFetcher()
	f.add("", "c1", "a", "b")
	f.add("c1", "c2", "c")
	f.add("c2", "", "d", "e")
	p := New[string](f.fetch)

	ctx := context.Background()
	require.NoError(t, p.Load(ctx))
	require.NoError(t, p.LoadMore(ctx))
	require.NoError(t, p.LoadMore(ctx))

	st := p.State()
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, st.Items)
	assert.Equal(t, "", st.Cursor, "final cursor equals the last fetch's cursor")
	assert.False(t, st.HasMore())
}

func TestPager_LoadMore_BeforeLoad(t *testing.T) {
	p := New[string](newPageFetcher().fetch)

	assert.ErrorIs(t, p.LoadMore(context.Background()), ErrNotLoaded)
}

func TestPager_LoadMore_ExhaustedCursor(t *testing.T) {
	f := newPageFetcher()
	f.add("", "", "a")
	p := New[string](f.fetch)

	require.NoError(t, p.Load(context.Background()))
	assert.ErrorIs(t, p.LoadMore(context.Background()), ErrNoMorePages)
}

func TestPager_LoadMore_FailureRetainsProgress(t *testing.T) {
	f := newPageFetcher()
	f.add("", "c1", "a", "b")
	f.failOn["c1"] = assert.AnError
	p := New[string](f.fetch)

	ctx := context.Background()
	require.NoError(t, p.Load(ctx))
	require.ErrorIs(t, p.LoadMore(ctx), assert.AnError)

	st := p.State()
	assert.Equal(t, PhaseFailed, st.Phase)
	assert.Equal(t, []string{"a", "b"}, st.Items, "accumulated items survive the failure")
	assert.Equal(t, "c1", st.Cursor, "pending cursor survives the failure")
	assert.ErrorIs(t, st.Err, assert.AnError)
}

// ── Retry ────────────────────────────────────────────────────────────────────

func TestPager_Retry_ResumesFailedPage(t *testing.T) {
	f := newPageFetcher()
	f.add("", "c1", "a", "b")
	f.failOn["c1"] = assert.AnError
	p := New[string](f.fetch)

	ctx := context.Background()
	require.NoError(t, p.Load(ctx))
	require.Error(t, p.LoadMore(ctx))

	delete(f.failOn, "c1")
	f.add("c1", "", "c")
	require.NoError(t, p.Retry(ctx))

	st := p.State()
	assert.Equal(t, PhaseLoaded, st.Phase)
	assert.Equal(t, []string{"a", "b", "c"}, st.Items)
	assert.NoError(t, st.Err)
}

func TestPager_Retry_AfterFailedInitialLoad(t *testing.T) {
	f := newPageFetcher()
	f.failOn[""] = assert.AnError
	p := New[string](f.fetch)

	ctx := context.Background()
	require.Error(t, p.Load(ctx))

	delete(f.failOn, "")
	f.add("", "", "a")
	require.NoError(t, p.Retry(ctx))

	st := p.State()
	assert.Equal(t, PhaseLoaded, st.Phase)
	assert.Equal(t, []string{"a"}, st.Items)
}

func TestPager_Retry_NoOpWhenLoaded(t *testing.T) {
	f := newPageFetcher()
	f.add("", "c1", "a", "b")
	p := New[string](f.fetch)

	ctx := context.Background()
	require.NoError(t, p.Load(ctx))
	require.NoError(t, p.Retry(ctx))

	st := p.State()
	assert.Equal(t, []string{"a", "b"}, st.Items, "Retry on a loaded pager must not append the pending page")
	assert.Equal(t, "c1", st.Cursor)
	assert.Len(t, f.calls, 1)
}

func TestPager_Retry_IdleBehavesLikeLoad(t *testing.T) {
	f := newPageFetcher()
	f.add("", "", "a")
	p := New[string](f.fetch)

	require.NoError(t, p.Retry(context.Background()))

	st := p.State()
	assert.Equal(t, PhaseLoaded, st.Phase)
	assert.Equal(t, []string{"a"}, st.Items)
}

// ── Refresh ──────────────────────────────────────────────────────────────────

func TestPager_Refresh_ReplacesAccumulatedItems(t *testing.T) {
	f := newPageFetcher()
	f.add("", "c1", "a", "b")
	f.add("c1", "", "c")
	p := New[string](f.fetch)

	ctx := context.Background()
	require.NoError(t, p.Load(ctx))
	require.NoError(t, p.LoadMore(ctx))

	f.add("", "cx", "fresh")
	require.NoError(t, p.Refresh(ctx))

	st := p.State()
	assert.Equal(t, []string{"fresh"}, st.Items)
	assert.Equal(t, "cx", st.Cursor)
}

// ── concurrency ──────────────────────────────────────────────────────────────

func TestPager_SingleOutstandingFetchEnforced(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})

	slow := func(ctx context.Context, cursor string) ([]string, string, error) {
		close(started)
		<-release
		return []string{"x"}, "", nil
	}
	p := New[string](slow)

	done := make(chan error, 1)
	go func() { done <- p.Load(context.Background()) }()

	<-started
	assert.ErrorIs(t, p.Refresh(context.Background()), ErrFetchInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, PhaseLoaded, p.State().Phase)
}

func TestPager_Reset_CancelsInFlightFetch(t *testing.T) {
	started := make(chan struct{})
	cancelled := make(chan struct{})

	blocking := func(ctx context.Context, cursor string) ([]string, string, error) {
		close(started)
		<-ctx.Done()
		close(cancelled)
		return nil, "", ctx.Err()
	}
	p := New[string](blocking)

	done := make(chan error, 1)
	go func() { done <- p.Load(context.Background()) }()

	<-started
	p.Reset()

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("in-flight fetch was not cancelled by Reset")
	}

	err := <-done
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))

	st := p.State()
	assert.Equal(t, PhaseUninitialized, st.Phase)
	assert.Empty(t, st.Items)
}

func TestPager_ResetThenLoad_StaleFetchIsDiscarded(t *testing.T) {
	var calls atomic.Int32
	firstStarted := make(chan struct{})
	secondStarted := make(chan struct{})
	releaseFirst := make(chan struct{})
	releaseSecond := make(chan struct{})

	fetch := func(ctx context.Context, cursor string) ([]string, string, error) {
		switch calls.Add(1) {
		case 1:
			close(firstStarted)
			// ignores cancellation, as a response that completes just as
			// cancel lands does
			<-releaseFirst
			return []string{"stale"}, "c-stale", nil
		default:
			close(secondStarted)
			<-releaseSecond
			return []string{"fresh"}, "c-fresh", nil
		}
	}
	p := New[string](fetch)

	firstDone := make(chan error, 1)
	go func() { firstDone <- p.Load(context.Background()) }()
	<-firstStarted

	p.Reset()

	secondDone := make(chan error, 1)
	go func() { secondDone <- p.Load(context.Background()) }()
	<-secondStarted

	close(releaseFirst)
	<-firstDone

	st := p.State()
	assert.NotEqual(t, []string{"stale"}, st.Items, "pre-Reset page must not be installed")
	assert.Equal(t, PhaseLoading, st.Phase, "the newer fetch still owns the pager")

	close(releaseSecond)
	require.NoError(t, <-secondDone)

	st = p.State()
	assert.Equal(t, PhaseLoaded, st.Phase)
	assert.Equal(t, []string{"fresh"}, st.Items)
	assert.Equal(t, "c-fresh", st.Cursor)
}

// ── eviction ─────────────────────────────────────────────────────────────────

func TestPager_MaxItems_EvictsFromHead(t *testing.T) {
	f := newPageFetcher()
	f.add("", "c1", "a", "b", "c")
	f.add("c1", "c2", "d", "e")
	p := New[string](f.fetch, WithMaxItems[string](4))

	ctx := context.Background()
	require.NoError(t, p.Load(ctx))
	require.NoError(t, p.LoadMore(ctx))

	st := p.State()
	assert.Equal(t, []string{"b", "c", "d", "e"}, st.Items, "oldest items are evicted")
	assert.Equal(t, "c2", st.Cursor, "cursor still continues from the newest page")
}

// ── snapshot isolation ───────────────────────────────────────────────────────

func TestPager_State_ReturnsCopy(t *testing.T) {
	f := newPageFetcher()
	f.add("", "", "a", "b")
	p := New[string](f.fetch)

	require.NoError(t, p.Load(context.Background()))

	st := p.State()
	st.Items[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, p.State().Items)
}
