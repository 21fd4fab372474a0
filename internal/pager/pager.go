// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package pager

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrFetchInFlight is returned when Load, LoadMore, Refresh, or Retry
	// is called while another fetch on the same Pager has not finished.
	ErrFetchInFlight = errors.New("fetch already in flight")

	// ErrNoMorePages is returned by LoadMore when the last page carried an
	// empty continuation cursor.
	ErrNoMorePages = errors.New("no more pages")

	// ErrNotLoaded is returned by LoadMore before a successful initial
	// Load.
	ErrNotLoaded = errors.New("list not loaded")
)

// Phase is the coarse position of a Pager in its lifecycle.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseFailed
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Fetcher loads a single page. An empty cursor requests the first page.
// A returned empty nextCursor signals that no further pages exist.
type Fetcher[T any] func(ctx context.Context, cursor string) (items []T, nextCursor string, err error)

// State is an immutable snapshot of a Pager. Items is a copy; mutating it
// does not affect the Pager.
type State[T any] struct {
	Phase  Phase
	Items  []T
	Cursor string

	// Err is the cause of the last failed fetch. Non-nil only in
	// PhaseFailed. Accumulated items survive a mid-pagination failure, so
	// Err and a non-empty Items can coexist.
	Err error
}

// HasMore reports whether another page can be requested.
func (s State[T]) HasMore() bool {
	return s.Phase == PhaseLoaded && s.Cursor != ""
}

// Pager accumulates cursor-paginated results for one screen. All methods are
// safe for concurrent use; at most one fetch runs at a time.
type Pager[T any] struct {
	fetch    Fetcher[T]
	maxItems int

	mu       sync.Mutex
	phase    Phase
	items    []T
	cursor   string
	lastErr  error
	inFlight bool
	gen      uint64
	cancel   context.CancelFunc
}

// Option configures a Pager.
type Option[T any] func(*Pager[T])

// WithMaxItems caps the accumulated list at n items. Once a fetch pushes the
// list past the cap, the oldest items are evicted from the head. Zero or
// negative n means unbounded.
func WithMaxItems[T any](n int) Option[T] {
	return func(p *Pager[T]) {
		p.maxItems = n
	}
}

// New constructs an idle Pager in PhaseUninitialized.
func New[T any](fetch Fetcher[T], opts ...Option[T]) *Pager[T] {
	p := &Pager[T]{fetch: fetch}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// State returns a snapshot of the current list state.
func (p *Pager[T]) State() State[T] {
	p.mu.Lock()
	defer p.mu.Unlock()

	items := make([]T, len(p.items))
	copy(items, p.items)

	return State[T]{Phase: p.phase, Items: items, Cursor: p.cursor, Err: p.lastErr}
}

// Load performs the initial fetch. It is a no-op when the Pager is already
// loaded; after a failed initial fetch it retries from the first page.
// Returns ErrFetchInFlight if another fetch is running.
func (p *Pager[T]) Load(ctx context.Context) error {
	p.mu.Lock()
	if p.phase == PhaseLoaded {
		p.mu.Unlock()
		return nil
	}
	if p.phase == PhaseFailed && len(p.items) > 0 {
		// a mid-pagination failure keeps its progress; resume instead
		cursor := p.cursor
		p.mu.Unlock()
		return p.run(ctx, cursor, false)
	}
	p.mu.Unlock()

	return p.run(ctx, "", true)
}

// LoadMore fetches the next page and appends it to the accumulated list.
// Returns ErrNotLoaded before a successful Load, ErrNoMorePages when the
// cursor is exhausted, and ErrFetchInFlight if another fetch is running.
func (p *Pager[T]) LoadMore(ctx context.Context) error {
	p.mu.Lock()
	if p.phase == PhaseLoading {
		p.mu.Unlock()
		return ErrFetchInFlight
	}
	if p.phase != PhaseLoaded {
		p.mu.Unlock()
		return ErrNotLoaded
	}
	if p.cursor == "" {
		p.mu.Unlock()
		return ErrNoMorePages
	}
	cursor := p.cursor
	p.mu.Unlock()

	return p.run(ctx, cursor, false)
}

// Refresh refetches the first page and replaces the accumulated list.
// Returns ErrFetchInFlight if another fetch is running.
func (p *Pager[T]) Refresh(ctx context.Context) error {
	return p.run(ctx, "", true)
}

// Retry re-issues the fetch that last failed: the pending page when progress
// has accumulated, the first page otherwise. On a Pager that is not in
// PhaseFailed it behaves like Load.
func (p *Pager[T]) Retry(ctx context.Context) error {
	p.mu.Lock()
	if p.phase != PhaseFailed {
		p.mu.Unlock()
		return p.Load(ctx)
	}
	if len(p.items) > 0 && p.cursor != "" {
		cursor := p.cursor
		p.mu.Unlock()
		return p.run(ctx, cursor, false)
	}
	p.mu.Unlock()

	return p.run(ctx, "", true)
}

// Reset cancels any in-flight fetch and returns the Pager to
// PhaseUninitialized with no items.
func (p *Pager[T]) Reset() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.inFlight = false
	p.gen++
	p.phase = PhaseUninitialized
	p.items = nil
	p.cursor = ""
	p.lastErr = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// run executes one fetch. replace selects first-page semantics (the result
// replaces the list) versus append semantics.
func (p *Pager[T]) run(ctx context.Context, cursor string, replace bool) error {
	p.mu.Lock()
	if p.inFlight {
		p.mu.Unlock()
		return ErrFetchInFlight
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	p.inFlight = true
	p.cancel = cancel
	p.phase = PhaseLoading
	p.gen++
	gen := p.gen
	p.mu.Unlock()

	items, nextCursor, err := p.fetch(fetchCtx, cursor)
	cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.gen != gen {
		// a Reset, and possibly a newer fetch, superseded this one while it
		// was running; its result must not be installed
		return err
	}
	p.inFlight = false
	p.cancel = nil

	if err != nil {
		p.phase = PhaseFailed
		p.lastErr = err
		return err
	}

	if replace {
		p.items = items
	} else {
		p.items = append(p.items, items...)
	}
	p.cursor = nextCursor
	p.lastErr = nil
	p.phase = PhaseLoaded

	if p.maxItems > 0 && len(p.items) > p.maxItems {
		overflow := len(p.items) - p.maxItems
		p.items = append([]T(nil), p.items[overflow:]...)
	}

	return nil
}
