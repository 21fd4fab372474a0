// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-sky-client/internal/pager"
	"github.com/MKhiriev/go-sky-client/internal/service"
	"github.com/MKhiriev/go-sky-client/internal/session"
	"github.com/MKhiriev/go-sky-client/models"
)

type screen int

const (
	screenTimeline screen = iota
	screenNotifications
	screenBookmarks
	screenProfile
)

type mainLoopModel struct {
	ctx      context.Context
	services *service.Services
	handle   string

	updates   <-chan session.Update
	cancelSub func()

	active screen
	detail bool

	feed      *pager.Pager[models.FeedItem]
	notifs    *pager.Pager[models.Notification]
	bookmarks *pager.Pager[models.Bookmark]

	feedState     pager.State[models.FeedItem]
	notifState    pager.State[models.Notification]
	bookmarkState pager.State[models.Bookmark]

	feedIdx     int
	notifIdx    int
	bookmarkIdx int

	profile       models.Profile
	unread        int64
	profileLoaded bool

	feedBusy     bool
	notifBusy    bool
	bookmarkBusy bool
	profileBusy  bool

	spinner spinner.Model
	status  string
	errMsg  string

	showOverlay   bool
	overlayScreen screen
	overlay       errorOverlayModel

	logout bool
}

func newMainLoopModel(ctx context.Context, manager *session.Manager, services *service.Services) mainLoopModel {
	handle := ""
	if cfg := manager.Current(); cfg != nil {
		handle = cfg.Handle
	}

	updates, cancelSub := manager.Subscribe()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return mainLoopModel{
		ctx:       ctx,
		services:  services,
		handle:    handle,
		updates:   updates,
		cancelSub: cancelSub,
		feed:      services.Feed.Timeline(),
		notifs:    services.Notifications.Notifications(),
		bookmarks: services.Feed.Bookmarks(),
		spinner:   s,
		feedBusy:  true,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdFeed(m.feed.Load), m.cmdWaitSessionLost())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case sessionLostMsg:
		// the session manager already cleared its state; send the user
		// back to the sign-in flow
		m.logout = true
		m.cancelSub()
		return m, tea.Quit

	case feedLoadedMsg:
		m.feedBusy = false
		m.feedState = msg.state
		m.feedIdx = clampIndex(m.feedIdx, len(m.feedState.Items))
		if msg.err != nil {
			return m.fetchFailed(screenTimeline, msg.err), nil
		}
		return m, nil

	case notifsLoadedMsg:
		m.notifBusy = false
		m.notifState = msg.state
		m.notifIdx = clampIndex(m.notifIdx, len(m.notifState.Items))
		if msg.err != nil {
			return m.fetchFailed(screenNotifications, msg.err), nil
		}
		return m, nil

	case bookmarksLoadedMsg:
		m.bookmarkBusy = false
		m.bookmarkState = msg.state
		m.bookmarkIdx = clampIndex(m.bookmarkIdx, len(m.bookmarkState.Items))
		if msg.err != nil {
			return m.fetchFailed(screenBookmarks, msg.err), nil
		}
		return m, nil

	case profileLoadedMsg:
		m.profileBusy = false
		if msg.err != nil {
			return m.fetchFailed(screenProfile, msg.err), nil
		}
		m.profile = msg.profile
		m.unread = msg.unread
		m.profileLoaded = true
		return m, nil

	case likeDoneMsg:
		if msg.err != nil {
			m.errMsg = "like failed: " + msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.patchFeedItem(msg.postURI, func(p *models.Post) {
			if msg.liked {
				p.Viewer.LikeURI = msg.likeURI
				p.LikeCount++
			} else {
				p.Viewer.LikeURI = ""
				if p.LikeCount > 0 {
					p.LikeCount--
				}
			}
		})
		if msg.liked {
			m.status = "Liked"
		} else {
			m.status = "Like removed"
		}
		return m, m.cmdClearStatus()

	case repostDoneMsg:
		if msg.err != nil {
			m.errMsg = "repost failed: " + msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.patchFeedItem(msg.postURI, func(p *models.Post) {
			if msg.reposted {
				p.Viewer.RepostURI = msg.repostURI
				p.RepostCount++
			} else {
				p.Viewer.RepostURI = ""
				if p.RepostCount > 0 {
					p.RepostCount--
				}
			}
		})
		if msg.reposted {
			m.status = "Reposted"
		} else {
			m.status = "Repost removed"
		}
		return m, m.cmdClearStatus()

	case bookmarkToggledMsg:
		if msg.err != nil {
			m.errMsg = "bookmark failed: " + msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.patchFeedItem(msg.postURI, func(p *models.Post) {
			p.Viewer.Bookmarked = msg.saved
		})
		if msg.saved {
			m.status = "Bookmarked"
		} else {
			m.status = "Bookmark removed"
		}

		cmds := []tea.Cmd{m.cmdClearStatus()}
		if m.bookmarkState.Phase != pager.PhaseUninitialized && !m.bookmarkBusy {
			m.bookmarkBusy = true
			cmds = append(cmds, m.cmdBookmarks(m.bookmarks.Refresh))
		}
		return m, tea.Batch(cmds...)

	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.showOverlay {
		return m.updateOverlay(keyMsg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		m.cancelSub()
		return m, tea.Quit
	case "l":
		m.logout = true
		m.cancelSub()
		return m, tea.Quit
	}

	if m.detail {
		return m.updateDetail(keyMsg)
	}

	switch keyMsg.String() {
	case "tab":
		return m.switchScreen((m.active + 1) % 4)
	case "1":
		return m.switchScreen(screenTimeline)
	case "2":
		return m.switchScreen(screenNotifications)
	case "3":
		return m.switchScreen(screenBookmarks)
	case "4":
		return m.switchScreen(screenProfile)
	case "up":
		m.moveCursor(-1)
		return m, nil
	case "down":
		return m.cursorDown()
	case "r":
		return m.refreshActive()
	case "enter":
		if m.active == screenTimeline || m.active == screenBookmarks {
			if m.currentPost() != nil {
				m.detail = true
			}
		}
		return m, nil
	case "f":
		return m.toggleLike()
	case "p":
		return m.toggleRepost()
	case "b":
		return m.toggleBookmark()
	case "d":
		if m.active == screenBookmarks {
			return m.toggleBookmark()
		}
		return m, nil
	case "c":
		m.copyCurrentURI()
		return m, m.cmdClearStatus()
	}

	return m, nil
}

func (m mainLoopModel) updateOverlay(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "ctrl+c", "q":
		m.cancelSub()
		return m, tea.Quit
	case "esc":
		m.showOverlay = false
		return m, nil
	case "enter":
		m.showOverlay = false
		return m.retryScreen(m.overlayScreen)
	}
	return m, nil
}

func (m mainLoopModel) updateDetail(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "esc":
		m.detail = false
		return m, nil
	case "f":
		return m.toggleLike()
	case "p":
		return m.toggleRepost()
	case "b":
		return m.toggleBookmark()
	case "c":
		m.copyCurrentURI()
		return m, m.cmdClearStatus()
	}
	return m, nil
}

func (m mainLoopModel) switchScreen(next screen) (tea.Model, tea.Cmd) {
	m.active = next
	m.errMsg = ""

	switch next {
	case screenNotifications:
		if m.notifState.Phase == pager.PhaseUninitialized && !m.notifBusy {
			m.notifBusy = true
			return m, m.cmdNotifs(m.notifs.Load)
		}
	case screenBookmarks:
		if m.bookmarkState.Phase == pager.PhaseUninitialized && !m.bookmarkBusy {
			m.bookmarkBusy = true
			return m, m.cmdBookmarks(m.bookmarks.Load)
		}
	case screenProfile:
		if !m.profileLoaded && !m.profileBusy {
			m.profileBusy = true
			return m, m.cmdProfile()
		}
	}
	return m, nil
}

func (m mainLoopModel) refreshActive() (tea.Model, tea.Cmd) {
	switch m.active {
	case screenTimeline:
		if m.feedBusy {
			return m, nil
		}
		m.feedBusy = true
		return m, m.cmdFeed(m.feed.Refresh)
	case screenNotifications:
		if m.notifBusy {
			return m, nil
		}
		m.notifBusy = true
		return m, m.cmdNotifs(m.notifs.Refresh)
	case screenBookmarks:
		if m.bookmarkBusy {
			return m, nil
		}
		m.bookmarkBusy = true
		return m, m.cmdBookmarks(m.bookmarks.Refresh)
	case screenProfile:
		if m.profileBusy {
			return m, nil
		}
		m.profileBusy = true
		return m, m.cmdProfile()
	}
	return m, nil
}

func (m mainLoopModel) retryScreen(s screen) (tea.Model, tea.Cmd) {
	switch s {
	case screenTimeline:
		m.feedBusy = true
		return m, m.cmdFeed(m.feed.Retry)
	case screenNotifications:
		m.notifBusy = true
		return m, m.cmdNotifs(m.notifs.Retry)
	case screenBookmarks:
		m.bookmarkBusy = true
		return m, m.cmdBookmarks(m.bookmarks.Retry)
	case screenProfile:
		m.profileBusy = true
		return m, m.cmdProfile()
	}
	return m, nil
}

func (m *mainLoopModel) moveCursor(delta int) {
	switch m.active {
	case screenTimeline:
		m.feedIdx = clampIndex(m.feedIdx+delta, len(m.feedState.Items))
	case screenNotifications:
		m.notifIdx = clampIndex(m.notifIdx+delta, len(m.notifState.Items))
	case screenBookmarks:
		m.bookmarkIdx = clampIndex(m.bookmarkIdx+delta, len(m.bookmarkState.Items))
	}
}

// cursorDown moves the selection down and, at the end of a list with a
// pending cursor, fetches the next page.
func (m mainLoopModel) cursorDown() (tea.Model, tea.Cmd) {
	switch m.active {
	case screenTimeline:
		if m.feedIdx < len(m.feedState.Items)-1 {
			m.feedIdx++
			return m, nil
		}
		if m.feedState.HasMore() && !m.feedBusy {
			m.feedBusy = true
			return m, m.cmdFeed(m.feed.LoadMore)
		}
	case screenNotifications:
		if m.notifIdx < len(m.notifState.Items)-1 {
			m.notifIdx++
			return m, nil
		}
		if m.notifState.HasMore() && !m.notifBusy {
			m.notifBusy = true
			return m, m.cmdNotifs(m.notifs.LoadMore)
		}
	case screenBookmarks:
		if m.bookmarkIdx < len(m.bookmarkState.Items)-1 {
			m.bookmarkIdx++
			return m, nil
		}
		if m.bookmarkState.HasMore() && !m.bookmarkBusy {
			m.bookmarkBusy = true
			return m, m.cmdBookmarks(m.bookmarks.LoadMore)
		}
	}
	return m, nil
}

// currentPost returns the post under the cursor on the timeline or bookmark
// screen. Bookmarks are projected back into a minimal post so the same
// actions apply.
func (m mainLoopModel) currentPost() *models.Post {
	switch m.active {
	case screenTimeline:
		if m.feedIdx < 0 || m.feedIdx >= len(m.feedState.Items) {
			return nil
		}
		post := m.feedState.Items[m.feedIdx].Post
		return &post
	case screenBookmarks:
		if m.bookmarkIdx < 0 || m.bookmarkIdx >= len(m.bookmarkState.Items) {
			return nil
		}
		bm := m.bookmarkState.Items[m.bookmarkIdx]
		return &models.Post{
			URI:    bm.URI,
			CID:    bm.CID,
			Author: models.Author{Handle: bm.AuthorHandle},
			Text:   bm.Text,
			Viewer: models.ViewerState{Bookmarked: true},
		}
	}
	return nil
}

func (m mainLoopModel) toggleLike() (tea.Model, tea.Cmd) {
	post := m.currentPost()
	if post == nil || m.active == screenBookmarks {
		return m, nil
	}
	return m, m.cmdToggleLike(*post)
}

func (m mainLoopModel) toggleRepost() (tea.Model, tea.Cmd) {
	post := m.currentPost()
	if post == nil || m.active == screenBookmarks {
		return m, nil
	}
	return m, m.cmdToggleRepost(*post)
}

func (m mainLoopModel) toggleBookmark() (tea.Model, tea.Cmd) {
	post := m.currentPost()
	if post == nil {
		return m, nil
	}
	if m.active == screenBookmarks {
		m.detail = false
	}
	return m, m.cmdToggleBookmark(*post)
}

func (m *mainLoopModel) copyCurrentURI() {
	var uri string
	switch m.active {
	case screenTimeline, screenBookmarks:
		if post := m.currentPost(); post != nil {
			uri = post.URI
		}
	case screenNotifications:
		if m.notifIdx >= 0 && m.notifIdx < len(m.notifState.Items) {
			uri = m.notifState.Items[m.notifIdx].URI
		}
	}
	if uri == "" {
		m.status = "Nothing to copy"
		return
	}

	if err := clipboard.WriteAll(uri); err != nil {
		m.errMsg = "copy failed: " + err.Error()
		return
	}
	m.status = "AT-URI copied"
}

func (m mainLoopModel) fetchFailed(s screen, err error) mainLoopModel {
	m.showOverlay = true
	m.overlayScreen = s
	m.overlay = errorOverlayModel{message: err.Error()}
	return m
}

func (m *mainLoopModel) patchFeedItem(postURI string, patch func(*models.Post)) {
	for i := range m.feedState.Items {
		if m.feedState.Items[i].Post.URI == postURI {
			patch(&m.feedState.Items[i].Post)
		}
	}
}

func clampIndex(idx, length int) int {
	if idx >= length {
		idx = length - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// ── commands ──

// ignorablePagerErr reports fetch-coordination outcomes that are not user
// errors: a second fetch while one is running, or paging past the end.
func ignorablePagerErr(err error) bool {
	return errors.Is(err, pager.ErrFetchInFlight) ||
		errors.Is(err, pager.ErrNoMorePages) ||
		errors.Is(err, pager.ErrNotLoaded) ||
		errors.Is(err, context.Canceled)
}

func (m mainLoopModel) cmdFeed(op func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	p := m.feed

	return func() tea.Msg {
		err := op(ctx)
		if ignorablePagerErr(err) {
			err = nil
		}
		return feedLoadedMsg{state: p.State(), err: err}
	}
}

func (m mainLoopModel) cmdNotifs(op func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	p := m.notifs

	return func() tea.Msg {
		err := op(ctx)
		if ignorablePagerErr(err) {
			err = nil
		}
		return notifsLoadedMsg{state: p.State(), err: err}
	}
}

func (m mainLoopModel) cmdBookmarks(op func(context.Context) error) tea.Cmd {
	ctx := m.ctx
	p := m.bookmarks

	return func() tea.Msg {
		err := op(ctx)
		if ignorablePagerErr(err) {
			err = nil
		}
		return bookmarksLoadedMsg{state: p.State(), err: err}
	}
}

func (m mainLoopModel) cmdProfile() tea.Cmd {
	ctx := m.ctx
	profiles := m.services.Profile
	notifications := m.services.Notifications

	return func() tea.Msg {
		profile, err := profiles.CurrentProfile(ctx)
		if err != nil {
			return profileLoadedMsg{err: err}
		}
		unread, err := notifications.UnreadCount(ctx)
		if err != nil {
			return profileLoadedMsg{err: err}
		}
		return profileLoadedMsg{profile: profile, unread: unread}
	}
}

func (m mainLoopModel) cmdToggleLike(post models.Post) tea.Cmd {
	ctx := m.ctx
	feed := m.services.Feed

	return func() tea.Msg {
		if post.Viewer.LikeURI != "" {
			err := feed.Unlike(ctx, post.Viewer.LikeURI)
			return likeDoneMsg{postURI: post.URI, liked: false, err: err}
		}
		likeURI, err := feed.Like(ctx, post)
		return likeDoneMsg{postURI: post.URI, likeURI: likeURI, liked: true, err: err}
	}
}

func (m mainLoopModel) cmdToggleRepost(post models.Post) tea.Cmd {
	ctx := m.ctx
	feed := m.services.Feed

	return func() tea.Msg {
		if post.Viewer.RepostURI != "" {
			err := feed.Unrepost(ctx, post.Viewer.RepostURI)
			return repostDoneMsg{postURI: post.URI, reposted: false, err: err}
		}
		repostURI, err := feed.Repost(ctx, post)
		return repostDoneMsg{postURI: post.URI, repostURI: repostURI, reposted: true, err: err}
	}
}

func (m mainLoopModel) cmdToggleBookmark(post models.Post) tea.Cmd {
	ctx := m.ctx
	feed := m.services.Feed

	return func() tea.Msg {
		saved, err := feed.ToggleBookmark(ctx, post)
		return bookmarkToggledMsg{postURI: post.URI, saved: saved, err: err}
	}
}

func (m mainLoopModel) cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// cmdWaitSessionLost blocks on the session update stream and reports when the
// credentials are gone (expired refresh token, external logout).
func (m mainLoopModel) cmdWaitSessionLost() tea.Cmd {
	updates := m.updates

	return func() tea.Msg {
		for update := range updates {
			if update.Config == nil {
				return sessionLostMsg{reason: update.Reason}
			}
		}
		return nil
	}
}

// ── views ──

func (m mainLoopModel) View() string {
	if m.showOverlay {
		return m.overlay.View()
	}
	if m.detail {
		return m.viewDetail()
	}

	switch m.active {
	case screenNotifications:
		return m.viewNotifications()
	case screenBookmarks:
		return m.viewBookmarks()
	case screenProfile:
		return m.viewProfile()
	default:
		return m.viewTimeline()
	}
}

func (m mainLoopModel) header(title string) string {
	out := title
	if m.handle != "" {
		out += "  @" + m.handle
	}
	if m.busy() {
		out += "  " + m.spinner.View()
	}
	return out
}

func (m mainLoopModel) busy() bool {
	switch m.active {
	case screenTimeline:
		return m.feedBusy
	case screenNotifications:
		return m.notifBusy
	case screenBookmarks:
		return m.bookmarkBusy
	case screenProfile:
		return m.profileBusy
	}
	return false
}

func (m mainLoopModel) footerLines() string {
	out := ""
	if m.errMsg != "" {
		out += "\nError: " + m.errMsg + "\n"
	}
	if m.status != "" {
		out += "\nStatus: " + m.status + "\n"
	}
	return out
}

func postMarks(p models.Post) string {
	marks := ""
	if p.Viewer.LikeURI != "" {
		marks += "L"
	}
	if p.Viewer.RepostURI != "" {
		marks += "R"
	}
	if p.Viewer.Bookmarked {
		marks += "B"
	}
	return marks
}

func (m mainLoopModel) viewTimeline() string {
	out := ""

	if m.feedState.Phase == pager.PhaseUninitialized || (m.feedBusy && len(m.feedState.Items) == 0) {
		out += "Loading timeline...\n"
		return renderPage(m.header("TIMELINE"), strings.TrimRight(out, "\n"), timelineHotKeys)
	}

	if len(m.feedState.Items) == 0 {
		out += "Timeline is empty\n"
	} else {
		out += "Author               │ Post                                             │ Age │ You\n"
		out += "─────────────────────┼──────────────────────────────────────────────────┼─────┼────\n"
		for i, item := range m.feedState.Items {
			cursor := " "
			if i == m.feedIdx {
				cursor = ">"
			}

			author := item.Post.Author.Handle
			if item.RepostedBy != "" {
				author = "↻ " + author
			}

			out += fmt.Sprintf(
				"%s%-20s │ %-48s │ %-3s │ %s\n",
				cursor,
				fitText(author, 20),
				fitText(oneLine(item.Post.Text), 48),
				timeAgo(item.Post.IndexedAt),
				postMarks(item.Post),
			)
		}
		if m.feedState.HasMore() {
			out += "\n(more below, keep scrolling)\n"
		}
	}

	out += m.footerLines()
	return renderPage(m.header("TIMELINE"), strings.TrimRight(out, "\n"), timelineHotKeys)
}

const timelineHotKeys = "enter: open │ f: like │ p: repost │ b: bookmark │ c: copy uri │ r: refresh │ tab/1-4: screens │ l: logout"

func notificationLabel(n models.Notification) string {
	switch n.Reason {
	case models.NotificationLike:
		return "liked your post"
	case models.NotificationRepost:
		return "reposted your post"
	case models.NotificationFollow:
		return "followed you"
	case models.NotificationMention:
		return "mentioned you"
	case models.NotificationReply:
		return "replied to your post"
	case models.NotificationQuote:
		return "quoted your post"
	default:
		return "interacted with you"
	}
}

func (m mainLoopModel) viewNotifications() string {
	out := ""

	if m.notifState.Phase == pager.PhaseUninitialized || (m.notifBusy && len(m.notifState.Items) == 0) {
		out += "Loading notifications...\n"
		return renderPage(m.header("NOTIFICATIONS"), strings.TrimRight(out, "\n"), notificationsHotKeys)
	}

	if len(m.notifState.Items) == 0 {
		out += "No notifications\n"
	} else {
		out += "  │ Who                  │ What                 │ Age\n"
		out += "──┼──────────────────────┼──────────────────────┼─────\n"
		for i, n := range m.notifState.Items {
			cursor := " "
			if i == m.notifIdx {
				cursor = ">"
			}
			unread := " "
			if !n.IsRead {
				unread = "*"
			}

			out += fmt.Sprintf(
				"%s%s│ %-20s │ %-20s │ %s\n",
				cursor,
				unread,
				fitText(authorLabel(n.Author.Handle, n.Author.DisplayName), 20),
				fitText(notificationLabel(n), 20),
				timeAgo(n.IndexedAt),
			)
		}
		if m.notifState.HasMore() {
			out += "\n(more below, keep scrolling)\n"
		}
	}

	out += m.footerLines()
	return renderPage(m.header("NOTIFICATIONS"), strings.TrimRight(out, "\n"), notificationsHotKeys)
}

const notificationsHotKeys = "c: copy uri │ r: refresh │ tab/1-4: screens │ l: logout"

func (m mainLoopModel) viewBookmarks() string {
	out := ""

	if m.bookmarkState.Phase == pager.PhaseUninitialized || (m.bookmarkBusy && len(m.bookmarkState.Items) == 0) {
		out += "Loading bookmarks...\n"
		return renderPage(m.header("BOOKMARKS"), strings.TrimRight(out, "\n"), bookmarksHotKeys)
	}

	if len(m.bookmarkState.Items) == 0 {
		out += "No bookmarks yet. Press b on a timeline post to save it.\n"
	} else {
		out += "Author               │ Post                                             │ Saved\n"
		out += "─────────────────────┼──────────────────────────────────────────────────┼──────\n"
		for i, bm := range m.bookmarkState.Items {
			cursor := " "
			if i == m.bookmarkIdx {
				cursor = ">"
			}

			out += fmt.Sprintf(
				"%s%-20s │ %-48s │ %s\n",
				cursor,
				fitText(bm.AuthorHandle, 20),
				fitText(oneLine(bm.Text), 48),
				timeAgo(bm.SavedAt),
			)
		}
		if m.bookmarkState.HasMore() {
			out += "\n(more below, keep scrolling)\n"
		}
	}

	out += m.footerLines()
	return renderPage(m.header("BOOKMARKS"), strings.TrimRight(out, "\n"), bookmarksHotKeys)
}

const bookmarksHotKeys = "enter: open │ d: remove │ c: copy uri │ r: refresh │ tab/1-4: screens │ l: logout"

func (m mainLoopModel) viewProfile() string {
	out := ""

	if !m.profileLoaded {
		out += "Loading profile...\n"
		return renderPage(m.header("PROFILE"), strings.TrimRight(out, "\n"), profileHotKeys)
	}

	out += "Handle    : @" + m.profile.Handle + "\n"
	if m.profile.DisplayName != "" {
		out += "Name      : " + m.profile.DisplayName + "\n"
	}
	if m.profile.Description != "" {
		out += "Bio       : " + fitText(oneLine(m.profile.Description), 60) + "\n"
	}
	out += fmt.Sprintf("Followers : %d\n", m.profile.FollowersCount)
	out += fmt.Sprintf("Following : %d\n", m.profile.FollowsCount)
	out += fmt.Sprintf("Posts     : %d\n", m.profile.PostsCount)
	out += fmt.Sprintf("Unread    : %d\n", m.unread)

	out += m.footerLines()
	return renderPage(m.header("PROFILE"), strings.TrimRight(out, "\n"), profileHotKeys)
}

const profileHotKeys = "r: refresh │ tab/1-4: screens │ l: logout"

func (m mainLoopModel) viewDetail() string {
	post := m.currentPost()
	if post == nil {
		return renderPage("POST", "Post not found", "esc: back")
	}

	var b strings.Builder
	b.WriteString("Author    : " + authorLabel(post.Author.Handle, post.Author.DisplayName))
	if post.Author.Handle != "" && post.Author.DisplayName != "" {
		b.WriteString(" (@" + post.Author.Handle + ")")
	}
	b.WriteString("\n")
	if m.active == screenTimeline {
		if item := m.feedState.Items[m.feedIdx]; item.RepostedBy != "" {
			b.WriteString("Reposted  : by @" + item.RepostedBy + "\n")
		}
	}
	b.WriteString("Posted    : " + timeAgo(post.CreatedAt) + " ago\n")
	b.WriteString("URI       : " + post.URI + "\n\n")

	b.WriteString(post.Text + "\n\n")

	b.WriteString(fmt.Sprintf("Replies %d    Reposts %d    Likes %d\n", post.ReplyCount, post.RepostCount, post.LikeCount))

	state := []string{}
	if post.Viewer.LikeURI != "" {
		state = append(state, "liked")
	}
	if post.Viewer.RepostURI != "" {
		state = append(state, "reposted")
	}
	if post.Viewer.Bookmarked {
		state = append(state, "bookmarked")
	}
	if len(state) > 0 {
		b.WriteString("You: " + strings.Join(state, ", ") + "\n")
	}

	b.WriteString(m.footerLines())
	return renderPage("POST", strings.TrimRight(b.String(), "\n"), "f: like │ p: repost │ b: bookmark │ c: copy uri │ esc: back")
}
