package tui

import (
	"github.com/MKhiriev/go-sky-client/internal/pager"
	"github.com/MKhiriev/go-sky-client/internal/session"
	"github.com/MKhiriev/go-sky-client/models"
)

type loginDoneMsg struct {
	err error
}

type feedLoadedMsg struct {
	state pager.State[models.FeedItem]
	err   error
}

type notifsLoadedMsg struct {
	state pager.State[models.Notification]
	err   error
}

type bookmarksLoadedMsg struct {
	state pager.State[models.Bookmark]
	err   error
}

type profileLoadedMsg struct {
	profile models.Profile
	unread  int64
	err     error
}

type likeDoneMsg struct {
	postURI string
	likeURI string
	liked   bool
	err     error
}

type repostDoneMsg struct {
	postURI   string
	repostURI string
	reposted  bool
	err       error
}

type bookmarkToggledMsg struct {
	postURI string
	saved   bool
	err     error
}

type sessionLostMsg struct {
	reason session.Reason
}

type clearStatusMsg struct{}
