package session

import (
	"sync"

	"github.com/MKhiriev/go-sky-client/models"
)

// Reason labels why a session update was emitted.
type Reason string

const (
	ReasonLogin   Reason = "login"
	ReasonRestore Reason = "restore"
	ReasonRefresh Reason = "refresh"
	ReasonLogout  Reason = "logout"
	ReasonExpired Reason = "expired"
)

// Update is one emission of the session stream. Config is nil when the
// session became absent (logout or forced sign-out).
type Update struct {
	Config *models.SessionConfig
	Reason Reason
}

// subscriber channels are buffered; when a slow subscriber falls this far
// behind, its oldest pending update is dropped to make room for the newest.
const subscriberBuffer = 16

type broadcaster struct {
	mu     sync.Mutex
	subs   map[int]chan Update
	nextID int
	closed bool
}

func newBroadcaster() *broadcaster {
	return &broadcaster{subs: make(map[int]chan Update)}
}

// subscribe registers a new subscriber and returns its receive channel with
// a cancel function. The channel is closed on cancel and on broadcaster
// shutdown.
func (b *broadcaster) subscribe() (<-chan Update, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		ch := make(chan Update)
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	ch := make(chan Update, subscriberBuffer)
	b.subs[id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if sub, ok := b.subs[id]; ok {
			delete(b.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// publish delivers u to every subscriber without ever blocking the caller:
// a full subscriber loses its oldest pending update.
func (b *broadcaster) publish(u Update) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		for {
			select {
			case ch <- u:
			default:
				// evict the oldest pending update and retry
				select {
				case <-ch:
				default:
				}
				continue
			}
			break
		}
	}
}

func (b *broadcaster) close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
