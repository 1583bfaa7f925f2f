package session

import (
	"context"
	"sync"

	"civic-notify/internal/inbox"
	"civic-notify/internal/model"
	"civic-notify/internal/syncbus"
	pkgLog "civic-notify/pkg/log"
)

// Controller drives one recipient's inbox inside one client session. It
// owns the session-local entry list, the derived unread count and the
// open/closed state of the inbox overlay, and keeps them converged with
// other sessions through the sync channel.
//
// The recipient is fixed at construction; a session that switches users
// builds a new controller. All methods are safe for concurrent use.
type Controller struct {
	l           pkgLog.Logger
	store       inbox.Store
	sync        syncbus.Channel
	recipientID string

	mu          sync.Mutex
	entries     []model.InboxEntry
	unreadCount int
	isOpen      bool
	dismissable bool
	closed      bool
	loadSeq     uint64
	appliedSeq  uint64

	unsubscribe func()
}

// New builds a controller and subscribes it to the sync channel for its
// lifetime. Callers must Close it to release the subscription.
func New(l pkgLog.Logger, store inbox.Store, ch syncbus.Channel, recipientID string) *Controller {
	c := &Controller{
		l:           l,
		store:       store,
		sync:        ch,
		recipientID: recipientID,
	}

	c.unsubscribe = ch.Subscribe(func() {
		// Another session changed inbox state; re-fetch ours.
		c.Load(context.Background())
	})

	return c
}

// Close tears the controller down: the sync subscription is released and
// any in-flight load result is discarded instead of applied.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.isOpen = false
	c.dismissable = false
	unsub := c.unsubscribe
	c.mu.Unlock()

	if unsub != nil {
		unsub()
	}
}
