package session

import (
	"context"

	"civic-notify/internal/model"
)

// Load fetches the recipient's entries and recomputes the unread count
// from the fetched set. A fetch failure degrades to an empty inbox and is
// logged, never surfaced: an unavailable inbox must not break the session.
func (c *Controller) Load(ctx context.Context) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.loadSeq++
	seq := c.loadSeq
	c.mu.Unlock()

	entries, err := c.store.ListByRecipient(ctx, c.recipientID)
	if err != nil {
		c.l.Errorf(ctx, "internal.session.Load.ListByRecipient: %v", err)
		entries = nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Discard stale results: the controller was torn down mid-fetch, or a
	// newer load already applied.
	if c.closed || seq < c.appliedSeq {
		return
	}
	c.appliedSeq = seq
	c.entries = entries
	c.unreadCount = model.UnreadCount(entries)
}

// ToggleOpen flips the overlay. Opening with unread entries marks them
// all read, announces the change to other sessions and reloads; closing
// mutates nothing. Returns the new open state.
func (c *Controller) ToggleOpen(ctx context.Context) bool {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false
	}
	c.isOpen = !c.isOpen
	open := c.isOpen
	unread := c.unreadCount
	// Outside dismissal arms only once the opening interaction is done,
	// so that interaction cannot dismiss the overlay it just opened.
	c.dismissable = open
	c.mu.Unlock()

	if !open || unread == 0 {
		return open
	}

	if _, err := c.store.MarkAllRead(ctx, c.recipientID); err != nil {
		// Count stays stale until the next successful load.
		c.l.Errorf(ctx, "internal.session.ToggleOpen.MarkAllRead: %v", err)
		return open
	}

	if err := c.sync.Announce(ctx); err != nil {
		c.l.Errorf(ctx, "internal.session.ToggleOpen.Announce: %v", err)
	}

	// Same-session refresh happens directly; the shared signal never
	// notifies its own writer.
	c.Load(ctx)

	return open
}

// OutsideInteraction dismisses the overlay when an interaction lands
// outside both the trigger control and the overlay. A no-op while closed
// or before dismissal has been armed.
func (c *Controller) OutsideInteraction() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.isOpen || !c.dismissable {
		return
	}
	c.isOpen = false
	c.dismissable = false
}

// Entries returns a copy of the loaded entry collection.
func (c *Controller) Entries() []model.InboxEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.InboxEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// UnreadCount returns the unread total derived from the last load.
func (c *Controller) UnreadCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unreadCount
}

// IsOpen reports whether the overlay is open.
func (c *Controller) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isOpen
}
