package model

import (
	"fmt"
	"time"
)

// InboxEntry is one recipient's copy of a broadcast, carrying independent
// read state. Its ID is the composite {broadcastID}_{recipientID}, which
// makes fan-out idempotent: retrying a delivery can never create a second
// entry for the same (broadcast, recipient) pair.
type InboxEntry struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Category    Category  `json:"category"`
	RecipientID string    `json:"recipient_id"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
	SenderName  string    `json:"sender_name"`
}

// EntryID builds the composite inbox entry identity.
func EntryID(broadcastID, recipientID string) string {
	return fmt.Sprintf("%s_%s", broadcastID, recipientID)
}

// UnreadCount recomputes the unread total from an entry collection.
// The count is always derived from the set, never maintained separately,
// so it cannot drift.
func UnreadCount(entries []InboxEntry) int {
	var n int
	for _, e := range entries {
		if !e.Read {
			n++
		}
	}
	return n
}
