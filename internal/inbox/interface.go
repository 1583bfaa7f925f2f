package inbox

import (
	"context"

	"civic-notify/internal/model"
)

// Store is the consumed interface of the external recipient inbox store.
// All operations may fail transiently; callers treat failures as
// recoverable, never fatal.
type Store interface {
	// CreateEntry persists one recipient's copy of a broadcast. The
	// composite entry ID makes retries idempotent on the store side.
	CreateEntry(ctx context.Context, entry model.InboxEntry) error

	// ListByRecipient returns the ordered entry collection of one recipient.
	ListByRecipient(ctx context.Context, recipientID string) ([]model.InboxEntry, error)

	// MarkAllRead flips every unread entry of the recipient to read and
	// returns the number of entries updated. Read state never transitions
	// back to unread.
	MarkAllRead(ctx context.Context, recipientID string) (int, error)
}
