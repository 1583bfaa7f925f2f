package broadcast

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Send validates the request, resolves the audience, fans the message
	// out to every resolved recipient, records the audit entry and then
	// announces the change to all open sessions.
	Send(ctx context.Context, ip SendInput) (SendOutput, error)

	// List returns the local audit log, newest first.
	List(ctx context.Context, ip ListInput) (ListOutput, error)

	// Detail returns one audit record.
	Detail(ctx context.Context, id string) (DetailOutput, error)

	// Delete removes an audit record. Inbox entries already fanned out are
	// untouched: a broadcast cannot be retracted.
	Delete(ctx context.Context, id string) error
}
