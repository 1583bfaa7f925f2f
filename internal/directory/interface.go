package directory

import (
	"context"

	"civic-notify/internal/model"
)

// Client reads the registered recipient collection from the external
// identity service. The collection is fetched fresh on every call; callers
// must not cache it across sends.
type Client interface {
	List(ctx context.Context) ([]model.Recipient, error)
}
