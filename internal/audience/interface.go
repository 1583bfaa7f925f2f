package audience

import (
	"context"

	"civic-notify/internal/model"
)

// Resolver computes the exact recipient set eligible for a broadcast.
type Resolver interface {
	Resolve(ctx context.Context, zone model.Zone, recipients []model.Recipient) []model.Recipient
}
