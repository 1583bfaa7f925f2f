package usecase

import (
	"context"
	"strings"

	"civic-notify/internal/model"
)

// Resolve filters the registered recipient set down to the audience of a
// zone broadcast. Only citizen accounts are eligible, the reserved
// administrative account never is. The wildcard zone keeps every eligible
// recipient; a named zone keeps those whose name or address contains the
// zone name, case-insensitively. Deterministic, no side effects.
func (r *implResolver) Resolve(ctx context.Context, zone model.Zone, recipients []model.Recipient) []model.Recipient {
	eligible := make([]model.Recipient, 0, len(recipients))
	for _, rcp := range recipients {
		if !rcp.IsCitizen() {
			continue
		}
		eligible = append(eligible, rcp)
	}

	matched := eligible
	if !zone.IsWildcard() {
		needle := strings.ToLower(string(zone))
		matched = make([]model.Recipient, 0, len(eligible))
		for _, rcp := range eligible {
			// Recipients without an address still carry their name here; they
			// simply never match a zone unless the name does.
			haystack := strings.ToLower(rcp.Name + " " + rcp.Address)
			if strings.Contains(haystack, needle) {
				matched = append(matched, rcp)
			}
		}
	}

	if len(matched) == 0 {
		r.l.Warnf(ctx, "internal.audience.usecase.Resolve: zone %q resolved to zero recipients", zone)
	}

	return matched
}
