package usecase

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"civic-notify/internal/broadcast"
	"civic-notify/internal/broadcast/repository"
	"civic-notify/internal/model"
)

func (uc *implUseCase) Send(ctx context.Context, ip broadcast.SendInput) (broadcast.SendOutput, error) {
	if err := validateSendInput(ip); err != nil {
		return broadcast.SendOutput{}, err
	}

	// Fetched fresh on every send so the audience reflects current
	// membership, never a cached snapshot.
	recipients, err := uc.directory.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.broadcast.usecase.Send.List: %v", err)
		return broadcast.SendOutput{}, broadcast.ErrAudienceResolution
	}

	aud := uc.resolver.Resolve(ctx, ip.Zone, recipients)

	now := time.Now()
	b := model.Broadcast{
		ID:             newBroadcastID(now),
		Title:          strings.TrimSpace(ip.Title),
		Body:           strings.TrimSpace(ip.Body),
		Zone:           ip.Zone,
		Category:       ip.Category,
		Priority:       ip.Priority,
		CreatedAt:      now,
		RecipientCount: len(aud),
		RecipientIDs:   recipientIDs(aud),
	}

	delivered := uc.fanOut(ctx, b, ip.SenderName, aud)

	// The audit record is written only after every delivery attempt has
	// settled. It reports the resolved audience, not the delivered count;
	// the gap on partial failure is deliberate and visible in the output.
	if _, err := uc.repo.Create(ctx, repository.CreateOptions{Broadcast: b}); err != nil {
		uc.l.Errorf(ctx, "internal.broadcast.usecase.Send.Create: %v", err)
		// Entries are already fanned out; open sessions still get told.
		uc.announce(ctx)
		return broadcast.SendOutput{}, err
	}

	uc.announce(ctx)

	return broadcast.SendOutput{Broadcast: b, Delivered: delivered}, nil
}

// fanOut persists one inbox entry per resolved recipient. Deliveries run
// concurrently and independently: one failure never aborts the rest.
// Returns the number of entries successfully persisted.
func (uc *implUseCase) fanOut(ctx context.Context, b model.Broadcast, senderName string, aud []model.Recipient) int {
	var (
		wg        sync.WaitGroup
		delivered atomic.Int64
	)

	for _, rcp := range aud {
		wg.Add(1)
		go func(rcp model.Recipient) {
			defer wg.Done()

			entry := model.InboxEntry{
				ID:          model.EntryID(b.ID, rcp.ID),
				Title:       b.Title,
				Body:        b.Body,
				Category:    b.Category,
				RecipientID: rcp.ID,
				Read:        false,
				CreatedAt:   time.Now().UTC(),
				SenderName:  senderName,
			}

			if err := uc.inbox.CreateEntry(ctx, entry); err != nil {
				uc.l.Errorf(ctx, "internal.broadcast.usecase.fanOut.CreateEntry: recipient %s: %v", rcp.ID, err)
				return
			}
			delivered.Add(1)
		}(rcp)
	}

	wg.Wait()

	if int(delivered.Load()) < len(aud) {
		uc.l.Warnf(ctx, "internal.broadcast.usecase.fanOut: delivered %d of %d entries for broadcast %s",
			delivered.Load(), len(aud), b.ID)
	}

	return int(delivered.Load())
}

// announce emits exactly one sync signal per send, after all fan-out
// attempts have settled, whatever happened to individual deliveries.
func (uc *implUseCase) announce(ctx context.Context) {
	if err := uc.sync.Announce(ctx); err != nil {
		uc.l.Errorf(ctx, "internal.broadcast.usecase.announce: %v", err)
	}
}

func recipientIDs(aud []model.Recipient) []string {
	ids := make([]string, len(aud))
	for i, rcp := range aud {
		ids[i] = rcp.ID
	}
	return ids
}
