package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"civic-notify/internal/inbox"
	"civic-notify/internal/model"
)

func (s *implStore) CreateEntry(ctx context.Context, entry model.InboxEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		s.l.Errorf(ctx, "internal.inbox.http.CreateEntry.Marshal: %v", err)
		return inbox.ErrCreateFailed
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/inbox", bytes.NewReader(payload))
	if err != nil {
		s.l.Errorf(ctx, "internal.inbox.http.CreateEntry.NewRequest: %v", err)
		return inbox.ErrCreateFailed
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.l.Errorf(ctx, "internal.inbox.http.CreateEntry.Do: %v", err)
		return inbox.ErrCreateFailed
	}
	defer resp.Body.Close()

	// 409 means the composite id already exists: the entry was delivered
	// by an earlier attempt, which is success for an idempotent fan-out.
	if resp.StatusCode == http.StatusConflict {
		return nil
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		s.l.Errorf(ctx, "internal.inbox.http.CreateEntry: unexpected status %d", resp.StatusCode)
		return fmt.Errorf("%w: status %d", inbox.ErrCreateFailed, resp.StatusCode)
	}

	return nil
}

func (s *implStore) ListByRecipient(ctx context.Context, recipientID string) ([]model.InboxEntry, error) {
	u := fmt.Sprintf("%s/inbox?recipient=%s", s.baseURL, url.QueryEscape(recipientID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		s.l.Errorf(ctx, "internal.inbox.http.ListByRecipient.NewRequest: %v", err)
		return nil, inbox.ErrLoadFailed
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.l.Errorf(ctx, "internal.inbox.http.ListByRecipient.Do: %v", err)
		return nil, inbox.ErrLoadFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.l.Errorf(ctx, "internal.inbox.http.ListByRecipient: unexpected status %d", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", inbox.ErrLoadFailed, resp.StatusCode)
	}

	var entries []model.InboxEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		s.l.Errorf(ctx, "internal.inbox.http.ListByRecipient.Decode: %v", err)
		return nil, inbox.ErrLoadFailed
	}

	return entries, nil
}

func (s *implStore) MarkAllRead(ctx context.Context, recipientID string) (int, error) {
	entries, err := s.ListByRecipient(ctx, recipientID)
	if err != nil {
		return 0, inbox.ErrMarkReadFailed
	}

	var updated int
	for _, e := range entries {
		if e.Read {
			continue
		}
		if err := s.markRead(ctx, e.ID); err != nil {
			s.l.Errorf(ctx, "internal.inbox.http.MarkAllRead.markRead: entry %s: %v", e.ID, err)
			return updated, inbox.ErrMarkReadFailed
		}
		updated++
	}

	return updated, nil
}

func (s *implStore) markRead(ctx context.Context, entryID string) error {
	payload := []byte(`{"read":true}`)
	u := fmt.Sprintf("%s/inbox/%s", s.baseURL, url.PathEscape(entryID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, u, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return nil
}
