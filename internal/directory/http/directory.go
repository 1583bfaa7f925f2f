package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"civic-notify/internal/directory"
	"civic-notify/internal/model"
)

func (c *implClient) List(ctx context.Context) ([]model.Recipient, error) {
	url := c.baseURL + "/recipients"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.l.Errorf(ctx, "internal.directory.http.List.NewRequest: %v", err)
		return nil, directory.ErrUnavailable
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.l.Errorf(ctx, "internal.directory.http.List.Do: %v", err)
		return nil, directory.ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.l.Errorf(ctx, "internal.directory.http.List: unexpected status %d", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", directory.ErrUnavailable, resp.StatusCode)
	}

	var recipients []model.Recipient
	if err := json.NewDecoder(resp.Body).Decode(&recipients); err != nil {
		c.l.Errorf(ctx, "internal.directory.http.List.Decode: %v", err)
		return nil, directory.ErrUnavailable
	}

	return recipients, nil
}
