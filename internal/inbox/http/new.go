package http

import (
	"net/http"
	"time"

	"civic-notify/internal/inbox"
	pkgLog "civic-notify/pkg/log"
)

const defaultTimeout = 10 * time.Second

type implStore struct {
	l       pkgLog.Logger
	baseURL string
	client  *http.Client
}

var _ inbox.Store = &implStore{}

func New(l pkgLog.Logger, baseURL string, timeout time.Duration) *implStore {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &implStore{
		l:       l,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     30 * time.Second,
			},
		},
	}
}
