package http

import (
	"net/http"
	"time"

	"civic-notify/internal/directory"
	pkgLog "civic-notify/pkg/log"
)

const defaultTimeout = 10 * time.Second

type implClient struct {
	l       pkgLog.Logger
	baseURL string
	client  *http.Client
}

var _ directory.Client = &implClient{}

func New(l pkgLog.Logger, baseURL string, timeout time.Duration) *implClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &implClient{
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
