package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds a resty client so adapters can extend it with helpers.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client bound to baseURL. A zero timeout keeps the
// resty default. Requests that fail at the transport level are retried
// twice.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(2).
		SetRetryWaitTime(100 * time.Millisecond)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
