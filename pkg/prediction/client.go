// Package prediction is the HTTP client for the model service that trains
// and serves house price predictions. Every public operation fails soft:
// network and protocol errors are logged and converted into sentinel
// return values, never raised to the caller. There are no retries and no
// caching; each call is one round trip.
package prediction

import (
	"net/http"
	"time"
)

// Client manages requests to the model service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a model service client. The timeout applies to each
// round trip via the underlying http.Client; there is no application-level
// retry on top of it.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}
