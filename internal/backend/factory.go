// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/RichMan125/srm-ui/internal/manifest"
)

// Option customizes the HTTP implementation returned by New.
type Option func(*HTTP)

// WithTimeout sets the per-request timeout of the default client.
func WithTimeout(d time.Duration) Option {
	return func(h *HTTP) {
		if d > 0 {
			h.client.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTP) { h.client = c }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(h *HTTP) { h.log = l }
}

// WithUserAgent sets the User-Agent sent with every request.
func WithUserAgent(ua string) Option {
	return func(h *HTTP) { h.userAgent = ua }
}

// New creates a backend API implementation with manifest endpoints.
func New(baseURL string, endpoints manifest.HTTPEndpoints, opts ...Option) API {
	h := newHTTP(baseURL, endpoints)
	for _, o := range opts {
		o(h)
	}
	return h
}
