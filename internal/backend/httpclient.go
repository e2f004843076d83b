package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/RichMan125/srm-ui/internal/logging"
	"github.com/RichMan125/srm-ui/internal/manifest"
)

// maxErrorBody bounds how much of a failed response is quoted in an error.
const maxErrorBody = 512

// HTTP implements API over the SRM REST endpoints.
type HTTP struct {
	// baseURL is the base URL for all HTTP requests (e.g., "https://srm.example.com")
	baseURL string
	// endpoints contains the URL paths for the session endpoints
	endpoints manifest.HTTPEndpoints
	// client is the underlying HTTP client with configured timeout
	client    *http.Client
	log       zerolog.Logger
	userAgent string
}

// newHTTP creates a new HTTP client with the given base URL and endpoints.
// It configures a 10-second timeout for all requests.
func newHTTP(baseURL string, endpoints manifest.HTTPEndpoints) *HTTP {
	return &HTTP{
		baseURL:   strings.TrimRight(baseURL, "/"),
		endpoints: endpoints,
		client:    &http.Client{Timeout: 10 * time.Second},
		log:       zerolog.Nop(),
		userAgent: "srm-cli/dev",
	}
}

// newRequest builds a request against path with the standard headers set.
func (h *HTTP) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	h.setStandardHeaders(req)
	return req, nil
}

// setStandardHeaders sets headers shared by every request.
func (h *HTTP) setStandardHeaders(req *http.Request) {
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
}

// setCredential attaches the persisted session credential ("sessionKey=<key>").
func setCredential(req *http.Request, credential string) {
	if credential != "" {
		req.Header.Set("Cookie", credential)
	}
}

// do sends req and logs the exchange with secrets masked.
func (h *HTTP) do(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := h.client.Do(req)
	ev := h.log.Debug().
		Str("method", req.Method).
		Str("url", logging.Mask(req.URL.String())).
		Str("request_id", req.Header.Get("X-Request-ID")).
		Dur("took", time.Since(start))
	if err != nil {
		ev.Err(err).Msg("request failed")
		return nil, err
	}
	ev.Int("status", resp.StatusCode).Msg("request done")
	return resp, nil
}

// statusError builds an error quoting the start of a failed response body.
func statusError(op string, resp *http.Response) error {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return fmt.Errorf("%s failed: status %d: %s", op, resp.StatusCode, logging.Mask(strings.TrimSpace(string(b))))
}
