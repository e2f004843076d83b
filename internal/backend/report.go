package backend

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// ReportError sends code and msg as query parameters to the error endpoint.
// The result is informational; callers usually only log a failure.
func (h *HTTP) ReportError(ctx context.Context, code, msg string) error {
	q := url.Values{}
	q.Set("code", code)
	q.Set("msg", msg)

	sep := "?"
	if strings.Contains(h.endpoints.ReportError, "?") {
		sep = "&"
	}
	req, err := h.newRequest(ctx, http.MethodGet, h.endpoints.ReportError+sep+q.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := h.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError("report-error", resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
