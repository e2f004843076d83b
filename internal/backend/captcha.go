package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// maxCaptchaBytes bounds the captcha image read into memory.
const maxCaptchaBytes = 2 << 20

// GetCaptcha fetches the captcha image. An empty body is not an error;
// the returned Captcha then has no Data.
func (h *HTTP) GetCaptcha(ctx context.Context) (Captcha, error) {
	req, err := h.newRequest(ctx, http.MethodGet, h.endpoints.Captcha, nil)
	if err != nil {
		return Captcha{}, err
	}
	req.Header.Set("Accept", "image/*")

	resp, err := h.do(req)
	if err != nil {
		return Captcha{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Captcha{}, statusError("captcha", resp)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxCaptchaBytes))
	if err != nil {
		return Captcha{}, fmt.Errorf("read captcha: %w", err)
	}
	ct := resp.Header.Get("Content-Type")
	if ct == "" && len(data) > 0 {
		ct = http.DetectContentType(data)
	}
	return Captcha{Data: data, ContentType: ct}, nil
}
