package auth

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/RichMan125/srm-ui/internal/backend"
)

// ErrNoCaptcha is returned by CaptchaImage when the backend sent no image.
var ErrNoCaptcha = errors.New("no captcha image")

// CaptchaImage fetches the captcha challenge image.
func (s *Store) CaptchaImage(ctx context.Context) (backend.Captcha, error) {
	c, err := s.api.GetCaptcha(ctx)
	if err != nil {
		return backend.Captcha{}, err
	}
	if len(c.Data) == 0 {
		return backend.Captcha{}, ErrNoCaptcha
	}
	if c.ContentType == "" {
		c.ContentType = "application/octet-stream"
	}
	return c, nil
}

// GetCaptcha returns the captcha image as a data: URL, or "" when no
// captcha is available for any reason.
func (s *Store) GetCaptcha(ctx context.Context) string {
	c, err := s.CaptchaImage(ctx)
	if err != nil {
		s.log.Debug().Err(err).Msg("captcha unavailable")
		return ""
	}
	return "data:" + c.ContentType + ";base64," + base64.StdEncoding.EncodeToString(c.Data)
}
