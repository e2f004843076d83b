package manifest

import (
	"fmt"
	"net/url"

	"github.com/RichMan125/srm-ui/internal/config"
)

// GetEndpoints builds the manifest for cfg: the default endpoint table with
// cfg.Endpoints overrides applied, rooted at cfg.BaseURL.
func GetEndpoints(cfg config.Config) (*Manifest, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base_url %q: %w", cfg.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base_url %q: scheme must be http or https", cfg.BaseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid base_url %q: missing host", cfg.BaseURL)
	}
	return &Manifest{
		BaseURL: cfg.BaseURL,
		HTTP:    DefaultEndpoints().withOverrides(cfg.Endpoints),
	}, nil
}
