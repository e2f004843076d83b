package manifest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/RichMan125/srm-ui/internal/config"
)

func TestGetEndpointsDefaults(t *testing.T) {
	cfg := config.Default()
	cfg.BaseURL = "https://srm.example.com/api/"

	m, err := GetEndpoints(cfg)
	require.NoError(t, err)
	require.Equal(t, DefaultEndpoints(), m.HTTP)
	require.Equal(t, "https://srm.example.com/api", m.HTTPBaseURL())
}

func TestGetEndpointsOverrides(t *testing.T) {
	cfg := config.Default()
	cfg.Endpoints = map[string]string{
		"login":   "sso/login",
		"captcha": "/captcha?type=2",
		"unknown": "/ignored",
	}

	m, err := GetEndpoints(cfg)
	require.NoError(t, err)
	require.Equal(t, "/sso/login", m.HTTP.Login)
	require.Equal(t, "/captcha?type=2", m.HTTP.Captcha)
	require.Equal(t, "/getUserInfo", m.HTTP.UserInfo)
}

func TestGetEndpointsRejectsBadBaseURL(t *testing.T) {
	for _, base := range []string{"", "ftp://host", "http://", "::bad"} {
		cfg := config.Default()
		cfg.BaseURL = base
		_, err := GetEndpoints(cfg)
		require.Error(t, err, base)
	}
}
