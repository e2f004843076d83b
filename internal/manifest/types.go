// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package manifest resolves the backend endpoint table from configuration.
package manifest

import (
	"net/url"
	"strings"
)

// Manifest represents the endpoint configuration of the SRM backend.
type Manifest struct {
	BaseURL string        `json:"base_url"`
	HTTP    HTTPEndpoints `json:"http"`
}

// HTTPEndpoints contains REST API endpoint paths.
type HTTPEndpoints struct {
	Login        string `json:"login"`         // e.g., "/accountLogin"
	UserInfo     string `json:"user_info"`     // e.g., "/getUserInfo"
	RefreshToken string `json:"refresh_token"` // e.g., "/auth/refreshToken"
	ReportError  string `json:"report_error"`  // e.g., "/auth/error"
	Captcha      string `json:"captcha"`       // e.g., "/captcha?type=1"
}

// DefaultEndpoints returns the paths served by the SRM backend.
func DefaultEndpoints() HTTPEndpoints {
	return HTTPEndpoints{
		Login:        "/accountLogin",
		UserInfo:     "/getUserInfo",
		RefreshToken: "/auth/refreshToken",
		ReportError:  "/auth/error",
		Captcha:      "/captcha?type=1",
	}
}

// withOverrides replaces paths named in overrides. Unknown names are ignored.
func (e HTTPEndpoints) withOverrides(overrides map[string]string) HTTPEndpoints {
	for name, p := range overrides {
		if p == "" {
			continue
		}
		if !strings.HasPrefix(p, "/") {
			p = "/" + p
		}
		switch name {
		case "login":
			e.Login = p
		case "user_info":
			e.UserInfo = p
		case "refresh_token":
			e.RefreshToken = p
		case "report_error":
			e.ReportError = p
		case "captcha":
			e.Captcha = p
		}
	}
	return e
}

// HTTPBaseURL returns scheme://host[/path] without a trailing slash.
func (m *Manifest) HTTPBaseURL() string {
	u, err := url.Parse(m.BaseURL)
	if err != nil || u.Host == "" {
		return ""
	}
	base := u.Scheme + "://" + u.Host + u.Path
	return strings.TrimRight(base, "/")
}
