// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides the client's structured logger plus helpers for
// masking credentials before they reach a log line or an error shown to users.
//
// Session keys, passwords, captcha answers and bearer tokens must never be
// written verbatim; every log field that may carry one goes through Mask.
package logging

import (
	"regexp"
	"strings"
)

var (
	rePassword   = regexp.MustCompile(`(?i)(password=)([^\s;&]+)`)
	reToken      = regexp.MustCompile(`(?i)(token=|bearer\s+)([A-Za-z0-9._-]+)`)
	reSessionKey = regexp.MustCompile(`(?i)(sessionKey=)([^\s;&]+)`)
	reJSONSecret = regexp.MustCompile(`(?i)("(?:password|token|refreshToken|sessionKey)"\s*:\s*")([^"]*)(")`)
)

// Mask replaces sensitive values in the input string with "***".
func Mask(s string) string {
	out := s
	out = rePassword.ReplaceAllString(out, "$1***")
	out = reToken.ReplaceAllString(out, "$1***")
	out = reSessionKey.ReplaceAllString(out, "$1***")
	out = reJSONSecret.ReplaceAllString(out, "$1***$3")
	for _, k := range []string{"SRM_SESSION", "ACCESS_TOKEN"} {
		out = strings.ReplaceAll(out, k+"=", k+"=***")
	}
	return out
}
