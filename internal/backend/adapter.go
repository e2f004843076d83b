// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend provides the request builders for the SRM session endpoints.
// Every call is a single round trip: no retries, no caching. Transport and
// status failures are returned to the caller unchanged apart from wrapping.
package backend

import (
	"context"
	"errors"
)

// ErrUnauthorized is returned when the backend reports no valid session (HTTP 401).
var ErrUnauthorized = errors.New("unauthorized")

// API defines backend operations the session store depends on.
// Implementations may call real HTTP endpoints or provide fakes for tests.
type API interface {
	// Login submits the login form. A rejection by the backend is not an
	// error: it is reported through LoginResult.Failed.
	Login(ctx context.Context, form LoginForm) (LoginResult, error)
	// GetUserInfo fetches the profile of the session identified by credential.
	GetUserInfo(ctx context.Context, credential string) (UserInfo, error)
	// RefreshToken exchanges a refresh token for a new token bundle.
	RefreshToken(ctx context.Context, refreshToken string) (LoginToken, error)
	// ReportError forwards a diagnostic code and message to the backend.
	ReportError(ctx context.Context, code, msg string) error
	// GetCaptcha fetches the captcha challenge image.
	GetCaptcha(ctx context.Context) (Captcha, error)
}

// LoginForm is the credential set submitted by the login screen.
type LoginForm struct {
	Username string
	Password string
	// BusinessDate is the accounting date the session works in, e.g. "2026-10-19".
	BusinessDate string
	Captcha      string
}

// LoginToken is the token bundle issued on successful login or refresh.
type LoginToken struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	SessionKey   string `json:"sessionKey"`
}

// LoginResult is the body of a login response: either a rejection
// (Status "error" with a Reason) or a token bundle.
type LoginResult struct {
	Status string
	Reason string
	LoginToken
}

// Failed reports whether the backend rejected the login.
func (r LoginResult) Failed() bool { return r.Status == StatusError }

// StatusError marks a rejected login inside an otherwise successful response.
const StatusError = "error"

// ReasonCaptcha is the rejection reason for a wrong captcha answer.
const ReasonCaptcha = "CaptchaException"

// UserInfo is a profile as returned by the backend. Fields absent from the
// response are nil, so callers can merge onto a previous profile.
type UserInfo struct {
	ID       *string  `json:"id"`
	Username *string  `json:"username"`
	Realname *string  `json:"realname"`
	Roles    []string `json:"roles"`
	Buttons  []string `json:"buttons"`
}

// Captcha is a captcha challenge image. Data is empty when the backend sent no payload.
type Captcha struct {
	Data        []byte
	ContentType string
}
