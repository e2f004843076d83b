// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// RefreshToken posts {"refreshToken": ...} to the refresh endpoint and
// returns the new bundle. The backend may or may not rotate the refresh token;
// when it does not, the returned bundle keeps the one that was sent.
func (h *HTTP) RefreshToken(ctx context.Context, refreshToken string) (LoginToken, error) {
	body, err := json.Marshal(map[string]string{"refreshToken": refreshToken})
	if err != nil {
		return LoginToken{}, err
	}

	req, err := h.newRequest(ctx, http.MethodPost, h.endpoints.RefreshToken, bytes.NewReader(body))
	if err != nil {
		return LoginToken{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.do(req)
	if err != nil {
		return LoginToken{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return LoginToken{}, fmt.Errorf("refresh token expired or invalid: %w", ErrUnauthorized)
	}
	if resp.StatusCode != http.StatusOK {
		return LoginToken{}, statusError("refresh-token", resp)
	}

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return LoginToken{}, err
	}

	tok := extractLoginToken(result)
	if tok.Token == "" && tok.SessionKey == "" {
		return LoginToken{}, errors.New("no token in refresh response")
	}
	if tok.RefreshToken == "" {
		tok.RefreshToken = refreshToken
	}
	return tok, nil
}

// extractLoginToken reads a token bundle from a decoded response.
// It tries the common field spellings so a backend rename does not break login.
func extractLoginToken(result map[string]any) LoginToken {
	return LoginToken{
		Token:        firstString(result, "token", "accessToken", "access_token"),
		RefreshToken: firstString(result, "refreshToken", "refresh_token"),
		SessionKey:   firstString(result, "sessionKey", "session_key"),
	}
}

// firstString returns the first non-empty string value among keys.
func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
