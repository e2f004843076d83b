// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// GetUserInfo calls GET on the user info endpoint with the session credential.
// Returns ErrUnauthorized when the backend holds no session for it.
func (h *HTTP) GetUserInfo(ctx context.Context, credential string) (UserInfo, error) {
	req, err := h.newRequest(ctx, http.MethodGet, h.endpoints.UserInfo, nil)
	if err != nil {
		return UserInfo{}, err
	}
	setCredential(req, credential)

	resp, err := h.do(req)
	if err != nil {
		return UserInfo{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return UserInfo{}, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return UserInfo{}, statusError("get-user-info", resp)
	}

	var info UserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return UserInfo{}, fmt.Errorf("decode user info: %w", err)
	}
	return info, nil
}
