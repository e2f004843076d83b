package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
)

// Login posts the form as multipart/form-data to the login endpoint.
// The backend answers 200 both for a token bundle and for a rejection
// ({"status":"error","reason":...}); any other status is a transport failure.
func (h *HTTP) Login(ctx context.Context, form LoginForm) (LoginResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fields := []struct{ name, value string }{
		{"username", form.Username},
		{"password", form.Password},
		{"bussionDate", form.BusinessDate},
		{"captcha", form.Captcha},
	}
	for _, f := range fields {
		if err := mw.WriteField(f.name, f.value); err != nil {
			return LoginResult{}, fmt.Errorf("encode login form: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return LoginResult{}, fmt.Errorf("encode login form: %w", err)
	}

	req, err := h.newRequest(ctx, http.MethodPost, h.endpoints.Login, &buf)
	if err != nil {
		return LoginResult{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := h.do(req)
	if err != nil {
		return LoginResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return LoginResult{}, statusError("login", resp)
	}

	// Be liberal in what we accept: decode into a map first
	var raw map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return LoginResult{}, fmt.Errorf("decode login response: %w", err)
	}
	return parseLoginResult(raw)
}

// parseLoginResult turns a decoded login body into a LoginResult.
// A body that is neither a rejection nor carries a session key is malformed.
func parseLoginResult(raw map[string]any) (LoginResult, error) {
	var res LoginResult
	res.Status, _ = raw["status"].(string)
	if res.Failed() {
		res.Reason, _ = raw["reason"].(string)
		return res, nil
	}
	res.LoginToken = extractLoginToken(raw)
	if res.SessionKey == "" {
		return LoginResult{}, fmt.Errorf("login response carries no sessionKey")
	}
	return res, nil
}
