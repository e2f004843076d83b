package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/RichMan125/srm-ui/internal/manifest"
)

func newTestAPI(t *testing.T, r chi.Router) API {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return New(srv.URL, manifest.DefaultEndpoints(), WithHTTPClient(srv.Client()))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestLoginSendsMultipartForm(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/accountLogin", func(w http.ResponseWriter, req *http.Request) {
		require.NoError(t, req.ParseMultipartForm(1<<20))
		require.Equal(t, "alice", req.FormValue("username"))
		require.Equal(t, "hunter2", req.FormValue("password"))
		require.Equal(t, "2026-10-19", req.FormValue("bussionDate"))
		require.Equal(t, "x7k2", req.FormValue("captcha"))
		require.NotEmpty(t, req.Header.Get("X-Request-ID"))
		writeJSON(w, http.StatusOK, map[string]string{"token": "t1", "refreshToken": "r1", "sessionKey": "s1"})
	})
	api := newTestAPI(t, r)

	res, err := api.Login(context.Background(), LoginForm{
		Username: "alice", Password: "hunter2", BusinessDate: "2026-10-19", Captcha: "x7k2",
	})
	require.NoError(t, err)
	require.False(t, res.Failed())
	require.Equal(t, LoginToken{Token: "t1", RefreshToken: "r1", SessionKey: "s1"}, res.LoginToken)
}

func TestLoginRejection(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/accountLogin", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "error", "reason": ReasonCaptcha})
	})
	api := newTestAPI(t, r)

	res, err := api.Login(context.Background(), LoginForm{Username: "alice"})
	require.NoError(t, err)
	require.True(t, res.Failed())
	require.Equal(t, ReasonCaptcha, res.Reason)
	require.Empty(t, res.SessionKey)
}

func TestLoginTransportFailures(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/accountLogin", func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})
	api := newTestAPI(t, r)
	_, err := api.Login(context.Background(), LoginForm{})
	require.ErrorContains(t, err, "502")

	r2 := chi.NewRouter()
	r2.Post("/accountLogin", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"hello": "world"})
	})
	api = newTestAPI(t, r2)
	_, err = api.Login(context.Background(), LoginForm{})
	require.ErrorContains(t, err, "sessionKey")
}

func TestGetUserInfo(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/getUserInfo", func(w http.ResponseWriter, req *http.Request) {
		c, err := req.Cookie("sessionKey")
		if err != nil || c.Value != "s1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": "u1", "realname": "Alice", "roles": []string{"R_SUPER"}})
	})
	api := newTestAPI(t, r)

	info, err := api.GetUserInfo(context.Background(), "sessionKey=s1")
	require.NoError(t, err)
	require.Equal(t, "u1", *info.ID)
	require.Equal(t, "Alice", *info.Realname)
	require.Nil(t, info.Username)
	require.Nil(t, info.Buttons)
	require.Equal(t, []string{"R_SUPER"}, info.Roles)

	_, err = api.GetUserInfo(context.Background(), "sessionKey=stale")
	require.True(t, errors.Is(err, ErrUnauthorized))

	_, err = api.GetUserInfo(context.Background(), "")
	require.True(t, errors.Is(err, ErrUnauthorized))
}

func TestRefreshToken(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/auth/refreshToken", func(w http.ResponseWriter, req *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		switch body["refreshToken"] {
		case "r1":
			writeJSON(w, http.StatusOK, map[string]string{"access_token": "t2", "sessionKey": "s2"})
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	})
	api := newTestAPI(t, r)

	tok, err := api.RefreshToken(context.Background(), "r1")
	require.NoError(t, err)
	require.Equal(t, LoginToken{Token: "t2", RefreshToken: "r1", SessionKey: "s2"}, tok)

	_, err = api.RefreshToken(context.Background(), "expired")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestReportError(t *testing.T) {
	got := make(chan [2]string, 1)
	r := chi.NewRouter()
	r.Get("/auth/error", func(w http.ResponseWriter, req *http.Request) {
		got <- [2]string{req.URL.Query().Get("code"), req.URL.Query().Get("msg")}
		w.WriteHeader(http.StatusNoContent)
	})
	api := newTestAPI(t, r)

	require.NoError(t, api.ReportError(context.Background(), "E42", "token expired & retried"))
	require.Equal(t, [2]string{"E42", "token expired & retried"}, <-got)
}

func TestGetCaptcha(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n0000")
	r := chi.NewRouter()
	r.Get("/captcha", func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, "1", req.URL.Query().Get("type"))
		_, _ = w.Write(png)
	})
	api := newTestAPI(t, r)

	c, err := api.GetCaptcha(context.Background())
	require.NoError(t, err)
	require.Equal(t, png, c.Data)
	require.Equal(t, "image/png", c.ContentType)
}

func TestGetCaptchaEmptyBody(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/captcha", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	api := newTestAPI(t, r)

	c, err := api.GetCaptcha(context.Background())
	require.NoError(t, err)
	require.Empty(t, c.Data)
}
