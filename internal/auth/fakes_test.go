package auth

import (
	"context"
	"sync"

	"github.com/RichMan125/srm-ui/internal/backend"
)

type fakeAPI struct {
	login     func(ctx context.Context, form backend.LoginForm) (backend.LoginResult, error)
	userInfo  func(ctx context.Context, cred string) (backend.UserInfo, error)
	refresh   func(ctx context.Context, rt string) (backend.LoginToken, error)
	captcha   func(ctx context.Context) (backend.Captcha, error)
	reported  [][2]string
	userCreds []string
}

func (f *fakeAPI) Login(ctx context.Context, form backend.LoginForm) (backend.LoginResult, error) {
	return f.login(ctx, form)
}

func (f *fakeAPI) GetUserInfo(ctx context.Context, cred string) (backend.UserInfo, error) {
	f.userCreds = append(f.userCreds, cred)
	return f.userInfo(ctx, cred)
}

func (f *fakeAPI) RefreshToken(ctx context.Context, rt string) (backend.LoginToken, error) {
	return f.refresh(ctx, rt)
}

func (f *fakeAPI) ReportError(ctx context.Context, code, msg string) error {
	f.reported = append(f.reported, [2]string{code, msg})
	return nil
}

func (f *fakeAPI) GetCaptcha(ctx context.Context) (backend.Captcha, error) {
	return f.captcha(ctx)
}

func str(s string) *string { return &s }

func tokenResult(sessionKey string) func(context.Context, backend.LoginForm) (backend.LoginResult, error) {
	return func(context.Context, backend.LoginForm) (backend.LoginResult, error) {
		return backend.LoginResult{LoginToken: backend.LoginToken{
			Token: "t-" + sessionKey, RefreshToken: "r-" + sessionKey, SessionKey: sessionKey,
		}}, nil
	}
}

func profileFor(id, realname string) func(context.Context, string) (backend.UserInfo, error) {
	return func(context.Context, string) (backend.UserInfo, error) {
		return backend.UserInfo{ID: str(id), Username: str(id), Realname: str(realname), Roles: []string{"R_USER"}}, nil
	}
}

type recordingNotifier struct {
	mu      sync.Mutex
	errors  []Notice
	success []Notice
}

func (n *recordingNotifier) Error(x Notice) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, x)
}

func (n *recordingNotifier) Success(x Notice) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.success = append(n.success, x)
}

type recordingNav struct {
	constant  bool
	toLogin   int
	redirects []bool
}

func (n *recordingNav) RouteIsConstant() bool { return n.constant }

func (n *recordingNav) ToLogin(context.Context) error {
	n.toLogin++
	return nil
}

func (n *recordingNav) RedirectFromLogin(_ context.Context, redirect bool) error {
	n.redirects = append(n.redirects, redirect)
	return nil
}

type recordingTabs struct {
	cached  int
	cleared int
}

func (t *recordingTabs) CacheTabs() error {
	t.cached++
	return nil
}

func (t *recordingTabs) ClearTabs() error {
	t.cleared++
	return nil
}

type recordingRoutes struct{ resets int }

func (r *recordingRoutes) Reset() { r.resets++ }
