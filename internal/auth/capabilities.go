package auth

import (
	"context"
	"time"
)

// Notice is a user-facing notification.
type Notice struct {
	Title   string
	Content string
	// Duration is how long the notice stays visible; zero means the surface default.
	Duration time.Duration
}

// noticeDuration matches the display time of login notices.
const noticeDuration = 4500 * time.Millisecond

// Notifier shows notifications. Calls are fire-and-forget.
type Notifier interface {
	Error(n Notice)
	Success(n Notice)
}

// Navigator performs route transitions.
type Navigator interface {
	// RouteIsConstant reports whether the current route is reachable
	// without a session (login, 404, ...).
	RouteIsConstant() bool
	ToLogin(ctx context.Context) error
	// RedirectFromLogin leaves the login route, back to the originally
	// requested route when redirect is true, to home otherwise.
	RedirectFromLogin(ctx context.Context, redirect bool) error
}

// TabCache is the workspace tab collection.
type TabCache interface {
	// CacheTabs persists the open tabs so a later session may restore them.
	CacheTabs() error
	ClearTabs() error
}

// RouteStore holds route-level cached state derived from the session.
type RouteStore interface {
	Reset()
}

type nopNotifier struct{}

func (nopNotifier) Error(Notice)   {}
func (nopNotifier) Success(Notice) {}

type nopNavigator struct{}

func (nopNavigator) RouteIsConstant() bool                         { return true }
func (nopNavigator) ToLogin(context.Context) error                 { return nil }
func (nopNavigator) RedirectFromLogin(context.Context, bool) error { return nil }

type nopTabs struct{}

func (nopTabs) CacheTabs() error { return nil }
func (nopTabs) ClearTabs() error { return nil }

type nopRoutes struct{}

func (nopRoutes) Reset() {}
