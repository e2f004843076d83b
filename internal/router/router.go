// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package router keeps the client's navigation state: the current route,
// the route a login redirect should return to, and the routes visited during
// the session. State is persisted under storage.KeyRoute so it survives
// between invocations.
package router

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/RichMan125/srm-ui/internal/auth"
	"github.com/RichMan125/srm-ui/internal/storage"
)

// LoginRoute is where ToLogin sends the user.
const LoginRoute = "/login"

// constantRoutes are reachable without a session.
var constantRoutes = []string{LoginRoute, "/403", "/404", "/500"}

// IsConstant reports whether path needs no session.
func IsConstant(path string) bool {
	return slices.Contains(constantRoutes, normalize(path))
}

// State is the persisted navigation state.
type State struct {
	Current  string   `json:"current"`
	Redirect string   `json:"redirect,omitempty"`
	Visited  []string `json:"visited,omitempty"`
}

// Router implements auth.Navigator and auth.RouteStore.
type Router struct {
	mu    sync.Mutex
	kv    storage.Store
	home  string
	state State
}

var (
	_ auth.Navigator  = (*Router)(nil)
	_ auth.RouteStore = (*Router)(nil)
)

// New loads the persisted state. A missing or unreadable state starts at the
// login route.
func New(kv storage.Store, home string) *Router {
	if home == "" {
		home = "/home"
	}
	r := &Router{kv: kv, home: normalize(home), state: State{Current: LoginRoute}}
	raw, err := storage.GetOr(kv, storage.KeyRoute, "")
	if err == nil && raw != "" {
		var st State
		if json.Unmarshal([]byte(raw), &st) == nil && st.Current != "" {
			r.state = st
		}
	}
	return r
}

// State returns a copy of the navigation state.
func (r *Router) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	st := r.state
	st.Visited = slices.Clone(st.Visited)
	return st
}

// Current returns the current route.
func (r *Router) Current() string { return r.State().Current }

// Home returns the route used after login when there is nowhere to return to.
func (r *Router) Home() string { return r.home }

// Push navigates to path.
func (r *Router) Push(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	path = normalize(path)
	r.state.Current = path
	if !IsConstant(path) && !slices.Contains(r.state.Visited, path) {
		r.state.Visited = append(r.state.Visited, path)
	}
	return r.save()
}

func (r *Router) RouteIsConstant() bool { return IsConstant(r.Current()) }

// ToLogin navigates to the login route and remembers the current route as
// the redirect target.
func (r *Router) ToLogin(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state.Current != LoginRoute {
		if !IsConstant(r.state.Current) {
			r.state.Redirect = r.state.Current
		}
		r.state.Current = LoginRoute
	}
	return r.save()
}

// RedirectFromLogin leaves the login route. With redirect set and a
// remembered target it returns there, otherwise it goes home. The target is
// consumed either way.
func (r *Router) RedirectFromLogin(_ context.Context, redirect bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	target := r.home
	if redirect && r.state.Redirect != "" {
		target = r.state.Redirect
	}
	r.state.Redirect = ""
	r.state.Current = target
	return r.save()
}

// Reset forgets the routes visited during the session.
func (r *Router) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state.Visited = nil
	_ = r.save()
}

func (r *Router) save() error {
	b, err := json.Marshal(r.state)
	if err != nil {
		return err
	}
	if err := r.kv.Set(storage.KeyRoute, string(b)); err != nil {
		return fmt.Errorf("save route: %w", err)
	}
	return nil
}

func normalize(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}
