// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package auth implements the client session: it owns the session token and
// the signed-in user's profile, runs the login and logout sequences, and
// decides when cached workspace tabs must be dropped because a different
// user signed in.
//
// A Store is an explicit session context. Callers construct one per
// application session and pass it to whatever needs it; there is no
// package-level state. The store reaches the outside world only through the
// backend API, the storage capability, and the interfaces in capabilities.go.
package auth

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/RichMan125/srm-ui/internal/backend"
	"github.com/RichMan125/srm-ui/internal/locale"
	"github.com/RichMan125/srm-ui/internal/storage"
)

// credentialPrefix formats the persisted session identifier.
const credentialPrefix = "sessionKey="

// Policy holds the route and refresh settings the store consults.
type Policy struct {
	// RouteMode is "static" or "dynamic".
	RouteMode       string
	StaticSuperRole string
	// RefreshSkew is how long before expiry RefreshSession renews a token.
	RefreshSkew time.Duration
}

// Options wires the store's collaborators. Nil fields get no-op implementations.
type Options struct {
	Notifier   Notifier
	Navigator  Navigator
	Tabs       TabCache
	Routes     RouteStore
	Translator *locale.Translator
	Logger     *zerolog.Logger
	Policy     Policy
	// Now is the clock; nil means time.Now.
	Now func() time.Time
}

// Store is the session store and login lifecycle controller.
type Store struct {
	api    backend.API
	kv     storage.Store
	notify Notifier
	nav    Navigator
	tabs   TabCache
	routes RouteStore
	tr     *locale.Translator
	log    zerolog.Logger
	policy Policy
	now    func() time.Time

	mu      sync.RWMutex
	token   string
	profile Profile

	// loginLoading is true for exactly the duration of one Login call and
	// doubles as the lock that rejects a concurrent second call.
	loginLoading atomic.Bool
}

// New builds a Store. The in-memory token starts from the persisted
// credential, if any, so a restarted client is considered logged in until
// InitUserInfo proves otherwise.
func New(api backend.API, kv storage.Store, opts Options) *Store {
	s := &Store{
		api:    api,
		kv:     kv,
		notify: opts.Notifier,
		nav:    opts.Navigator,
		tabs:   opts.Tabs,
		routes: opts.Routes,
		tr:     opts.Translator,
		policy: opts.Policy,
		now:    opts.Now,
		log:    zerolog.Nop(),
	}
	if s.notify == nil {
		s.notify = nopNotifier{}
	}
	if s.nav == nil {
		s.nav = nopNavigator{}
	}
	if s.tabs == nil {
		s.tabs = nopTabs{}
	}
	if s.routes == nil {
		s.routes = nopRoutes{}
	}
	if s.tr == nil {
		s.tr = locale.New("en")
	}
	if opts.Logger != nil {
		s.log = opts.Logger.With().Str("component", "auth").Logger()
	}
	if s.now == nil {
		s.now = time.Now
	}

	if cred, err := s.persistedCredential(); err == nil {
		s.token = sessionKeyOf(cred)
	} else if !errors.Is(err, storage.ErrNotFound) {
		s.log.Warn().Err(err).Msg("could not read persisted session")
	}
	return s
}

// Token returns the current session key; empty when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsLogin reports whether a session token is held.
func (s *Store) IsLogin() bool { return s.Token() != "" }

// LoginLoading reports whether a Login call is in flight.
func (s *Store) LoginLoading() bool { return s.loginLoading.Load() }

// Profile returns a copy of the current profile.
func (s *Store) Profile() Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile.clone()
}

// IsStaticSuper reports whether routes are static and the profile holds
// the configured super role.
func (s *Store) IsStaticSuper() bool {
	return s.policy.RouteMode == "static" && s.Profile().HasRole(s.policy.StaticSuperRole)
}

func (s *Store) setSession(token string, p Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.profile = p
}

func (s *Store) persistedCredential() (string, error) {
	cred, err := s.kv.Get(storage.KeyToken)
	if err != nil {
		return "", err
	}
	if cred == "" {
		return "", storage.ErrNotFound
	}
	return cred, nil
}

// credential returns the value sent to the backend to identify the session.
func (s *Store) credential() string {
	if tok := s.Token(); tok != "" {
		return credentialOf(tok)
	}
	cred, _ := s.persistedCredential()
	return cred
}

func credentialOf(sessionKey string) string { return credentialPrefix + sessionKey }

func sessionKeyOf(credential string) string {
	return strings.TrimPrefix(credential, credentialPrefix)
}
