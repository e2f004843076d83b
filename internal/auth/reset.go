package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/RichMan125/srm-ui/internal/storage"
)

// ResetStore ends the session: it records the current user id as the
// last-login marker, clears the persisted session keys and the in-memory
// token and profile, sends the user to login unless the current route needs
// no session, caches the open tabs and resets route state.
//
// Every step runs even when an earlier one fails; the failures are joined.
func (s *Store) ResetStore(ctx context.Context) error {
	var errs []error

	if err := s.recordUserID(); err != nil {
		errs = append(errs, fmt.Errorf("record last login user: %w", err))
	}
	if err := storage.ClearAuth(s.kv); err != nil {
		errs = append(errs, fmt.Errorf("clear session storage: %w", err))
	}
	s.setSession("", Profile{})

	if !s.nav.RouteIsConstant() {
		if err := s.nav.ToLogin(ctx); err != nil {
			errs = append(errs, fmt.Errorf("navigate to login: %w", err))
		}
	}
	if err := s.tabs.CacheTabs(); err != nil {
		errs = append(errs, fmt.Errorf("cache tabs: %w", err))
	}
	s.routes.Reset()

	s.log.Debug().Msg("session reset")
	return errors.Join(errs...)
}

// recordUserID stores the current profile id for the next login's comparison.
func (s *Store) recordUserID() error {
	id := s.Profile().ID
	if id == "" {
		return nil
	}
	return s.kv.Set(storage.KeyLastLoginUserID, id)
}

// CheckTabClear decides whether the cached tabs belong to another user.
//
// With no current profile id it returns false. Otherwise, when the
// last-login marker is missing or names a different user, the tabs are
// cleared and it returns true. The marker is consumed in both cases.
// An unreadable marker counts as missing.
func (s *Store) CheckTabClear() bool {
	id := s.Profile().ID
	if id == "" {
		return false
	}

	last, err := storage.GetOr(s.kv, storage.KeyLastLoginUserID, "")
	if err != nil {
		s.log.Warn().Err(err).Msg("could not read last login user; clearing tabs")
		last = ""
	}

	if last == "" || last != id {
		if err := s.kv.Remove(storage.KeyGlobalTabs); err != nil {
			s.log.Warn().Err(err).Msg("could not remove stored tabs")
		}
		if err := s.tabs.ClearTabs(); err != nil {
			s.log.Warn().Err(err).Msg("could not clear tabs")
		}
		s.removeMarker()
		return true
	}

	s.removeMarker()
	return false
}

func (s *Store) removeMarker() {
	if err := s.kv.Remove(storage.KeyLastLoginUserID); err != nil {
		s.log.Warn().Err(err).Msg("could not remove last login marker")
	}
}
