package auth

import (
	"context"
	"errors"

	"github.com/RichMan125/srm-ui/internal/backend"
	"github.com/RichMan125/srm-ui/internal/storage"
)

// ErrNoSession is returned when an operation needs a session and none is held.
var ErrNoSession = errors.New("no session")

// GetUserInfo fetches the profile for the current session and replaces the
// held profile with the previous one overlaid by the returned fields.
// On failure the previous profile is left untouched.
func (s *Store) GetUserInfo(ctx context.Context) error {
	cred := s.credential()
	if cred == "" {
		return ErrNoSession
	}
	p, err := s.fetchProfile(ctx, cred)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.profile = p
	s.mu.Unlock()
	return nil
}

// fetchProfile returns the current profile merged with the backend's answer
// for cred, without storing it.
func (s *Store) fetchProfile(ctx context.Context, cred string) (Profile, error) {
	info, err := s.api.GetUserInfo(ctx, cred)
	if err != nil {
		return Profile{}, err
	}
	return s.Profile().merge(info), nil
}

// InitUserInfo is the bootstrap hook: when a persisted session exists it
// loads the profile, and resets the store if the session turns out invalid.
// Without a persisted session it does nothing.
func (s *Store) InitUserInfo(ctx context.Context) error {
	if _, err := s.persistedCredential(); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return err
	}
	if err := s.GetUserInfo(ctx); err != nil {
		s.log.Info().Err(err).Msg("persisted session is no longer valid")
		if rerr := s.ResetStore(ctx); rerr != nil {
			return errors.Join(err, rerr)
		}
		return err
	}
	return nil
}

// IsUnauthorized reports whether err means the backend holds no session.
func IsUnauthorized(err error) bool {
	return errors.Is(err, backend.ErrUnauthorized) || errors.Is(err, ErrNoSession)
}
