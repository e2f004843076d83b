package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/RichMan125/srm-ui/internal/backend"
	"github.com/RichMan125/srm-ui/internal/storage"
)

// ErrNoRefreshToken is returned by RefreshSession when none is persisted.
var ErrNoRefreshToken = errors.New("no refresh token")

// TokenExpiry reads the exp claim of a JWT without verifying its signature.
// The second result is false when tok is not a JWT or has no exp.
func TokenExpiry(tok string) (time.Time, bool) {
	if tok == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// RefreshSession exchanges the persisted refresh token for a new bundle.
//
// Unless force is set it only does so when the persisted access token is a
// JWT expiring within the policy's refresh skew. A refresh token the backend
// rejects ends the session.
func (s *Store) RefreshSession(ctx context.Context, force bool) (bool, error) {
	rt, err := storage.GetOr(s.kv, storage.KeyRefreshToken, "")
	if err != nil {
		return false, err
	}
	if rt == "" {
		return false, ErrNoRefreshToken
	}

	if !force {
		access, err := storage.GetOr(s.kv, storage.KeyAccessToken, "")
		if err != nil {
			return false, err
		}
		exp, ok := TokenExpiry(access)
		if !ok || exp.Sub(s.now()) > s.policy.RefreshSkew {
			return false, nil
		}
	}

	tok, err := s.api.RefreshToken(ctx, rt)
	if err != nil {
		if errors.Is(err, backend.ErrUnauthorized) {
			s.log.Info().Msg("refresh token rejected; ending session")
			if rerr := s.ResetStore(ctx); rerr != nil {
				return false, errors.Join(err, rerr)
			}
		}
		return false, fmt.Errorf("refresh session: %w", err)
	}

	if err := s.persistBundle(tok); err != nil {
		return false, fmt.Errorf("persist refreshed session: %w", err)
	}
	if tok.SessionKey != "" {
		s.mu.Lock()
		s.token = tok.SessionKey
		s.mu.Unlock()
	}
	s.log.Debug().Msg("session refreshed")
	return true, nil
}

// ReportError forwards a diagnostic to the backend. Failures are logged and returned.
func (s *Store) ReportError(ctx context.Context, code, msg string) error {
	if err := s.api.ReportError(ctx, code, msg); err != nil {
		s.log.Debug().Err(err).Str("code", code).Msg("report error failed")
		return err
	}
	return nil
}
