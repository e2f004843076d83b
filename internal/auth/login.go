package auth

import (
	"context"
	"fmt"

	"github.com/RichMan125/srm-ui/internal/backend"
	apperrors "github.com/RichMan125/srm-ui/internal/errors"
	"github.com/RichMan125/srm-ui/internal/locale"
	"github.com/RichMan125/srm-ui/internal/storage"
)

// LoginOutcome describes a successful login.
type LoginOutcome struct {
	Profile Profile
	// TabsCleared is true when a different user than last time signed in.
	TabsCleared bool
	// Redirected is true when the navigator was asked to return to the
	// route that sent the user to login.
	Redirected bool
}

// Login submits form and, on success, establishes the session.
//
// A backend rejection is shown through the notifier, resets the store and
// returns an error of kind CaptchaRejected or LoginRejected. A transport
// failure or a failed profile fetch also resets the store. A call made while
// another Login is running returns LoginInProgress without side effects.
//
// When redirect is true the navigator returns to the originally requested
// route, unless the tab cache was just cleared.
func (s *Store) Login(ctx context.Context, form backend.LoginForm, redirect bool) (LoginOutcome, error) {
	if !s.loginLoading.CompareAndSwap(false, true) {
		return LoginOutcome{}, apperrors.New(apperrors.LoginInProgress, "a login is already in progress")
	}
	defer s.loginLoading.Store(false)

	log := s.log.With().Str("username", form.Username).Logger()
	log.Debug().Msg("login started")

	res, err := s.api.Login(ctx, form)
	if err != nil {
		log.Warn().Err(err).Msg("login request failed")
		s.resetAfterFailure(ctx)
		return LoginOutcome{}, fmt.Errorf("login: %w", err)
	}

	if res.Failed() {
		kind, key := apperrors.LoginRejected, locale.CredentialError
		if res.Reason == backend.ReasonCaptcha {
			kind, key = apperrors.CaptchaRejected, locale.CaptchaError
		}
		content := s.tr.T(key)
		log.Info().Str("reason", res.Reason).Msg("login rejected")
		s.notify.Error(Notice{Title: s.tr.T(locale.ErrorTitle), Content: content, Duration: noticeDuration})
		s.resetAfterFailure(ctx)
		return LoginOutcome{}, apperrors.New(kind, content)
	}

	if err := s.loginByToken(ctx, res.LoginToken); err != nil {
		log.Warn().Err(err).Msg("session not established")
		s.resetAfterFailure(ctx)
		return LoginOutcome{}, err
	}

	profile := s.Profile()
	cleared := s.CheckTabClear()
	needRedirect := redirect && !cleared
	if err := s.nav.RedirectFromLogin(ctx, needRedirect); err != nil {
		log.Warn().Err(err).Msg("redirect after login failed")
	}

	s.notify.Success(Notice{
		Title:    s.tr.T(locale.LoginSuccess),
		Content:  s.tr.T(locale.WelcomeBack, profile.DisplayName()),
		Duration: noticeDuration,
	})
	log.Info().Str("user_id", profile.ID).Bool("tabs_cleared", cleared).Msg("login succeeded")

	return LoginOutcome{Profile: profile, TabsCleared: cleared, Redirected: needRedirect}, nil
}

// loginByToken confirms the bundle by fetching the profile with it, then
// persists it and takes the session key as the in-memory token. Nothing is
// persisted until the profile fetch succeeds.
func (s *Store) loginByToken(ctx context.Context, tok backend.LoginToken) error {
	cred := credentialOf(tok.SessionKey)
	profile, err := s.fetchProfile(ctx, cred)
	if err != nil {
		return apperrors.Wrap(apperrors.ProfileUnavailable, "could not load user profile", err)
	}

	if err := s.persistBundle(tok); err != nil {
		return apperrors.Wrap(apperrors.StorageFailed, "could not persist session", err)
	}
	s.setSession(tok.SessionKey, profile)
	return nil
}

// persistBundle writes the credential and, when present, the access and refresh tokens.
func (s *Store) persistBundle(tok backend.LoginToken) error {
	if tok.SessionKey != "" {
		if err := s.kv.Set(storage.KeyToken, credentialOf(tok.SessionKey)); err != nil {
			return err
		}
	}
	if tok.Token != "" {
		if err := s.kv.Set(storage.KeyAccessToken, tok.Token); err != nil {
			return err
		}
	}
	if tok.RefreshToken != "" {
		if err := s.kv.Set(storage.KeyRefreshToken, tok.RefreshToken); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) resetAfterFailure(ctx context.Context) {
	if err := s.ResetStore(ctx); err != nil {
		s.log.Warn().Err(err).Msg("reset after failed login incomplete")
	}
}
