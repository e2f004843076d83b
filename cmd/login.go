// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/RichMan125/srm-ui/internal/auth"
	"github.com/RichMan125/srm-ui/internal/backend"
	apperrors "github.com/RichMan125/srm-ui/internal/errors"
	"github.com/RichMan125/srm-ui/internal/httperrors"
	"github.com/RichMan125/srm-ui/internal/logging"
	"github.com/RichMan125/srm-ui/internal/terminal"
)

var (
	loginUsername     string
	loginBusinessDate string
	loginCaptcha      string
	loginCaptchaOut   string
	loginNoRedirect   bool
)

// loginCmd signs in with username, password and, when the backend asks
// for one, a captcha code.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Sign in to the SRM backend",
	Long: `The login command signs in with a username and password. The password is
read from the terminal without echo, or from SRM_PASSWORD when stdin is not a
terminal. When the backend serves a captcha, its image is saved to a file and
the code is prompted for.

On success the session is kept in the configured storage backend. Signing in
as a different user than last time drops the cached workspace tabs.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		out := cmd.ErrOrStderr()

		if s.store.IsLogin() {
			if err := s.store.InitUserInfo(ctx); err == nil {
				pterm.Info.WithWriter(out).Printfln("Already logged in as %s", s.store.Profile().DisplayName())
				return nil
			}
		}

		interactive := terminal.IsInteractive()
		form := backend.LoginForm{
			Username:     loginUsername,
			BusinessDate: loginBusinessDate,
			Captcha:      loginCaptcha,
		}
		if form.BusinessDate == "" {
			form.BusinessDate = time.Now().Format(time.DateOnly)
		}
		if form.Username == "" {
			if !interactive {
				return errors.New("username is required: pass --username")
			}
			form.Username = promptLine(out, "Username: ")
		}
		if form.Password = os.Getenv("SRM_PASSWORD"); form.Password == "" {
			if !interactive {
				return errors.New("password is required: set SRM_PASSWORD")
			}
			if form.Password, err = promptSecret(out, "Password: "); err != nil {
				return err
			}
		}
		if form.Captcha == "" && interactive {
			form.Captcha = askCaptcha(cmd, s)
		}

		var (
			outcome auth.LoginOutcome
			lerr    error
		)
		runWithSpinner("Signing in", s.store.LoginLoading, func() {
			outcome, lerr = s.store.Login(ctx, form, !loginNoRedirect)
		})
		if lerr != nil {
			return presentLoginError(s, lerr)
		}

		if outcome.TabsCleared {
			pterm.Info.WithWriter(out).Println("Signed in as a different user; cached tabs were cleared")
		}
		s.log.Debug().Str("route", s.router.Current()).Msg("landed")
		return nil
	},
}

// askCaptcha saves the captcha image, if the backend serves one, and prompts
// for its code. It returns "" when no captcha is available.
func askCaptcha(cmd *cobra.Command, s *session) string {
	img, err := s.store.CaptchaImage(cmd.Context())
	if err != nil {
		s.log.Debug().Err(err).Msg("no captcha")
		return ""
	}
	path := loginCaptchaOut
	if path == "" {
		ext := ".img"
		if exts, _ := mime.ExtensionsByType(img.ContentType); len(exts) > 0 {
			ext = exts[0]
		}
		path = filepath.Join(os.TempDir(), "srm-captcha"+ext)
	}
	if err := os.WriteFile(path, img.Data, 0o600); err != nil {
		s.log.Warn().Err(err).Msg("could not save captcha image")
		return ""
	}
	out := cmd.ErrOrStderr()
	pterm.Info.WithWriter(out).Printfln("Captcha image saved to %s", path)
	return promptLine(out, "Captcha: ")
}

func presentLoginError(s *session, err error) error {
	switch {
	case apperrors.Is(err, apperrors.LoginRejected), apperrors.Is(err, apperrors.CaptchaRejected):
		return errReported
	case apperrors.Is(err, apperrors.LoginInProgress):
		return err
	case apperrors.Is(err, apperrors.ProfileUnavailable):
		if auth.IsUnauthorized(err) {
			return fmt.Errorf("signed in, but the backend rejected the new session")
		}
		return errors.New(logging.PresentError("signed in, but the profile could not be loaded", err))
	}
	return httperrors.FormatNetworkError(err, "signing in", httperrors.ExtractHostFromURL(s.host))
}

func init() {
	rootCmd.AddCommand(loginCmd)
	f := loginCmd.Flags()
	f.StringVarP(&loginUsername, "username", "u", "", "Account name")
	f.StringVar(&loginBusinessDate, "business-date", "", "Business date (YYYY-MM-DD); defaults to today")
	f.StringVar(&loginCaptcha, "captcha", "", "Captcha code, skips the captcha prompt")
	f.StringVar(&loginCaptchaOut, "captcha-out", "", "Where to save the captcha image")
	f.BoolVar(&loginNoRedirect, "no-redirect", false, "Go to the home route instead of the route that required login")
}
