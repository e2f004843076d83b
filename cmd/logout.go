// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/RichMan125/srm-ui/internal/locale"
)

// logoutCmd ends the session locally.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	Long: `The logout command removes the session key, access token and refresh token
from storage. The signed-in user's id is remembered so the next login can tell
whether the cached workspace tabs still belong to the same user; the open tabs
themselves are cached for that login.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		// Load the profile first so its id is recorded as the last login.
		if s.store.IsLogin() {
			if err := s.store.GetUserInfo(cmd.Context()); err != nil {
				s.log.Debug().Err(err).Msg("profile unavailable at logout")
			}
		}
		if err := s.store.ResetStore(cmd.Context()); err != nil {
			return err
		}
		pterm.Success.WithWriter(cmd.ErrOrStderr()).Println(s.tr.T(locale.LoggedOut))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
