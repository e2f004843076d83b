package cmd

import (
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/RichMan125/srm-ui/internal/auth"
	"github.com/RichMan125/srm-ui/internal/backend"
	"github.com/RichMan125/srm-ui/internal/httperrors"
	"github.com/RichMan125/srm-ui/internal/locale"
)

var refreshForce bool

// refreshCmd renews the session with the stored refresh token.
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Renew the session tokens",
	Long: `The refresh command exchanges the stored refresh token for a new token bundle.
Without --force it does so only when the access token is about to expire.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		out := cmd.ErrOrStderr()

		ok, err := s.store.RefreshSession(cmd.Context(), refreshForce)
		switch {
		case errors.Is(err, auth.ErrNoRefreshToken), errors.Is(err, backend.ErrUnauthorized):
			pterm.Info.WithWriter(out).Println(s.tr.T(locale.NotLoggedIn))
			return errReported
		case err != nil:
			return httperrors.FormatNetworkError(err, "refreshing the session", httperrors.ExtractHostFromURL(s.host))
		case ok:
			pterm.Success.WithWriter(out).Println("Session refreshed")
		default:
			pterm.Info.WithWriter(out).Println("Session is still fresh; use --force to refresh anyway")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(refreshCmd)
	refreshCmd.Flags().BoolVar(&refreshForce, "force", false, "Refresh even when the token is not about to expire")
}
