package cmd

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/RichMan125/srm-ui/internal/auth"
	"github.com/RichMan125/srm-ui/internal/httperrors"
	"github.com/RichMan125/srm-ui/internal/locale"
	"github.com/RichMan125/srm-ui/internal/storage"
)

var whoamiJSON bool

// whoamiCmd shows the signed-in user after checking the session with the backend.
var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Aliases: []string{"me"},
	Short:   "Show the signed-in user",
	Long: `The whoami command checks the stored session with the backend and prints the
user's profile: id, names, roles and permission buttons. A session the backend
no longer accepts is cleared.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		out := cmd.OutOrStdout()

		if !s.store.IsLogin() {
			pterm.Info.WithWriter(cmd.ErrOrStderr()).Println(s.tr.T(locale.NotLoggedIn))
			return nil
		}
		if err := s.store.InitUserInfo(cmd.Context()); err != nil {
			if auth.IsUnauthorized(err) {
				pterm.Info.WithWriter(cmd.ErrOrStderr()).Println(s.tr.T(locale.NotLoggedIn))
				return nil
			}
			return httperrors.FormatNetworkError(err, "loading your profile", httperrors.ExtractHostFromURL(s.host))
		}

		p := s.store.Profile()
		if whoamiJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(p)
		}

		rows := pterm.TableData{
			{"ID", p.ID},
			{"Username", p.Username},
			{"Name", p.Realname},
			{"Roles", strings.Join(p.Roles, ", ")},
			{"Buttons", strings.Join(p.Buttons, ", ")},
		}
		if s.store.IsStaticSuper() {
			rows = append(rows, []string{"Super", "yes"})
		}
		access, _ := storage.GetOr(s.kv, storage.KeyAccessToken, "")
		if exp, ok := auth.TokenExpiry(access); ok {
			rows = append(rows, []string{"Token expires", exp.Local().Format(time.RFC1123)})
		}
		return pterm.DefaultTable.WithWriter(out).WithData(rows).Render()
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
	whoamiCmd.Flags().BoolVar(&whoamiJSON, "json", false, "Print the profile as JSON")
}
