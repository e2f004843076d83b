package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// reportCmd sends a diagnostic code and message to the backend.
var reportCmd = &cobra.Command{
	Use:    "report-error CODE MESSAGE...",
	Short:  "Send an error report to the backend",
	Args:   cobra.MinimumNArgs(2),
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()
		return s.store.ReportError(cmd.Context(), args[0], strings.Join(args[1:], " "))
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
