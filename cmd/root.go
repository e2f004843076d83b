// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the SRM session client.
// It implements sign-in, sign-out and session inspection commands on top of
// the auth session store using the Cobra CLI framework.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/RichMan125/srm-ui/internal/logging"
)

// errReported is returned by commands that already told the user what went wrong.
var errReported = errors.New("reported")

var (
	showVersion bool
	verbose     bool
	flagLocale  string
	flagStorage string
	flagBaseURL string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "srm",
	Short:         "SRM session client",
	Long:          `srm signs in to an SRM backend, keeps the session in the OS keyring and shows who is signed in.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			os.Setenv(logging.VerboseEnv, "1")
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			printVersion(cmd.OutOrStdout())
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, logging.Mask(err.Error()))
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&flagLocale, "locale", "", "Message language (en, zh-CN)")
	pf.StringVar(&flagStorage, "storage", "", "Session storage backend (keyring, file, redis, memory)")
	pf.StringVar(&flagBaseURL, "base-url", "", "SRM backend base URL")
}
