package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	captchaOut     string
	captchaDataURL bool
)

// captchaCmd fetches a captcha challenge without signing in.
var captchaCmd = &cobra.Command{
	Use:   "captcha",
	Short: "Fetch a captcha image",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if captchaDataURL {
			u := s.store.GetCaptcha(cmd.Context())
			if u == "" {
				return fmt.Errorf("no captcha available")
			}
			fmt.Fprintln(cmd.OutOrStdout(), u)
			return nil
		}

		img, err := s.store.CaptchaImage(cmd.Context())
		if err != nil {
			return err
		}
		if captchaOut == "" || captchaOut == "-" {
			_, err = cmd.OutOrStdout().Write(img.Data)
			return err
		}
		return os.WriteFile(captchaOut, img.Data, 0o600)
	},
}

func init() {
	rootCmd.AddCommand(captchaCmd)
	captchaCmd.Flags().StringVarP(&captchaOut, "out", "o", "", "Write the image to this file (default stdout)")
	captchaCmd.Flags().BoolVar(&captchaDataURL, "data-url", false, "Print the image as a data: URL")
}
