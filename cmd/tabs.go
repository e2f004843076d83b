package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/RichMan125/srm-ui/internal/tabs"
)

// tabsCmd manages the workspace tabs kept between sessions.
var tabsCmd = &cobra.Command{
	Use:   "tabs",
	Short: "List the cached workspace tabs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ts := s.tabs.List()
		if len(ts) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No open tabs")
			return nil
		}
		rows := pterm.TableData{{"Route", "Title"}}
		for _, t := range ts {
			rows = append(rows, []string{t.Route, t.Title})
		}
		return pterm.DefaultTable.WithHasHeader().WithWriter(cmd.OutOrStdout()).WithData(rows).Render()
	},
}

var tabsOpenCmd = &cobra.Command{
	Use:   "open ROUTE [TITLE]",
	Short: "Navigate to a route and keep a tab for it",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.router.Push(args[0]); err != nil {
			return err
		}
		t := tabs.Tab{Route: s.router.Current()}
		if len(args) == 2 {
			t.Title = args[1]
		}
		s.tabs.Open(t)
		return s.tabs.CacheTabs()
	},
}

var tabsCloseCmd = &cobra.Command{
	Use:   "close ROUTE",
	Short: "Close the tab for a route",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if !s.tabs.Close(args[0]) {
			return fmt.Errorf("no tab open for %s", args[0])
		}
		return s.tabs.CacheTabs()
	},
}

var tabsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Close every tab",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.tabs.ClearTabs(); err != nil {
			return err
		}
		return s.tabs.CacheTabs()
	},
}

// routeCmd shows the navigation state.
var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Show the current route and login redirect target",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		st := s.router.State()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "current:  %s\n", st.Current)
		if st.Redirect != "" {
			fmt.Fprintf(out, "redirect: %s\n", st.Redirect)
		}
		fmt.Fprintf(out, "home:     %s\n", s.router.Home())
		return nil
	},
}

func init() {
	tabsCmd.AddCommand(tabsOpenCmd, tabsCloseCmd, tabsClearCmd)
	rootCmd.AddCommand(tabsCmd, routeCmd)
}
