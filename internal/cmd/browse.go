package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gatherhq/gather/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse events interactively",
	Long: `Open the interactive event browser.

Search and category filters apply as you type, with results fetched
after a short pause. From the list you can open events, join or leave
them, comment, create new events, and view your profile.

Requires a logged-in session; run 'gather auth login' first.

Examples:
  gather browse`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if _, err := app.session.RequireUser(); err != nil {
			return err
		}

		program := tea.NewProgram(
			tui.NewApp(cmd.Context(), app.client, app.session, app.logger),
			tea.WithAltScreen(),
			tea.WithContext(cmd.Context()),
		)
		_, err = program.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
