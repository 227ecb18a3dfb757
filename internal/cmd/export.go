package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gatherhq/gather/internal/api"
	"github.com/gatherhq/gather/internal/errors"
	"github.com/gatherhq/gather/internal/ical"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your events as an iCalendar file",
	Long: `Export the events you host or attend as an iCalendar (.ics) file,
ready to import into any calendar application.

By default the calendar is written to stdout; use --out for a file.

Examples:
  gather export --out my-events.ics
  gather export > my-events.ics`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		user, err := app.session.RequireUser()
		if err != nil {
			return err
		}

		all, err := app.client.ListEvents(cmd.Context(), api.EventFilter{})
		if err != nil {
			return err
		}

		var mine []api.Event
		for _, event := range all {
			if event.IsHostedBy(user.ID) || event.HasAttendee(user.ID) {
				mine = append(mine, event)
			}
		}
		if len(mine) == 0 {
			return errors.New(errors.ErrCodeEventNotFound, "no events to export").
				WithSuggestion("Join an event first with 'gather events join'")
		}

		name := fmt.Sprintf("%s's events", user.FirstName)
		if out == "" {
			return ical.Write(os.Stdout, mine, name)
		}

		f, err := os.Create(out)
		if err != nil {
			return errors.Wrap(errors.ErrCodeFileWriteFailed,
				fmt.Sprintf("could not create %s", out), err)
		}
		defer f.Close()

		if err := ical.Write(f, mine, name); err != nil {
			return err
		}
		fmt.Printf("%s Wrote %d events to %s\n", okStyle.Render("✓"), len(mine), out)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "", "Output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
