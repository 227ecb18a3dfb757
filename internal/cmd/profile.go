package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gatherhq/gather/internal/api"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your profile and events",
	Long: `Show your profile: the events you host and the events you attend.

Examples:
  gather profile`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		user, err := app.session.RequireUser()
		if err != nil {
			return err
		}

		hosted, err := app.client.ListEvents(cmd.Context(), api.EventFilter{Host: user.ID})
		if err != nil {
			return err
		}
		all, err := app.client.ListEvents(cmd.Context(), api.EventFilter{})
		if err != nil {
			return err
		}

		// The list endpoint has no attendee filter; narrow client-side.
		var attending []api.Event
		for _, event := range all {
			if event.HasAttendee(user.ID) && !event.IsHostedBy(user.ID) {
				attending = append(attending, event)
			}
		}

		fmt.Println(headingStyle.Render(user.FullName()))
		fmt.Println(labelStyle.Render(user.Email))
		fmt.Println()

		fmt.Println(headingStyle.Render(fmt.Sprintf("Hosting (%d)", len(hosted))))
		printEventSummaries(hosted)
		fmt.Println()
		fmt.Println(headingStyle.Render(fmt.Sprintf("Attending (%d)", len(attending))))
		printEventSummaries(attending)
		return nil
	},
}

func printEventSummaries(events []api.Event) {
	if len(events) == 0 {
		fmt.Println("  nothing yet")
		return
	}
	for _, event := range events {
		suffix := ""
		if event.IsPast {
			suffix = labelStyle.Render("  (past)")
		}
		fmt.Printf("  %-6d %s  %s%s\n", event.ID, event.Title,
			labelStyle.Render(event.DateTime.Format("2006-01-02 15:04")), suffix)
	}
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
