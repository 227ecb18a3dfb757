package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/gatherhq/gather/internal/api"
	"github.com/gatherhq/gather/internal/errors"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List, inspect, and manage events",
	Long: `List, inspect, and manage events.

Subcommands:
  list      List upcoming events, with optional filters
  show      Show a single event with its comments
  create    Create a new event
  join      Join an event
  leave     Leave an event
  comments  List an event's comments
  comment   Post a comment on an event

Examples:
  gather events list --category tech --search "go meetup"
  gather events show 42
  gather events join 42
  gather events comment 42 "See you there!"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List upcoming events",
	Long: `List upcoming events.

Filters combine: category and search are both applied server-side.

Examples:
  gather events list
  gather events list --category food
  gather events list --search picnic --mine`,
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		search, _ := cmd.Flags().GetString("search")
		mine, _ := cmd.Flags().GetBool("mine")

		if category != "" && !api.ValidCategory(category) {
			return errors.New(errors.ErrCodeInputInvalid,
				fmt.Sprintf("unknown category %q", category)).
				WithSuggestion("Valid categories: " + strings.Join(categoryValues(), ", "))
		}

		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		filter := api.EventFilter{Category: category, Search: search}
		if mine {
			user, err := app.session.RequireUser()
			if err != nil {
				return err
			}
			filter.Host = user.ID
		}

		events, err := app.client.ListEvents(cmd.Context(), filter)
		if err != nil {
			return err
		}

		if len(events) == 0 {
			fmt.Println("No events found.")
			return nil
		}
		for _, event := range events {
			fmt.Println(renderEventLine(event))
		}
		return nil
	},
}

var eventsShowCmd = &cobra.Command{
	Use:   "show <event-id>",
	Short: "Show a single event",
	Long: `Show a single event with its full description and comments.

Examples:
  gather events show 42`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEventID(args[0])
		if err != nil {
			return err
		}

		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		event, err := app.client.GetEvent(cmd.Context(), id)
		if err != nil {
			return err
		}
		comments, err := app.client.ListComments(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Print(renderEventDetail(event, comments))
		return nil
	},
}

var eventsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new event",
	Long: `Create a new event.

The date is given as "YYYY-MM-DD HH:MM" in local time. Omitting
--max-attendees leaves the event uncapped.

Examples:
  gather events create --title "Go Meetup" --category tech \
    --location "12 Main St" --date "2026-09-12 18:30"
  gather events create --title "Dinner" --category food \
    --location "My place" --date "2026-09-20 19:00" --max-attendees 6`,
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		description, _ := cmd.Flags().GetString("description")
		category, _ := cmd.Flags().GetString("category")
		location, _ := cmd.Flags().GetString("location")
		date, _ := cmd.Flags().GetString("date")
		maxAttendees, _ := cmd.Flags().GetInt("max-attendees")

		if title == "" || category == "" || location == "" || date == "" {
			return errors.New(errors.ErrCodeInputRequired,
				"--title, --category, --location and --date are required")
		}
		if !api.ValidCategory(category) {
			return errors.New(errors.ErrCodeInputInvalid,
				fmt.Sprintf("unknown category %q", category)).
				WithSuggestion("Valid categories: " + strings.Join(categoryValues(), ", "))
		}
		when, err := time.ParseInLocation("2006-01-02 15:04", date, time.Local)
		if err != nil {
			return errors.New(errors.ErrCodeInputInvalid,
				"--date must look like \"2026-09-12 18:30\"")
		}
		if cmd.Flags().Changed("max-attendees") && maxAttendees < 1 {
			return errors.New(errors.ErrCodeInputInvalid,
				"--max-attendees must be at least 1")
		}

		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if _, err := app.session.RequireUser(); err != nil {
			return err
		}

		req := api.CreateEventRequest{
			Title:       title,
			Description: description,
			Category:    category,
			Location:    location,
			DateTime:    when,
		}
		if cmd.Flags().Changed("max-attendees") {
			req.MaxAttendees = &maxAttendees
		}

		event, err := app.client.CreateEvent(cmd.Context(), req)
		if err != nil {
			return err
		}

		fmt.Printf("%s Created event %d: %s\n", okStyle.Render("✓"), event.ID, event.Title)
		return nil
	},
}

var eventsJoinCmd = &cobra.Command{
	Use:   "join <event-id>",
	Short: "Join an event",
	Long: `Join an event as an attendee.

The backend enforces capacity; joining a full event fails with the
server's explanation.

Examples:
  gather events join 42`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMembership(cmd, args[0], true)
	},
}

var eventsLeaveCmd = &cobra.Command{
	Use:   "leave <event-id>",
	Short: "Leave an event",
	Long: `Leave an event you previously joined.

Examples:
  gather events leave 42`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMembership(cmd, args[0], false)
	},
}

func runMembership(cmd *cobra.Command, arg string, join bool) error {
	id, err := parseEventID(arg)
	if err != nil {
		return err
	}

	app, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	if _, err := app.session.RequireUser(); err != nil {
		return err
	}

	if join {
		if err := app.client.JoinEvent(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("%s You're in!\n", okStyle.Render("✓"))
		return nil
	}
	if err := app.client.LeaveEvent(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Printf("%s You left the event.\n", okStyle.Render("✓"))
	return nil
}

var eventsCommentsCmd = &cobra.Command{
	Use:   "comments <event-id>",
	Short: "List an event's comments",
	Long: `List the comments on an event, oldest first.

Examples:
  gather events comments 42`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEventID(args[0])
		if err != nil {
			return err
		}

		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		comments, err := app.client.ListComments(cmd.Context(), id)
		if err != nil {
			return err
		}

		if len(comments) == 0 {
			fmt.Println("No comments yet.")
			return nil
		}
		for _, comment := range comments {
			fmt.Printf("%s %s\n  %s\n",
				valueStyle.Render(comment.User.FullName()),
				labelStyle.Render(comment.CreatedAt.Format("2006-01-02 15:04")),
				comment.Text)
		}
		return nil
	},
}

var eventsCommentCmd = &cobra.Command{
	Use:   "comment <event-id> <text>",
	Short: "Post a comment on an event",
	Long: `Post a comment on an event.

Whitespace-only comments are rejected before any request is made.

Examples:
  gather events comment 42 "See you there!"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseEventID(args[0])
		if err != nil {
			return err
		}

		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		if _, err := app.session.RequireUser(); err != nil {
			return err
		}

		comment, err := app.client.PostComment(cmd.Context(), id, args[1])
		if err != nil {
			return err
		}

		fmt.Printf("%s Comment %d posted.\n", okStyle.Render("✓"), comment.ID)
		return nil
	},
}

// parseEventID parses a positional event id argument.
func parseEventID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New(errors.ErrCodeInputInvalid,
			fmt.Sprintf("%q is not an event id", arg))
	}
	return id, nil
}

func categoryValues() []string {
	values := make([]string, len(api.Categories))
	for i, c := range api.Categories {
		values[i] = c.Value
	}
	return values
}

func init() {
	eventsListCmd.Flags().String("category", "", "Filter by category")
	eventsListCmd.Flags().String("search", "", "Full-text search on title, description and location")
	eventsListCmd.Flags().Bool("mine", false, "Only events you host")

	eventsCreateCmd.Flags().String("title", "", "Event title (required)")
	eventsCreateCmd.Flags().String("description", "", "Event description")
	eventsCreateCmd.Flags().String("category", "", "Event category (required)")
	eventsCreateCmd.Flags().String("location", "", "Event location (required)")
	eventsCreateCmd.Flags().String("date", "", `Date and time, "YYYY-MM-DD HH:MM" (required)`)
	eventsCreateCmd.Flags().Int("max-attendees", 0, "Attendee limit (omit for no limit)")

	eventsCmd.AddCommand(eventsListCmd)
	eventsCmd.AddCommand(eventsShowCmd)
	eventsCmd.AddCommand(eventsCreateCmd)
	eventsCmd.AddCommand(eventsJoinCmd)
	eventsCmd.AddCommand(eventsLeaveCmd)
	eventsCmd.AddCommand(eventsCommentsCmd)
	eventsCmd.AddCommand(eventsCommentCmd)

	rootCmd.AddCommand(eventsCmd)
}
