package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gatherhq/gather/internal/api"
	"github.com/gatherhq/gather/internal/session"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage your Gather account session",
	Long: `Manage your Gather account session.

Credentials are stored in ~/.gather/credentials.json with owner-only
permissions. Every command validates the stored token on startup and
drops it if the backend rejects it.

Subcommands:
  login     Login with email and password
  register  Create a new account
  google    Login with a Google account
  logout    Logout and remove stored credentials
  status    Show the current session

Examples:
  gather auth login --email user@example.com
  gather auth register
  gather auth status
  gather auth logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Login with email and password",
	Long: `Login to Gather with your email and password.

Missing flags are prompted for interactively; the password prompt never
echoes. On success the token pair is saved locally.

Examples:
  gather auth login
  gather auth login --email user@example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		if err := promptLogin(&email, &password); err != nil {
			return err
		}

		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		result := app.session.Login(cmd.Context(), email, password)
		if !result.Success {
			return fmt.Errorf("%s", result.Error)
		}

		fmt.Printf("%s Logged in as %s\n", okStyle.Render("✓"), app.session.User().FullName())
		return nil
	},
}

var authRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `Create a new Gather account and log straight in.

All fields are collected interactively.

Examples:
  gather auth register`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var req api.RegisterRequest
		if err := promptRegister(&req); err != nil {
			return err
		}

		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		result := app.session.Register(cmd.Context(), req)
		if !result.Success {
			return fmt.Errorf("%s", result.Error)
		}

		fmt.Printf("%s Welcome, %s!\n", okStyle.Render("✓"), app.session.User().FullName())
		return nil
	},
}

var authGoogleCmd = &cobra.Command{
	Use:   "google",
	Short: "Login with a Google account",
	Long: `Login to Gather through Google.

The command prints a consent URL; open it in a browser, approve access,
and paste the authorization code back. Requires GATHER_GOOGLE_CLIENT_ID
and GATHER_GOOGLE_CLIENT_SECRET (or the config file equivalents).

Examples:
  gather auth google`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		token, err := session.GoogleAccessToken(cmd.Context(),
			app.cfg.GoogleClientID, app.cfg.GoogleClientSecret,
			os.Stdin, os.Stdout)
		if err != nil {
			return err
		}

		result := app.session.LoginWithGoogle(cmd.Context(), token)
		if !result.Success {
			return fmt.Errorf("%s", result.Error)
		}

		fmt.Printf("%s Logged in as %s\n", okStyle.Render("✓"), app.session.User().FullName())
		return nil
	},
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Logout and remove stored credentials",
	Long: `Logout of Gather.

The backend is notified best-effort; local credentials are removed
either way, so logout always succeeds.

Examples:
  gather auth logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		if !app.session.IsAuthenticated() {
			fmt.Println("Not logged in.")
			return nil
		}

		fmt.Printf("Logging out %s\n", app.session.User().Email)
		app.session.Logout(cmd.Context())
		fmt.Println("Logged out.")
		return nil
	},
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	Long: `Show whether you are logged in and as whom.

Examples:
  gather auth status`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd.Context())
		if err != nil {
			return err
		}

		if !app.session.IsAuthenticated() {
			fmt.Println("Not logged in. Run 'gather auth login' to get started.")
			return nil
		}

		user := app.session.User()
		fmt.Printf("Logged in as %s <%s>\n", user.FullName(), user.Email)
		fmt.Printf("Backend: %s\n", app.cfg.APIURL)
		return nil
	},
}

func init() {
	authLoginCmd.Flags().String("email", "", "Email address")
	authLoginCmd.Flags().String("password", "", "Password (prompted when omitted)")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authRegisterCmd)
	authCmd.AddCommand(authGoogleCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authStatusCmd)

	rootCmd.AddCommand(authCmd)
}
