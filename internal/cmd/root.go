package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gatherhq/gather/internal/api"
	"github.com/gatherhq/gather/internal/config"
	"github.com/gatherhq/gather/internal/log"
	"github.com/gatherhq/gather/internal/session"
)

var rootCmd = &cobra.Command{
	Use:   "gather",
	Short: "Discover and host local events",
	Long: `gather is a terminal client for the Gather event platform.
Browse upcoming events, join the ones you like, host your own,
and keep the conversation going in event comments.

Run 'gather browse' for the interactive interface, or use the
subcommands for scripting and quick lookups.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// ExecuteContext runs the root command with the given context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// app bundles the wired client stack for a command invocation.
type app struct {
	cfg     *config.Config
	logger  *log.Logger
	client  *api.Client
	session *session.Manager
}

// newApp loads configuration, builds the API client, and restores any
// persisted session.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := log.New(log.Config{
		Level:  log.ParseLevel(cfg.LogLevel),
		Format: log.ParseFormat(cfg.LogFormat),
		Output: log.OutputStderr(),
	})
	log.SetDefaultLogger(logger)

	client := api.NewClient(cfg.APIURL)
	mgr := session.NewManager(client, session.NewStore(config.DefaultDir()), logger)
	mgr.Init(ctx)

	return &app{
		cfg:     cfg,
		logger:  logger,
		client:  client,
		session: mgr,
	}, nil
}
