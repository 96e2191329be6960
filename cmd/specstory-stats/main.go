package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jeanhaley32/specstory-stats/internal/config"
	"github.com/jeanhaley32/specstory-stats/internal/constants"
	"github.com/jeanhaley32/specstory-stats/internal/logger"
	"github.com/jeanhaley32/specstory-stats/internal/platform"
	"github.com/jeanhaley32/specstory-stats/internal/repo"
	"github.com/jeanhaley32/specstory-stats/internal/stats"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "specstory-stats",
		Short: "Show SpecStory cloud stats for the current project",
		Long: `Resolves the SpecStory project ID for a directory and fetches its stats.

The project ID is taken from .specstory/.project.json (git_id, then
workspace_id). Without one, it is derived by hashing the owner/repo of the
origin remote in .git/config, or the directory name.

The API base URL defaults to ` + constants.DefaultAPIURL + ` and can be
overridden with ` + constants.APIURLEnvVar + ` or --api-url.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runStats,
	}

	rootCmd.PersistentFlags().String("dir", "", "Project directory (defaults to current directory)")
	rootCmd.PersistentFlags().String("log-level", "", "Diagnostic log level: debug, info, warn, error (default warn)")
	rootCmd.Flags().String("api-url", "", "Stats API base URL (overrides "+constants.APIURLEnvVar+")")

	rootCmd.AddCommand(
		newIDCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// setup loads configuration and builds the diagnostic logger on stderr.
func setup(cmd *cobra.Command) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, logger.New(cfg.LogLevel, cmd.ErrOrStderr()), nil
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}

	identity, err := repo.NewIdentifier(log).Resolve(cfg.Dir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Project ID: %s\n", identity.ID)
	fmt.Fprintf(out, "Fetching stats from: %s\n\n", stats.URL(cfg.APIURL, identity.ID))

	if err := cfg.Validate(); err != nil {
		return err
	}

	client := stats.NewClient(cfg.APIURL, stats.WithLogger(log))

	result, err := client.Fetch(cmd.Context(), identity.ID)
	if err != nil {
		return err
	}

	pretty, err := result.Indent()
	if err != nil {
		return fmt.Errorf("failed to format stats: %w", err)
	}

	fmt.Fprintln(out, "Stats:")
	fmt.Fprintln(out, pretty)
	return nil
}

func newIDCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "id",
		Short: "Print the project ID without contacting the API",
		RunE:  runID,
	}

	cmd.Flags().Bool("raw", false, "Print only the ID")

	return cmd
}

func runID(cmd *cobra.Command, args []string) error {
	raw, err := cmd.Flags().GetBool("raw")
	if err != nil {
		return fmt.Errorf("invalid raw flag: %w", err)
	}

	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}

	identity, err := repo.NewIdentifier(log).Resolve(cfg.Dir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if raw {
		fmt.Fprintln(out, identity.ID)
		return nil
	}

	fmt.Fprintf(out, "Project ID: %s\n", identity.ID)
	fmt.Fprintf(out, "Source: %s\n", identity.Source)
	if identity.Input != "" {
		fmt.Fprintf(out, "Input: %s\n", identity.Input)
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "specstory-stats version %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "Platform: %s\n", platform.Detect())
		},
	}
}
