package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"buzzboard/internal/config"
	"buzzboard/internal/logging"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	// Global flags
	cfgPath string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "buzzboard",
	Short: "buzzboard - influencer campaign planner",
	Long: `buzzboard walks you through six questions about your business and
campaign, then derives a budget estimate, an expected return and a
recommended channel, and shows them on a personalized dashboard.

Run without arguments to start the interactive planner.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cmd == configInitCmd {
			// init replaces the file, so a broken one must not block it.
			cfg = config.DefaultConfig()
		} else if cfg, err = loadConfig(); err != nil {
			return err
		}

		// The planner owns the terminal, so it only logs to a file.
		if !cmd.HasParent() {
			logger, err = logging.NewInteractive(cfg.Logging)
		} else {
			logger, err = logging.New(cfg.Logging)
		}
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logging.For(logger, logging.CategoryBoot).Debug("configuration loaded",
			zap.String("path", resolvedConfigPath()),
			zap.String("schema", cfg.Schema.Path))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runPlanner,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the buzzboard version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "buzzboard %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "Config file (default: ~/.buzzboard/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func resolvedConfigPath() string {
	if cfgPath != "" {
		return cfgPath
	}
	return config.DefaultPath()
}

// loadConfig reads the config file, applies --verbose and validates the result.
func loadConfig() (*config.Config, error) {
	c, err := config.Load(resolvedConfigPath())
	if err != nil {
		return nil, err
	}
	if verbose {
		c.Logging.Level = "debug"
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}
