package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/gradecraft/rosterctl/pkg/config"
	"github.com/gradecraft/rosterctl/pkg/session"
)

// Package-level state shared by the commands, set up by the root
// command's PersistentPreRunE.
var (
	cfg    *config.Config
	logger *zap.Logger
	sess   *session.Session

	configPath  string
	showMetrics bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rosterctl",
	Short: "Rosterctl - Student roster management",
	Long: `Rosterctl manages an in-memory roster of student records for the
lifetime of one invocation: add, remove, search, list, and grade
statistics (average, highest, lowest). Student ids and names are
unique across the roster.

State is transient; nothing is written to disk between runs.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Flags override the config file.
		if cmd.Flags().Changed("format") {
			cfg.Output.Format, _ = cmd.Flags().GetString("format")
		}
		if cmd.Flags().Changed("quiet") {
			cfg.Output.Quiet, _ = cmd.Flags().GetBool("quiet")
		}
		if cmd.Flags().Changed("log-level") {
			cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err = newLogger(cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}

		sess = session.New(logger)
		logger.Debug("session started", zap.String("session_id", sess.ID()))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if showMetrics && sess != nil {
			if err := sess.Metrics().Dump(os.Stderr); err != nil {
				return fmt.Errorf("failed to dump metrics: %w", err)
			}
		}
		if logger != nil {
			_ = logger.Sync()
		}
		return nil
	},
	// Running rosterctl with no subcommand drops into the menu.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(cmd.InOrStdin(), cmd.OutOrStdout(), sess, cfg)
	},
}

// newLogger builds a zap logger writing to stderr so menu output on
// stdout stays clean.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}
	return zcfg.Build()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "rosterctl.yaml", "path to config file")
	rootCmd.PersistentFlags().StringP("format", "o", config.FormatTable, "output format (table or json)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-essential messages")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&showMetrics, "show-metrics", false, "dump operation metrics to stderr on exit")

	rootCmd.AddCommand(menuCmd)
}
