package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"krishisakha/internal/config"
	"krishisakha/internal/logging"
)

var (
	// Global flags
	verbose    bool
	workspace  string
	configPath string

	// Logger
	logger *zap.Logger
)

const (
	// tuiAnnotation marks commands that take over the terminal; they must not
	// write log lines to stderr.
	tuiAnnotation = "tui"
	// lenientConfigAnnotation marks commands that still run when the config
	// file fails to load.
	lenientConfigAnnotation = "lenient-config"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sakha",
	Short: "Krishi-Sakha - smart farming assistant",
	Long: `Krishi-Sakha shows weather, crop analysis, alerts and market prices
for a farm from built-in sample data.

Run without arguments to open the tabbed dashboard. Use "sakha farmer" for
the farmer screen with its English/Hindi selector.`,
	Annotations:   map[string]string{tuiAnnotation: "true"},
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[tuiAnnotation] == "true" {
			logger = zap.NewNop()
		} else {
			cfg := zap.NewProductionConfig()
			if verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
		}

		ws, err := resolveWorkspace()
		if err != nil {
			return err
		}
		workspace = ws

		cfg, err := loadConfig()
		if err != nil {
			if cmd.Annotations[lenientConfigAnnotation] == "true" {
				logger.Warn("ignoring config load error", zap.Error(err))
				return nil
			}
			return err
		}
		opts := cfg.Logging.Options()
		if verbose {
			opts.Level = "debug"
		}
		if err := logging.Initialize(workspace, opts); err != nil {
			return fmt.Errorf("failed to initialize file logging: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAll()
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace directory (default: nearest directory containing .sakha, else current)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: <workspace>/.sakha/config.yaml)")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	rootCmd.AddCommand(farmerCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveWorkspace returns the --workspace flag as an absolute path, or the
// nearest ancestor containing .sakha.
func resolveWorkspace() (string, error) {
	if workspace != "" {
		abs, err := filepath.Abs(workspace)
		if err != nil {
			return "", fmt.Errorf("failed to resolve workspace: %w", err)
		}
		return abs, nil
	}
	return config.FindWorkspaceRoot()
}

// resolvedConfigPath returns --config or the workspace default.
func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultConfigPath(workspace)
}

func loadConfig() (*config.Config, error) {
	path := resolvedConfigPath()
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}
