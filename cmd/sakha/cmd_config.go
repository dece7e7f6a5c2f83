package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"krishisakha/internal/config"
)

var configForce bool

// configCmd groups configuration commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the Krishi-Sakha configuration",
}

var configInitCmd = &cobra.Command{
	Use:         "init",
	Short:       "Write the default configuration file",
	Annotations: map[string]string{lenientConfigAnnotation: "true"},
	Args:        cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolvedConfigPath()
		if _, err := os.Stat(path); err == nil && !configForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := config.DefaultConfig().Save(path); err != nil {
			return err
		}
		logger.Info("wrote default config", zap.String("path", path))
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration, environment overrides included",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		out, err := cfg.YAML()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "Overwrite an existing config file")
}
