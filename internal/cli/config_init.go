package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/ghgfocus/internal/config"
)

// NewConfigInitCmd creates the "init" subcommand that writes a starter
// configuration file with the builtin defaults spelled out.
func NewConfigInitCmd() *cobra.Command {
	var (
		path  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				var err error
				path, err = config.DefaultConfigPath()
				if err != nil {
					return err
				}
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
			}

			cfg := &config.Config{
				Logging: config.LoggingConfig{Level: "info", Format: "console"},
				Output:  config.OutputConfig{DefaultFormat: config.OutputFormatTable},
				Cache:   config.CacheConfig{Enabled: true, TTLSeconds: 300},
			}
			if err := config.Save(cfg, path); err != nil {
				return err
			}

			cmd.Printf("Wrote configuration to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "destination path (default ~/.ghgfocus/config.yaml)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

// NewConfigValidateCmd creates the "validate" subcommand that loads a
// configuration file and reports whether it parses and validates cleanly,
// including any custom scenarios it declares.
func NewConfigValidateCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if path == "" {
				var err error
				path, err = config.DefaultConfigPath()
				if err != nil {
					return err
				}
			}

			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("config %s is invalid: %w", path, err)
			}
			registry, err := cfg.BuildRegistry()
			if err != nil {
				return fmt.Errorf("config %s is invalid: %w", path, err)
			}

			cmd.Printf("Config %s is valid (%d scenarios available)\n", path, len(registry.Names()))
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "config file to validate (default ~/.ghgfocus/config.yaml)")
	return cmd
}
