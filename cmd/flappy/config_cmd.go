package main

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var flagFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after applying
--config and --difficulty. The output is a complete config file and can be
saved to ~/.arcade/configs/flappy.yaml (or .toml) as a starting point.

Examples:
  flappy config
  flappy config --difficulty hard
  flappy config --format toml > ~/.arcade/configs/flappy.toml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(cmd *cobra.Command, args []string) {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		fail("%v", err)
	}

	if err := writeConfig(os.Stdout, cfg, flagFormat); err != nil {
		fail("%v", err)
	}
}

// writeConfig encodes cfg in the named format.
func writeConfig(w io.Writer, cfg config.FlappyConfig, format string) error {
	switch format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "toml":
		if err := toml.NewEncoder(w).Encode(cfg); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (want yaml or toml)", format)
	}
}
