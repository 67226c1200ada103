// flappy is a flappy-bird style arcade game for the terminal.
//
// Usage:
//
//	flappy                   - Play in the terminal (same as "flappy play")
//	flappy play              - Play in the terminal
//	flappy window            - Play in a desktop window
//	flappy best [--reset]    - Show or reset the stored high score
//	flappy sim               - Run a headless session with the autopilot
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Load a YAML or TOML config file
//	--difficulty <name>   - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Log destination while the terminal UI runs
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - guide a bird through the pipes",
	Long: `Flappy is a flappy-bird style arcade game that runs in your terminal
or in a desktop window.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  best     - Show or reset the stored high score
  sim      - Run a headless session with the autopilot
  config   - Print the effective configuration

Examples:
  flappy
  flappy play --difficulty hard
  flappy window --seed 42
  flappy sim --ticks 5000
  flappy best --reset`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", defaultLogFile, "Log file used while the terminal UI runs")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
