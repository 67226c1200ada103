package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/desktop"
)

var (
	flagWindowWidth  int
	flagWindowHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a resizable desktop window.

Controls:
  Space/Up/W   - Flap (restarts after game over)
  Click/Touch  - Flap, or press PLAY AGAIN after game over
  R/Enter      - Restart (after game over)
  Ctrl+S       - Save a screenshot to ~/.arcade/screenshots
  Esc/Q        - Quit

Examples:
  flappy window
  flappy window --width 1024 --height 640`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWindowWidth, "width", 640, "Initial window width in pixels")
	windowCmd.Flags().IntVar(&flagWindowHeight, "height", 480, "Initial window height in pixels")
}

func runWindow(cmd *cobra.Command, args []string) {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		fail("%v", err)
	}

	tracker, closeStore := openTracker(logger)

	runErr := desktop.Run(desktop.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  flagWindowWidth,
			ScreenH:  flagWindowHeight,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Best:          tracker,
		Logger:        logger,
		ScreenshotDir: screenshotDir(),
	})

	closeStore()

	if runErr != nil {
		fail("running game: %v", runErr)
	}
}
