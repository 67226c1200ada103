package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal.

Controls:
  Space/Up/W - Flap (restarts after game over)
  Click      - Flap, or press PLAY AGAIN after game over
  R/Enter    - Restart (after game over)
  Ctrl+S     - Save a screenshot to ~/.arcade/screenshots
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Wider gaps, slower pipes
  normal - The configured course
  hard   - Narrower gaps, faster pipes

Examples:
  flappy play
  flappy play --difficulty hard
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(); err != nil {
		fail("%v", err)
	}
}

// play runs the terminal game. Errors are returned rather than exiting so
// the log file and the score store are closed on every path.
func play() error {
	out, closeLog := openLogFile()
	defer closeLog()

	logger, err := newLogger(out)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	// Get terminal size before the program starts
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	tracker, closeStore := openTracker(logger)
	defer closeStore()

	err = tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Best:          tracker,
		Logger:        logger,
		ScreenshotDir: screenshotDir(),
	})
	if err != nil {
		logger.Error("game exited with an error", "err", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
