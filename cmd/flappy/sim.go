package main

import (
	"fmt"
	"os"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	flagTicks     int
	flagSimWidth  int
	flagSimHeight int
	flagNoPlot    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless session with the autopilot",
	Long: `Run the simulation without a display. The autopilot flaps toward the
next gap until the bird crashes or the tick budget runs out, then prints
a summary and a plot of the bird's altitude.

The same --seed always produces the same run.

Examples:
  flappy sim
  flappy sim --seed 42 --ticks 10000
  flappy sim --difficulty hard --no-plot`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum ticks to simulate")
	simCmd.Flags().IntVar(&flagSimWidth, "width", 640, "World width in pixels")
	simCmd.Flags().IntVar(&flagSimHeight, "height", 384, "World height in pixels")
	simCmd.Flags().BoolVar(&flagNoPlot, "no-plot", false, "Skip the altitude plot")
}

// simReport summarizes one headless run.
type simReport struct {
	Ticks    int
	Score    int
	Flaps    int
	Crashed  bool
	Cause    flappy.CrashCause
	Altitude []float64 // Height above the ground line, one sample per tick
}

// runHeadless plays one session with pilot for at most ticks steps.
func runHeadless(cfg config.FlappyConfig, width, height float64, seed int64, ticks int, pilot flappy.Autopilot) simReport {
	sim := flappy.New(cfg, width, height, seed)
	obs := cfg.Obstacles

	var r simReport
	for r.Ticks < ticks {
		if pilot.ShouldFlap(sim.Snapshot(), obs.PipeWidth, obs.PipeGap, obs.CollisionPadding) && sim.Flap() {
			r.Flaps++
		}

		res := sim.Tick()
		r.Ticks++
		r.Altitude = append(r.Altitude, sim.GroundY()-sim.Bird().Y)

		for _, e := range res.Events {
			if e.Kind == flappy.EventCrashed {
				r.Crashed = true
				r.Cause = e.Cause
			}
		}
		if r.Crashed {
			break
		}
	}
	r.Score = sim.Score()
	return r
}

func runSim(cmd *cobra.Command, args []string) {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		fail("%v", err)
	}
	if flagTicks <= 0 {
		fail("--ticks must be positive, got %d", flagTicks)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	start := time.Now()
	r := runHeadless(cfg, float64(flagSimWidth), float64(flagSimHeight), seed, flagTicks, flappy.DefaultAutopilot())
	logger.Debug("simulation finished", "ticks", r.Ticks, "elapsed", time.Since(start))

	fmt.Printf("Seed:   %d\n", seed)
	fmt.Printf("World:  %dx%d\n", flagSimWidth, flagSimHeight)
	fmt.Printf("Ticks:  %d\n", r.Ticks)
	fmt.Printf("Flaps:  %d\n", r.Flaps)
	fmt.Printf("Score:  %d\n", r.Score)
	if r.Crashed {
		fmt.Printf("Result: crashed into %s\n", r.Cause)
	} else {
		fmt.Println("Result: survived")
	}

	if flagNoPlot || len(r.Altitude) < 2 {
		return
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(r.Altitude,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.Caption("altitude above ground (px) per tick"),
	))
}
