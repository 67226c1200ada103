package main

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func TestRunHeadlessIsDeterministic(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	a := runHeadless(cfg, 640, 384, 42, 2000, flappy.DefaultAutopilot())
	b := runHeadless(cfg, 640, 384, 42, 2000, flappy.DefaultAutopilot())

	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed gave different runs: %+v vs %+v", a.Ticks, b.Ticks)
	}
	if a.Score == 0 {
		t.Error("autopilot should clear at least one pipe")
	}
	if len(a.Altitude) != a.Ticks {
		t.Errorf("got %d altitude samples for %d ticks", len(a.Altitude), a.Ticks)
	}
}

func TestRunHeadlessStopsOnCrash(t *testing.T) {
	// Aims far below the ground, so it only flaps to leave the start screen
	pilot := flappy.Autopilot{Bias: 1e9}
	r := runHeadless(config.DefaultFlappyConfig(), 640, 384, 1, 1000, pilot)

	if !r.Crashed || r.Cause != flappy.CauseGround {
		t.Fatalf("report = crashed %v cause %v, expected a ground crash", r.Crashed, r.Cause)
	}
	if r.Flaps != 1 {
		t.Errorf("flaps = %d, expected 1", r.Flaps)
	}
	if r.Ticks >= 1000 {
		t.Errorf("ran %d ticks, expected to stop at the crash", r.Ticks)
	}
}

func TestRunHeadlessTickBudget(t *testing.T) {
	r := runHeadless(config.DefaultFlappyConfig(), 640, 384, 1, 10, flappy.DefaultAutopilot())
	if r.Ticks != 10 || r.Crashed {
		t.Errorf("report = %d ticks crashed %v, expected 10 ticks alive", r.Ticks, r.Crashed)
	}
}

func TestWriteConfigIsLoadable(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	config.ApplyFlappyPreset(&cfg, config.DifficultyHard)

	tests := []struct {
		format string
		ext    string
	}{
		{"yaml", ".yaml"},
		{"toml", ".toml"},
	}

	for _, tc := range tests {
		t.Run(tc.format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeConfig(&buf, cfg, tc.format); err != nil {
				t.Fatalf("writeConfig() failed: %v", err)
			}
			got, err := config.Decode(buf.Bytes(), tc.ext)
			if err != nil {
				t.Fatalf("Decode() failed: %v\n%s", err, buf.String())
			}
			if got.Obstacles != cfg.Obstacles || got.Physics != cfg.Physics {
				t.Errorf("decoded config differs from the written one")
			}
		})
	}
}

func TestWriteConfigUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := writeConfig(&buf, config.DefaultFlappyConfig(), "json"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}
