package core

// RuntimeConfig is what a frontend knows before the first frame: the
// initial viewport, the tick rate and the obstacle seed.
type RuntimeConfig struct {
	ScreenW  int   // Columns for the terminal UI, pixels for a window
	ScreenH  int   // Rows for the terminal UI, pixels for a window
	TickRate int   // Simulation ticks per second
	Seed     int64 // Pipe height seed; 0 picks one from the clock
}

// DefaultConfig returns an 80x24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
