package core

// Action represents a semantic game action, abstracted from physical key presses.
// Keyboard, mouse and touch all resolve to the same small set of intents.
type Action int

const (
	ActionNone       Action = iota
	ActionFlap              // Space, Up, W, pointer press, touch start
	ActionRestart           // R, Enter, or the play-again button after game over
	ActionQuit              // Q, Ctrl+C - exit the program
	ActionScreenshot        // Ctrl+S - save the current frame
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions triggered during one simulation tick.
// It is a set, not a queue: triggering the same action twice in one frame
// is indistinguishable from triggering it once.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
