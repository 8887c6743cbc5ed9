package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // W, Up arrow - move paddle up
	ActionDown         // S, Down arrow - move paddle down
	ActionServe        // Space - start the round
	ActionPause        // P, Escape - pause/unpause
	ActionQuit         // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionServe:
		return "Serve"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions held during one simulation frame.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
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

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// DefaultHoldWindow is how long a key press counts as held when the input
// source only reports presses (terminals never report key releases).
const DefaultHoldWindow = 150 * time.Millisecond

// KeyState turns a stream of key-press events into "is held" signals.
// A key is held from its last press until the hold window elapses, which
// bridges the gap between the terminal's auto-repeat events.
type KeyState struct {
	window  time.Duration
	pressed map[Action]time.Time
}

// NewKeyState creates a tracker with the given hold window.
// A non-positive window falls back to DefaultHoldWindow.
func NewKeyState(window time.Duration) *KeyState {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &KeyState{
		window:  window,
		pressed: make(map[Action]time.Time),
	}
}

// Press records a key press for the action at the given time.
func (k *KeyState) Press(a Action, now time.Time) {
	if a == ActionNone {
		return
	}
	k.pressed[a] = now
}

// Release forgets the action immediately.
func (k *KeyState) Release(a Action) {
	delete(k.pressed, a)
}

// Held reports whether the action is considered held at the given time.
func (k *KeyState) Held(a Action, now time.Time) bool {
	at, ok := k.pressed[a]
	if !ok {
		return false
	}
	return now.Sub(at) < k.window
}

// Frame returns the set of actions held at the given time, dropping stale presses.
func (k *KeyState) Frame(now time.Time) InputFrame {
	frame := NewInputFrame()
	for a, at := range k.pressed {
		if now.Sub(at) < k.window {
			frame.Set(a)
		} else {
			delete(k.pressed, a)
		}
	}
	return frame
}

// Reset forgets every press.
func (k *KeyState) Reset() {
	for a := range k.pressed {
		delete(k.pressed, a)
	}
}
