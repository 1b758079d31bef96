package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone            Action = iota
	ActionLeft                   // A, Left arrow - move piece left
	ActionRight                  // D, Right arrow - move piece right
	ActionRotate                 // W, Up arrow - rotate piece
	ActionSoftDrop               // S, Down arrow - move piece down one row
	ActionHardDrop               // Space - drop and lock
	ActionHold                   // R, C - swap with held piece
	ActionPause                  // P - pause/unpause game
	ActionToggleGrid             // G - grid overlay
	ActionToggleHold             // T - hold feature on/off
	ActionToggleHoldLimit        // L - one hold per piece
	ActionToggleLanding          // V - projected landing preview
	ActionToggleQueue            // N - upcoming piece preview
	ActionConfirm                // Enter - confirm selection in menu
	ActionBack                   // B, Escape - go back to menu
	ActionQuit                   // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotate:
		return "Rotate"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionHold:
		return "Hold"
	case ActionPause:
		return "Pause"
	case ActionToggleGrid:
		return "ToggleGrid"
	case ActionToggleHold:
		return "ToggleHold"
	case ActionToggleHoldLimit:
		return "ToggleHoldLimit"
	case ActionToggleLanding:
		return "ToggleLanding"
	case ActionToggleQueue:
		return "ToggleQueue"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerPhase is the stage of a single-contact pointer gesture.
type PointerPhase int

const (
	PointerStart PointerPhase = iota
	PointerMove
	PointerEnd
)

// String returns a human-readable name for the phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerStart:
		return "start"
	case PointerMove:
		return "move"
	case PointerEnd:
		return "end"
	default:
		return "unknown"
	}
}

// PointerEvent is one raw pointer sample. Coordinates are in screen cells;
// games scale them to their own units.
type PointerEvent struct {
	Phase PointerPhase
	X, Y  int
	At    time.Time
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointer holds pointer samples in arrival order. Gesture classification
	// depends on the sequence, so these are not collapsed like Actions.
	Pointer []PointerEvent
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

// AddPointer appends a pointer sample.
func (f *InputFrame) AddPointer(ev PointerEvent) {
	f.Pointer = append(f.Pointer, ev)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = f.Pointer[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if len(f.Pointer) > 0 {
		clone.Pointer = append([]PointerEvent(nil), f.Pointer...)
	}
	return clone
}
