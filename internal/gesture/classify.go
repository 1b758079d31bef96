package gesture

import "time"

// Kind is the discrete game action a gesture resolves to.
type Kind int

const (
	None Kind = iota
	SlideHorizontal
	SlideVertical
	Rotate
	HardDrop
	Hold
	Pause
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case SlideHorizontal:
		return "slide-horizontal"
	case SlideVertical:
		return "slide-vertical"
	case Rotate:
		return "rotate"
	case HardDrop:
		return "hard-drop"
	case Hold:
		return "hold"
	case Pause:
		return "pause"
	default:
		return "unknown"
	}
}

// Thresholds shared by the rule tables. Distances are in pixels,
// velocities in path-pixels*100 per millisecond.
const (
	TapMaxMag       = 7.0
	PanelTapMaxMag  = 14.0
	SwipeMinDown    = 25.0
	SwipeMinUp      = 40.0
	SwipeMinSpeed   = 30.0
	SwipeMinAngle   = 45.0
	SwipeMaxAngle   = 135.0
	TapMaxDuration  = 250 * time.Millisecond
	TapMinDuration  = 50 * time.Millisecond
	SwipeMaxDuration = 200 * time.Millisecond
)

// Layout describes the play surface in the same pixel space as the pointer.
// The side panel starts at BoardRight.
type Layout struct {
	BoardLeft  float64
	BoardRight float64
	PlayHeight float64
}

// Context is the game state a rule may consult besides the features.
type Context struct {
	Active bool
	Layout Layout
}

// Rule binds a predicate to the gesture it produces.
type Rule struct {
	Name  string
	Kind  Kind
	Match func(f Features, c Context) bool
}

// Classify returns the Kind of the first rule in rules matching f, or None.
// Rules are evaluated in order and evaluation stops at the first match.
func Classify(rules []Rule, f Features, c Context) Kind {
	for _, r := range rules {
		if r.Match(f, c) {
			return r.Kind
		}
	}
	return None
}

// MoveRules is the rule table for move events.
var MoveRules = []Rule{
	{Name: "slide-horizontal", Kind: SlideHorizontal, Match: func(f Features, c Context) bool {
		return c.Active && f.Start.X >= c.Layout.BoardLeft && f.Start.X < c.Layout.BoardRight
	}},
	{Name: "slide-vertical", Kind: SlideVertical, Match: func(f Features, c Context) bool {
		return c.Active
	}},
}

// EndRules is the rule table for end events. Taps on the board rotate,
// downward flicks hard drop, upward flicks and taps on the upper panel hold,
// taps lower on the panel pause.
var EndRules = []Rule{
	{Name: "tap-rotate", Kind: Rotate, Match: func(f Features, c Context) bool {
		return c.Active && f.Mag < TapMaxMag && f.SinceStart < TapMaxDuration &&
			f.Pos.X < c.Layout.BoardRight
	}},
	{Name: "flick-hard-drop", Kind: HardDrop, Match: func(f Features, c Context) bool {
		abs := f.Angle
		if abs < 0 {
			abs = -abs
		}
		return c.Active && f.DeltaY > SwipeMinDown && f.AvgVelocity > SwipeMinSpeed &&
			f.Angle < 0 && abs >= SwipeMinAngle && abs <= SwipeMaxAngle &&
			f.SinceStart < SwipeMaxDuration
	}},
	{Name: "flick-hold", Kind: Hold, Match: func(f Features, c Context) bool {
		return c.Active && f.DeltaY < -SwipeMinUp && f.AvgVelocity > SwipeMinSpeed &&
			f.Angle >= SwipeMinAngle && f.Angle <= SwipeMaxAngle &&
			f.SinceStart < SwipeMaxDuration
	}},
	{Name: "panel-tap-hold", Kind: Hold, Match: func(f Features, c Context) bool {
		return panelTap(f, c) && f.Pos.Y < c.Layout.PlayHeight/5
	}},
	{Name: "panel-tap-pause", Kind: Pause, Match: func(f Features, c Context) bool {
		return panelTap(f, c) && f.Pos.Y >= c.Layout.PlayHeight/5
	}},
}

// panelTap matches short taps released on the side panel. It does not
// require an active game so that a paused game can be resumed.
func panelTap(f Features, c Context) bool {
	return f.Mag < PanelTapMaxMag &&
		f.SinceStart > TapMinDuration && f.SinceStart < TapMaxDuration &&
		f.Pos.X > c.Layout.BoardRight
}
