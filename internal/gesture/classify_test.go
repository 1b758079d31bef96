package gesture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var layout = Layout{BoardLeft: 0, BoardRight: 80, PlayHeight: 400}

func ctx(active bool) Context {
	return Context{Active: active, Layout: layout}
}

// swipe builds end-phase features for a straight stroke from start to end.
func swipe(start, end Point, d time.Duration) Features {
	var tr Tracker
	tr.Begin(start, t0)
	f, _ := tr.End(end, t0.Add(d))
	return f
}

func TestEndRules(t *testing.T) {
	ms := time.Millisecond
	tests := []struct {
		name   string
		f      Features
		active bool
		want   Kind
	}{
		{"tap on board rotates", swipe(Point{40, 100}, Point{43, 104}, 100*ms), true, Rotate},
		{"tap while paused does nothing", swipe(Point{40, 100}, Point{43, 104}, 100*ms), false, None},
		{"long press does not rotate", swipe(Point{40, 100}, Point{41, 100}, 300*ms), true, None},
		{"fast flick down hard drops", swipe(Point{40, 100}, Point{40, 160}, 100*ms), true, HardDrop},
		{"diagonal flick down hard drops", swipe(Point{40, 100}, Point{70, 140}, 150*ms), true, HardDrop},
		{"shallow flick is not a drop", swipe(Point{10, 100}, Point{70, 126}, 100*ms), true, None},
		{"late flick down is not a drop", swipe(Point{40, 100}, Point{40, 200}, 220*ms), true, None},
		{"flick up holds", swipe(Point{40, 200}, Point{40, 140}, 100*ms), true, Hold},
		{"short flick up is ignored", swipe(Point{40, 200}, Point{40, 170}, 100*ms), true, None},
		{"flick up while paused", swipe(Point{40, 200}, Point{40, 140}, 100*ms), false, None},
		{"tap upper panel holds", swipe(Point{100, 50}, Point{102, 50}, 100*ms), true, Hold},
		{"tap upper panel holds while paused", swipe(Point{100, 50}, Point{102, 50}, 100*ms), false, Hold},
		{"tap lower panel pauses", swipe(Point{100, 80}, Point{100, 80}, 100*ms), true, Pause},
		{"tap lower panel resumes", swipe(Point{100, 300}, Point{101, 300}, 100*ms), false, Pause},
		{"panel tap too quick", swipe(Point{100, 300}, Point{101, 300}, 30*ms), true, None},
		{"panel tap too long", swipe(Point{100, 300}, Point{101, 300}, 260*ms), true, None},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(EndRules, tc.f, ctx(tc.active)))
		})
	}
}

func TestSlowDragDownVelocity(t *testing.T) {
	// 30px in 190ms averages 15.8 < 30: the drop rule rejects it on speed.
	f := swipe(Point{40, 100}, Point{40, 130}, 190*time.Millisecond)
	assert.Less(t, f.AvgVelocity, SwipeMinSpeed)
	assert.Equal(t, None, Classify(EndRules, f, ctx(true)))
}

func TestMoveRules(t *testing.T) {
	var tr Tracker
	tr.Begin(Point{40, 100}, t0)
	f, _ := tr.Move(Point{60, 100}, t0.Add(16*time.Millisecond))

	assert.Equal(t, SlideHorizontal, Classify(MoveRules, f, ctx(true)))
	assert.Equal(t, None, Classify(MoveRules, f, ctx(false)))

	tr.Begin(Point{120, 100}, t0)
	f, _ = tr.Move(Point{120, 140}, t0.Add(16*time.Millisecond))
	assert.Equal(t, SlideVertical, Classify(MoveRules, f, ctx(true)),
		"contacts starting off the board fall through to the vertical slide")
}

func TestFirstMatchWins(t *testing.T) {
	f := Features{Phase: PhaseEnd, Pos: Point{40, 100}, Mag: 5, SinceStart: 100 * time.Millisecond}
	catchAll := Rule{Name: "any", Kind: Pause, Match: func(Features, Context) bool { return true }}

	rules := append(append([]Rule{}, EndRules...), catchAll)
	assert.Equal(t, Rotate, Classify(rules, f, ctx(true)), "earlier rule shadows the broader one")

	reversed := append([]Rule{catchAll}, EndRules...)
	assert.Equal(t, Pause, Classify(reversed, f, ctx(true)))

	assert.Equal(t, None, Classify(nil, f, ctx(true)))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "hard-drop", HardDrop.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
