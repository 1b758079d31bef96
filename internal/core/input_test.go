package core

import (
	"testing"
	"time"
)

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRotate)
	f.AddPointer(PointerEvent{Phase: PointerStart, X: 3, Y: 4, At: time.Unix(0, 0)})

	if !f.Has(ActionRotate) || f.Has(ActionHold) {
		t.Errorf("Has mismatch: %v", f.Actions)
	}

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionRotate) || len(f.Pointer) != 0 {
		t.Error("Clear should drop actions and pointer samples")
	}
	if !clone.Has(ActionRotate) || len(clone.Pointer) != 1 {
		t.Error("Clone should be independent of the original")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionHardDrop.String() != "HardDrop" || Action(999).String() != "Unknown" {
		t.Error("unexpected action names")
	}
	if PointerEnd.String() != "end" {
		t.Error("unexpected phase name")
	}
}

func TestTickDuration(t *testing.T) {
	if got := (RuntimeConfig{TickRate: 50}).TickDuration(); got != 20*time.Millisecond {
		t.Errorf("TickDuration = %v", got)
	}
	if got := (RuntimeConfig{}).TickDuration(); got != time.Second/60 {
		t.Errorf("zero tick rate should fall back to 60Hz, got %v", got)
	}
}
