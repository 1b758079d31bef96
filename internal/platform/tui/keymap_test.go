package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetra/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{runeKey('a'), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runeKey('d'), core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{runeKey('w'), core.ActionRotate},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate},
		{runeKey('s'), core.ActionSoftDrop},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionSoftDrop},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionHardDrop},
		{runeKey('r'), core.ActionHold},
		{runeKey('c'), core.ActionHold},
		{runeKey('p'), core.ActionPause},
		{runeKey('g'), core.ActionToggleGrid},
		{runeKey('t'), core.ActionToggleHold},
		{runeKey('l'), core.ActionToggleHoldLimit},
		{runeKey('v'), core.ActionToggleLanding},
		{runeKey('n'), core.ActionToggleQueue},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{runeKey('x'), core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			assert.Equal(t, tt.want, got)
			assert.False(t, quit)
		})
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()
	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		action, quit := km.MapKey(msg)
		assert.Equal(t, core.ActionQuit, action)
		assert.True(t, quit)
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()
	assert.False(t, km.MapKeyToFrame(runeKey('a'), &frame))
	assert.False(t, km.MapKeyToFrame(runeKey('x'), &frame))
	assert.True(t, frame.Has(core.ActionLeft))
	assert.Len(t, frame.Actions, 1)
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()
	now := time.Unix(100, 0)

	ev, ok := km.MapMouse(tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, now)
	assert.True(t, ok)
	assert.Equal(t, core.PointerEvent{Phase: core.PointerStart, X: 3, Y: 4, At: now}, ev)

	ev, ok = km.MapMouse(tea.MouseMsg{X: 5, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, now)
	assert.True(t, ok)
	assert.Equal(t, core.PointerMove, ev.Phase)

	ev, ok = km.MapMouse(tea.MouseMsg{X: 5, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}, now)
	assert.True(t, ok)
	assert.Equal(t, core.PointerEnd, ev.Phase)

	_, ok = km.MapMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, now)
	assert.False(t, ok, "right button")
	_, ok = km.MapMouse(tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, now)
	assert.False(t, ok, "hover")
	_, ok = km.MapMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, now)
	assert.False(t, ok, "wheel")
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	assert.Equal(t, MenuActionUp, km.MapKeyToMenuAction(runeKey('k')))
	assert.Equal(t, MenuActionDown, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyDown}))
	assert.Equal(t, MenuActionLeft, km.MapKeyToMenuAction(runeKey('h')))
	assert.Equal(t, MenuActionRight, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyRight}))
	assert.Equal(t, MenuActionSelect, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, MenuActionScoreboard, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, MenuActionBack, km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, MenuActionQuit, km.MapKeyToMenuAction(runeKey('q')))
	assert.Equal(t, MenuActionNone, km.MapKeyToMenuAction(runeKey('z')))
}
