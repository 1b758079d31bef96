package tetris

import (
	"strconv"

	"github.com/vovakirdan/tui-tetra/internal/core"
)

// Snapshot is a read-only copy of the engine state for renderers, tests and
// determinism checks. Mutating it has no effect on the engine.
type Snapshot struct {
	Tick     uint64
	Width    int
	Height   int
	Cells    []core.RGBA
	Live     Piece
	Landing  Piece
	Held     *Piece
	Upcoming []Piece

	Score    int
	Level    int
	MaxLevel int
	Lines    int
	Pieces   int
	Active   bool
	Toggles  Toggles
}

// Snapshot copies the current engine state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Width:    e.w,
		Height:   e.h,
		Cells:    e.board.Cells(),
		Live:     e.live,
		Landing:  e.Landing(),
		Upcoming: e.upcoming.Items(),
		Score:    e.score,
		Level:    e.level,
		MaxLevel: e.maxLevel,
		Lines:    e.lines,
		Pieces:   e.pieces,
		Active:   e.active,
		Toggles:  e.toggles,
	}
	if e.held != nil {
		held := *e.held
		s.Held = &held
	}
	return s
}

// At returns the locked cell color at (x, y).
func (s Snapshot) At(x, y int) core.RGBA {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return EmptyCell
	}
	return s.Cells[x+y*s.Width]
}

// LevelLabel is the level as shown to the player: a number, or "Max" at the cap.
func (s Snapshot) LevelLabel() string {
	if s.Level >= s.MaxLevel {
		return "Max"
	}
	return strconv.Itoa(s.Level)
}
