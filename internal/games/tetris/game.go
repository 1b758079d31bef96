package tetris

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/gesture"
)

// Game adapts the Engine to the platform: it owns simulated time, maps
// input frames to engine calls and renders to a core.Screen.
type Game struct {
	settings Settings
	engine   *Engine
	clock    *ManualClock
	rng      *rand.Rand

	tick     uint64
	tickDur  time.Duration
	gravity  time.Duration // time accumulated toward the next engine update
	finished *core.RunSummary

	// Pointer state
	tracker    gesture.Tracker
	anchor     gesture.Point
	seenSpawns int

	// Screen layout
	screenW  int
	screenH  int
	boardX   int // screen column of the first board cell
	boardY   int // screen row of the first board cell
	tooSmall bool
}

// New creates a Game. Reset must be called before use.
func New(settings Settings) *Game {
	return &Game{settings: settings}
}

// ID returns the game identifier.
func (g *Game) ID() string { return "tetris" }

// Title returns the display name.
func (g *Game) Title() string { return "Tetra" }

// Reset starts a new session with the given runtime config.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.clock = NewManualClock(time.Unix(0, 0))
	g.tick = 0
	g.tickDur = cfg.TickDuration()
	g.gravity = 0
	g.finished = nil
	g.tracker.Reset()

	palette := g.settings.Palette
	toggles := g.settings.Toggles
	g.engine = NewEngine(Options{
		MaxLevel:   g.settings.MaxLevel,
		StartLevel: g.settings.StartLevel,
		FixedLevel: !g.settings.Leveling,
		Palette:    &palette,
		Toggles:    &toggles,
		Clock:      g.clock,
		Rand:       g.rng,
	})
	g.seenSpawns = g.engine.Spawns()
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes the layout for a new screen size.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
	g.boardX = max(0, (w-minScreenW)/2) + 1
	g.boardY = hudHeight + 1
}

// Engine exposes the underlying simulation.
func (g *Game) Engine() *Engine { return g.engine }

// Step advances the game by one frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	e := g.engine

	if input.Has(core.ActionPause) {
		e.TogglePause()
	}
	g.applyToggles(input)

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionLeft) {
		e.MoveLeft()
	}
	if input.Has(core.ActionRight) {
		e.MoveRight()
	}
	if input.Has(core.ActionRotate) {
		e.Rotate()
	}
	if input.Has(core.ActionSoftDrop) {
		e.SoftDrop()
	}
	if input.Has(core.ActionHold) {
		e.Hold()
	}
	if input.Has(core.ActionHardDrop) {
		e.HardDrop()
	}

	for _, ev := range input.Pointer {
		g.handlePointer(ev)
	}

	if e.Active() {
		g.clock.Advance(g.tickDur)
		g.advanceGravity()
	}
	g.syncSpawns()

	res := core.StepResult{State: g.State()}
	if f := e.TakeFinished(); f != nil {
		g.finished = f
		res.Finished = f
		res.State.GameOver = true
	}
	return res
}

func (g *Game) applyToggles(input core.InputFrame) {
	t := g.engine.Toggles()
	if input.Has(core.ActionToggleGrid) {
		t.Grid = !t.Grid
	}
	if input.Has(core.ActionToggleHold) {
		t.Hold = !t.Hold
	}
	if input.Has(core.ActionToggleHoldLimit) {
		t.HoldLimit = !t.HoldLimit
	}
	if input.Has(core.ActionToggleLanding) {
		t.Landing = !t.Landing
	}
	if input.Has(core.ActionToggleQueue) {
		t.Queue = !t.Queue
	}
	g.engine.SetToggles(t)
}

// GravityInterval is the time between engine updates at the current level.
func (g *Game) GravityInterval() time.Duration {
	steps := g.engine.MaxLevel() + 1 - g.engine.Level()
	return time.Duration(max(1, steps)) * g.settings.GravityStep
}

func (g *Game) advanceGravity() {
	g.gravity += g.tickDur
	interval := g.GravityInterval()
	if interval <= 0 {
		return
	}
	catchUp := max(1, g.settings.MaxCatchUp)
	for n := 0; g.gravity >= interval; n++ {
		if n == catchUp {
			g.gravity = 0
			return
		}
		g.engine.Update()
		g.gravity -= interval
		// Leveling may shorten the interval mid-loop.
		interval = g.GravityInterval()
	}
}

// syncSpawns drops an in-progress touch whenever a new piece enters play so
// a drag does not carry over to the next piece.
func (g *Game) syncSpawns() {
	if s := g.engine.Spawns(); s != g.seenSpawns {
		g.seenSpawns = s
		g.tracker.Reset()
	}
}

// toBoardPx maps a screen cell to pixels relative to the board's top-left.
func (g *Game) toBoardPx(x, y int) gesture.Point {
	return gesture.Point{
		X: float64(x-g.boardX) * g.settings.Touch.ColumnPx,
		Y: float64(y-g.boardY) * g.settings.Touch.RowPx,
	}
}

func (g *Game) cellPx() gesture.Point {
	return gesture.Point{X: 2 * g.settings.Touch.ColumnPx, Y: g.settings.Touch.RowPx}
}

func (g *Game) layout() gesture.Layout {
	c := g.cellPx()
	return gesture.Layout{
		BoardLeft:  0,
		BoardRight: float64(g.engine.w) * c.X,
		PlayHeight: float64(g.engine.h) * c.Y,
	}
}

func (g *Game) handlePointer(ev core.PointerEvent) {
	g.syncSpawns()
	p := g.toBoardPx(ev.X, ev.Y)
	ctx := gesture.Context{Active: g.engine.Active(), Layout: g.layout()}

	switch ev.Phase {
	case core.PointerStart:
		g.tracker.Begin(p, ev.At)
		c := g.cellPx()
		live := g.engine.Live().Pivot
		g.anchor = gesture.Point{X: float64(live.X) * c.X, Y: float64(live.Y) * c.Y}

	case core.PointerMove:
		f, ok := g.tracker.Move(p, ev.At)
		if !ok {
			return
		}
		switch gesture.Classify(gesture.MoveRules, f, ctx) {
		case gesture.SlideHorizontal:
			g.engine.SlideTo(g.slideTarget(f.Pos.X-f.Start.X, g.anchor.X, ctx.Layout.BoardRight, g.engine.w))
		case gesture.SlideVertical:
			g.engine.DropTo(g.slideTarget(f.Pos.Y-f.Start.Y, g.anchor.Y, ctx.Layout.PlayHeight, g.engine.h))
		}

	case core.PointerEnd:
		f, ok := g.tracker.End(p, ev.At)
		if !ok {
			return
		}
		switch gesture.Classify(gesture.EndRules, f, ctx) {
		case gesture.Rotate:
			g.engine.Rotate()
		case gesture.HardDrop:
			g.engine.HardDrop()
		case gesture.Hold:
			g.engine.Hold()
		case gesture.Pause:
			g.engine.TogglePause()
		}
	}
}

// slideTarget converts a drag offset into a grid index: the anchored pixel
// position plus the amplified drag, capped at extent, scaled to cells.
func (g *Game) slideTarget(drag, anchor, extent float64, cells int) int {
	pos := anchor + drag*g.settings.Touch.SlideGain
	if pos > extent {
		pos = extent
	}
	return int(math.Round(pos / extent * float64(cells)))
}

// State returns the current platform-facing state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.engine.Score(),
		Level:  g.engine.Level(),
		Lines:  g.engine.Lines(),
		Paused: !g.engine.Active(),
	}
}

// LastRun returns the most recent finished run, if any.
func (g *Game) LastRun() *core.RunSummary { return g.finished }

// Snapshot returns the engine snapshot stamped with the frame counter.
func (g *Game) Snapshot() Snapshot {
	s := g.engine.Snapshot()
	s.Tick = g.tick
	return s
}
