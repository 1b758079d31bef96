package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/queue"
)

const (
	// LockDelay is how long a grounded piece may rest before it locks.
	LockDelay = 1000 * time.Millisecond

	// QueueSize is the length of the upcoming piece preview.
	QueueSize = 5

	// DefaultMaxLevel caps leveling.
	DefaultMaxLevel = 25
)

// Toggles are the runtime feature switches. Hold and HoldLimit change engine
// behavior; the others only affect rendering.
type Toggles struct {
	Grid      bool
	Hold      bool
	HoldLimit bool
	Landing   bool
	Queue     bool
}

// DefaultToggles enables every feature.
func DefaultToggles() Toggles {
	return Toggles{Grid: true, Hold: true, HoldLimit: true, Landing: true, Queue: true}
}

// Options configure a new Engine. Zero fields take defaults.
type Options struct {
	Width, Height int
	MaxLevel      int
	StartLevel    int
	FixedLevel    bool // disables leveling
	Palette       *Palette
	Toggles       *Toggles
	Clock         Clock
	Rand          *rand.Rand
}

// Engine owns the board, the live, held and upcoming pieces, scoring and the
// lock timer. Every mutating operation is a no-op while the engine is paused,
// except TogglePause and SetActive.
type Engine struct {
	w, h       int
	maxLevel   int
	startLevel int
	fixedLevel bool
	palette    Palette
	toggles    Toggles
	clock      Clock
	bag        *Bag

	board    *Board
	live     Piece
	held     *Piece
	upcoming *queue.Bounded[Piece]

	score           int
	level           int
	lastRowsCleared int
	lines           int
	pieces          int
	spawns          int

	lockTimer time.Time
	runStart  time.Time
	active    bool

	finished *core.RunSummary
}

// NewEngine creates an engine with a fresh board and a running game.
func NewEngine(opts Options) *Engine {
	e := &Engine{
		w:          opts.Width,
		h:          opts.Height,
		maxLevel:   opts.MaxLevel,
		startLevel: opts.StartLevel,
		fixedLevel: opts.FixedLevel,
		clock:      opts.Clock,
		palette:    DefaultPalette(),
		toggles:    DefaultToggles(),
	}
	if e.w <= 0 {
		e.w = Width
	}
	if e.h <= 0 {
		e.h = Height
	}
	if e.maxLevel <= 0 {
		e.maxLevel = DefaultMaxLevel
	}
	e.startLevel = core.Clamp(e.startLevel, 0, e.maxLevel)
	if opts.Palette != nil {
		e.palette = *opts.Palette
	}
	if opts.Toggles != nil {
		e.toggles = *opts.Toggles
	}
	if e.clock == nil {
		e.clock = SystemClock{}
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	e.bag = NewBag(rng)
	e.board = NewBoard(e.w, e.h)
	e.upcoming = queue.New[Piece](QueueSize)
	e.Reset()
	return e
}

// Reset starts a new run: empty board, fresh queue, start level, running.
func (e *Engine) Reset() {
	e.clearRun()
	e.live = e.newPiece()
	e.spawns++
	e.active = true
}

// clearRun resets everything a block-out wipes. The live piece is kept.
func (e *Engine) clearRun() {
	e.board.Reset()
	e.held = nil
	e.upcoming.Clear()
	for !e.upcoming.Full() {
		e.upcoming.Push(e.newPiece())
	}
	e.score = 0
	e.level = e.startLevel
	e.lastRowsCleared = 0
	e.lines = 0
	e.pieces = 0
	e.lockTimer = e.clock.Now()
	e.runStart = e.lockTimer
}

func (e *Engine) spawnPoint() Vec {
	return Vec{X: e.w / 2, Y: 1}
}

func (e *Engine) newPiece() Piece {
	k := e.bag.Next()
	return NewPiece(k, e.palette[k], e.spawnPoint())
}

func (e *Engine) fits(p Piece) bool {
	return e.board.Fits(p.Absolute())
}

func (e *Engine) translate(dx, dy int) bool {
	if !e.active {
		return false
	}
	next := e.live.Translated(dx, dy)
	if !e.fits(next) {
		return false
	}
	e.live = next
	return true
}

// MoveLeft shifts the live piece one column left if the space is free.
func (e *Engine) MoveLeft() bool { return e.translate(-1, 0) }

// MoveRight shifts the live piece one column right if the space is free.
func (e *Engine) MoveRight() bool { return e.translate(1, 0) }

// SoftDrop moves the live piece down one row if the space is free.
func (e *Engine) SoftDrop() bool { return e.translate(0, 1) }

// IsClearBelow reports whether the live piece can descend one row.
func (e *Engine) IsClearBelow() bool {
	return e.fits(e.live.Translated(0, 1))
}

// Rotate turns the live piece a quarter turn, shifting it back inside the
// side walls if needed. Only the single largest overflow is corrected.
// The O piece never rotates.
func (e *Engine) Rotate() bool {
	if !e.active || e.live.Kind == KindO {
		return false
	}

	next := e.live.RotatedRight()
	overflow := 0
	for _, c := range next.Absolute() {
		switch {
		case c.X < 0 && abs(c.X) > abs(overflow):
			overflow = c.X
		case c.X >= e.w && c.X-e.w+1 > abs(overflow):
			overflow = c.X - e.w + 1
		}
	}
	next.Pivot.X -= overflow

	if !e.fits(next) {
		return false
	}
	e.live = next
	return true
}

// HardDrop drops the live piece as far as it goes and locks it at once.
func (e *Engine) HardDrop() bool {
	if !e.active {
		return false
	}
	for e.IsClearBelow() {
		e.live.Pivot.Y++
	}
	e.lockAndSpawn()
	return true
}

// Hold swaps the live piece with the held one, or with the next queued piece
// when nothing is held. The incoming piece cannot be held again until it
// locks while the hold limit is on.
func (e *Engine) Hold() bool {
	if !e.active || !e.toggles.Hold {
		return false
	}
	if e.live.HoldLocked && e.toggles.HoldLimit {
		return false
	}

	stored := NewPiece(e.live.Kind, e.palette[e.live.Kind], e.spawnPoint())
	if e.held != nil {
		e.live = *e.held
		e.live.Pivot = e.spawnPoint()
	} else {
		e.live = e.upcoming.Pop()
		e.upcoming.Push(e.newPiece())
	}
	e.held = &stored
	e.live.HoldLocked = true
	e.spawns++
	return true
}

// SlideTo steps the live piece toward column x, one cell at a time,
// giving up after width attempts. It returns the number of successful moves.
func (e *Engine) SlideTo(x int) int {
	if !e.active {
		return 0
	}
	moved := 0
	for n := e.w; e.live.Pivot.X != x && n > 0; n-- {
		var ok bool
		if e.live.Pivot.X < x {
			ok = e.MoveRight()
		} else {
			ok = e.MoveLeft()
		}
		if ok {
			moved++
		}
	}
	return moved
}

// DropTo lowers the live piece while its pivot is at or above row y and the
// space below is free. It returns the number of rows descended.
func (e *Engine) DropTo(y int) int {
	if !e.active {
		return 0
	}
	moved := 0
	for e.live.Pivot.Y <= y && e.IsClearBelow() {
		e.live.Pivot.Y++
		moved++
	}
	return moved
}

// Update advances the simulation by one gravity tick and returns the number
// of rows cleared.
func (e *Engine) Update() int {
	if !e.active {
		return 0
	}

	rows := e.board.ClearFilled()
	e.award(rows)

	switch {
	case e.IsClearBelow():
		e.live.Pivot.Y++
		e.lockTimer = e.clock.Now()
	case e.clock.Now().Sub(e.lockTimer) > LockDelay:
		e.lockAndSpawn()
	}
	return rows
}

func (e *Engine) award(rows int) {
	if rows >= 4 {
		bonus := 0
		if e.lastRowsCleared >= 4 {
			bonus = 400
		}
		e.score += 800 + bonus
	} else {
		e.score += 100 * rows
	}
	if rows > 0 {
		e.lastRowsCleared = rows
		e.lines += rows
	}

	if e.fixedLevel {
		return
	}
	for e.level < e.maxLevel && e.score >= CalcMaxScore(e.level) {
		e.level++
	}
}

// lockAndSpawn merges the live piece, brings in the next queued piece and
// ends the run on a block-out.
func (e *Engine) lockAndSpawn() {
	e.board.Place(e.live)
	e.pieces++

	e.live = e.upcoming.Pop()
	e.live.Pivot = e.spawnPoint()
	e.upcoming.Push(e.newPiece())
	e.spawns++

	if !e.board.RowEmpty(0) {
		e.GameOver()
	}
}

// GameOver records the finished run and wipes score, level, hold, queue and
// board. The live piece stays in play.
func (e *Engine) GameOver() {
	now := e.clock.Now()
	e.finished = &core.RunSummary{
		Score:    e.score,
		Level:    e.level,
		Lines:    e.lines,
		Pieces:   e.pieces,
		Duration: now.Sub(e.runStart),
	}
	e.clearRun()
}

// TakeFinished returns the summary of a run that ended since the last call,
// or nil.
func (e *Engine) TakeFinished() *core.RunSummary {
	f := e.finished
	e.finished = nil
	return f
}

// Landing returns where the live piece would come to rest if dropped.
func (e *Engine) Landing() Piece {
	p := e.live
	for p.Pivot.Y < e.h && e.fits(p.Translated(0, 1)) {
		p.Pivot.Y++
	}
	return p
}

// LockRemaining returns how long a grounded live piece has before it locks.
// A piece that can still fall reports the full delay.
func (e *Engine) LockRemaining() time.Duration {
	if e.IsClearBelow() {
		return LockDelay
	}
	left := LockDelay - e.clock.Now().Sub(e.lockTimer)
	if left < 0 {
		return 0
	}
	return left
}

// TogglePause flips between running and paused.
func (e *Engine) TogglePause() { e.active = !e.active }

// SetActive sets the running state directly.
func (e *Engine) SetActive(active bool) { e.active = active }

// Active reports whether the game is running.
func (e *Engine) Active() bool { return e.active }

// Toggles returns the current feature switches.
func (e *Engine) Toggles() Toggles { return e.toggles }

// SetToggles replaces the feature switches.
func (e *Engine) SetToggles(t Toggles) { e.toggles = t }

func (e *Engine) Score() int    { return e.score }
func (e *Engine) Level() int    { return e.level }
func (e *Engine) MaxLevel() int { return e.maxLevel }
func (e *Engine) Lines() int    { return e.lines }
func (e *Engine) Live() Piece   { return e.live }
func (e *Engine) Board() *Board { return e.board }

// Held returns the held piece, if any.
func (e *Engine) Held() (Piece, bool) {
	if e.held == nil {
		return Piece{}, false
	}
	return *e.held, true
}

// Upcoming returns the queued pieces, next first.
func (e *Engine) Upcoming() []Piece { return e.upcoming.Items() }

// Spawns counts how many times a new live piece has entered play.
func (e *Engine) Spawns() int { return e.spawns }

// CalcMaxScore is the score at which level is left behind.
func CalcMaxScore(level int) int {
	s := 40*(level+1) + 100*level
	if level > 2 {
		s += 300 * level
	}
	if level > 5 {
		s += 1200 * level
	}
	return s
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
