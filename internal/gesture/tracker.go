// Package gesture turns single-contact pointer samples into discrete game
// gestures. A Tracker derives kinematic features from raw samples and
// Classify maps those features to a Kind through an ordered rule table.
package gesture

import (
	"math"
	"time"
)

// Phase is the stage of a contact the features were computed for.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseMove
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseMove:
		return "move"
	case PhaseEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Point is a pointer position in pixels. Y grows downward.
type Point struct {
	X, Y float64
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Len returns the Euclidean length of p as a vector.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Features are the kinematics derived for one pointer event.
//
// On move events the delta is measured from the previous sample; on end
// events it is measured from the contact start.
type Features struct {
	Phase Phase
	Start Point
	Pos   Point

	DeltaX, DeltaY float64
	Mag            float64

	// Angle in degrees between the delta and the positive x axis, positive
	// for upward vectors, within [-180, 180].
	Angle float64

	// AvgVelocity is PathLength*100 per elapsed millisecond.
	AvgVelocity float64
	PathLength  float64
	SinceStart  time.Duration
}

// Tracker follows one contact from start to end.
type Tracker struct {
	active  bool
	start   Point
	last    Point
	startAt time.Time
	path    float64
}

// Active reports whether a contact is in progress.
func (t *Tracker) Active() bool { return t.active }

// Start returns where the current contact began.
func (t *Tracker) Start() Point { return t.start }

// Reset drops the current contact. Subsequent Move and End calls are
// ignored until the next Begin.
func (t *Tracker) Reset() {
	*t = Tracker{}
}

// Begin starts a new contact, discarding any previous one.
func (t *Tracker) Begin(p Point, at time.Time) Features {
	t.active = true
	t.start = p
	t.last = p
	t.startAt = at
	t.path = 0
	return Features{Phase: PhaseStart, Start: p, Pos: p}
}

// Move records an intermediate sample. ok is false without an active contact.
func (t *Tracker) Move(p Point, at time.Time) (f Features, ok bool) {
	if !t.active {
		return Features{}, false
	}
	d := p.Sub(t.last)
	t.path += d.Len()
	t.last = p
	return t.features(PhaseMove, p, d, at), true
}

// End finishes the contact. ok is false without an active contact.
func (t *Tracker) End(p Point, at time.Time) (f Features, ok bool) {
	if !t.active {
		return Features{}, false
	}
	t.path += p.Sub(t.last).Len()
	f = t.features(PhaseEnd, p, p.Sub(t.start), at)
	t.Reset()
	return f, true
}

func (t *Tracker) features(phase Phase, p, d Point, at time.Time) Features {
	elapsed := at.Sub(t.startAt)
	if elapsed < 0 {
		elapsed = 0
	}
	ms := float64(elapsed) / float64(time.Millisecond)
	if ms < 1 {
		ms = 1
	}

	return Features{
		Phase:       phase,
		Start:       t.start,
		Pos:         p,
		DeltaX:      d.X,
		DeltaY:      d.Y,
		Mag:         d.Len(),
		Angle:       angleOf(d),
		AvgVelocity: t.path * 100 / ms,
		PathLength:  t.path,
		SinceStart:  elapsed,
	}
}

// angleOf returns the screen-space angle of d in degrees, flipped so that
// upward vectors are positive. The zero vector has angle 0.
func angleOf(d Point) float64 {
	if d.X == 0 && d.Y == 0 {
		return 0
	}
	return -math.Atan2(d.Y, d.X) * 180 / math.Pi
}
