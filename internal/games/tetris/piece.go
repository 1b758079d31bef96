// Package tetris implements the falling-block simulation: the board, pieces,
// the bag randomizer and the Engine state machine, plus a Game adapter that
// drives the engine from platform input frames and draws it to a core.Screen.
package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-tetra/internal/core"
)

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindT Kind = iota
	KindO
	KindZ
	KindS
	KindI
	KindL
	KindJ
)

// NumKinds is the number of distinct shapes.
const NumKinds = 7

// Kinds lists every shape in table order.
var Kinds = [NumKinds]Kind{KindT, KindO, KindZ, KindS, KindI, KindL, KindJ}

func (k Kind) String() string {
	if k < 0 || int(k) >= NumKinds {
		return "?"
	}
	return string("TOZSILJ"[k])
}

// ParseKind maps a shape letter (either case) to its Kind.
func ParseKind(s string) (Kind, error) {
	up := strings.ToUpper(s)
	for _, k := range Kinds {
		if up == k.String() {
			return k, nil
		}
	}
	return 0, fmt.Errorf("tetris: unknown piece kind %q", s)
}

// Vec is a grid position or offset. Y grows downward.
type Vec struct {
	X, Y int
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// shapes holds the spawn orientation offsets of each kind, relative to the pivot.
var shapes = [NumKinds][4]Vec{
	KindT: {{0, 1}, {-1, 0}, {0, 0}, {1, 0}},
	KindO: {{0, 0}, {-1, -1}, {0, -1}, {-1, 0}},
	KindZ: {{0, 0}, {-1, -1}, {0, -1}, {1, 0}},
	KindS: {{0, 0}, {-1, 0}, {0, -1}, {1, -1}},
	KindI: {{0, -1}, {0, 0}, {0, 1}, {0, 2}},
	KindL: {{0, -1}, {0, 0}, {0, 1}, {1, 1}},
	KindJ: {{0, -1}, {0, 0}, {0, 1}, {-1, 1}},
}

// Palette assigns a display color to each kind.
type Palette [NumKinds]core.RGBA

// DefaultPalette returns the stock piece colors.
func DefaultPalette() Palette {
	return Palette{
		KindT: core.MustParseHex("#A000B8"),
		KindO: core.MustParseHex("#D0D000"),
		KindZ: core.MustParseHex("#AA0A00"),
		KindS: core.MustParseHex("#00C000"),
		KindI: core.MustParseHex("#00A0D0"),
		KindL: core.MustParseHex("#F0B000"),
		KindJ: core.MustParseHex("#0020D0"),
	}
}

// Piece is a tetromino: four cells placed relative to a pivot.
// The pivot itself need not be occupied.
type Piece struct {
	Kind  Kind
	Pivot Vec
	Cells [4]Vec
	Color core.RGBA

	// HoldLocked is set on a piece that came out of a hold swap.
	HoldLocked bool
}

// NewPiece builds a piece of kind k in spawn orientation at pivot.
func NewPiece(k Kind, color core.RGBA, pivot Vec) Piece {
	if k < 0 || int(k) >= NumKinds {
		panic(fmt.Sprintf("tetris: invalid piece kind %d", k))
	}
	return Piece{Kind: k, Pivot: pivot, Cells: shapes[k], Color: color}
}

// Absolute returns the board positions of the piece's cells.
func (p Piece) Absolute() [4]Vec {
	var out [4]Vec
	for i, c := range p.Cells {
		out[i] = p.Pivot.Add(c)
	}
	return out
}

// Translated returns a copy moved by (dx, dy).
func (p Piece) Translated(dx, dy int) Piece {
	p.Pivot = p.Pivot.Add(Vec{X: dx, Y: dy})
	return p
}

// RotatedRight returns a copy with every offset turned a quarter:
// (dx, dy) becomes (dy, -dx). The pivot does not move.
func (p Piece) RotatedRight() Piece {
	for i, c := range p.Cells {
		p.Cells[i] = Vec{X: c.Y, Y: -c.X}
	}
	return p
}
