package tetris

import "github.com/vovakirdan/tui-tetra/internal/core"

// Board dimensions.
const (
	Width  = 10
	Height = 25
)

// EmptyCell marks an unoccupied board cell. Piece colors must differ from it.
var EmptyCell = core.Black

// Board is a row-major grid of locked cells, indexed x + y*width.
// The live piece is never stored here.
type Board struct {
	w, h  int
	cells []core.RGBA
}

// NewBoard creates an empty w x h board.
func NewBoard(w, h int) *Board {
	b := &Board{w: w, h: h, cells: make([]core.RGBA, w*h)}
	b.Reset()
	return b
}

func (b *Board) Width() int  { return b.w }
func (b *Board) Height() int { return b.h }

// Reset empties every cell.
func (b *Board) Reset() {
	for i := range b.cells {
		b.cells[i] = EmptyCell
	}
}

// InBounds reports whether (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.w && y >= 0 && y < b.h
}

// At returns the color at (x, y). Off-board positions read as EmptyCell.
func (b *Board) At(x, y int) core.RGBA {
	if !b.InBounds(x, y) {
		return EmptyCell
	}
	return b.cells[x+y*b.w]
}

// Set writes a color. Off-board writes are ignored.
func (b *Board) Set(x, y int, c core.RGBA) {
	if b.InBounds(x, y) {
		b.cells[x+y*b.w] = c
	}
}

// Occupied reports whether (x, y) holds a locked cell.
func (b *Board) Occupied(x, y int) bool {
	return b.At(x, y) != EmptyCell
}

// Fits reports whether every position is on the board and empty.
func (b *Board) Fits(cells [4]Vec) bool {
	for _, c := range cells {
		if !b.InBounds(c.X, c.Y) || b.Occupied(c.X, c.Y) {
			return false
		}
	}
	return true
}

// Place stamps the piece's color into the board.
func (b *Board) Place(p Piece) {
	for _, c := range p.Absolute() {
		b.Set(c.X, c.Y, p.Color)
	}
}

// RowFilled reports whether every cell of row y is occupied.
func (b *Board) RowFilled(y int) bool {
	for x := 0; x < b.w; x++ {
		if !b.Occupied(x, y) {
			return false
		}
	}
	return true
}

// RowEmpty reports whether row y has no occupied cell.
func (b *Board) RowEmpty(y int) bool {
	for x := 0; x < b.w; x++ {
		if b.Occupied(x, y) {
			return false
		}
	}
	return true
}

// FilledRows returns the indices of fully occupied rows, top to bottom.
func (b *Board) FilledRows() []int {
	var rows []int
	for y := 0; y < b.h; y++ {
		if b.RowFilled(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearFilled removes every filled row, shifting the rows above it down,
// and returns how many rows were removed.
func (b *Board) ClearFilled() int {
	rows := b.FilledRows()
	// Ascending order: shifting row r only moves rows above r, so the
	// remaining indices, all below r, are still valid.
	for _, r := range rows {
		b.collapse(r)
	}
	return len(rows)
}

// collapse copies rows r-1..0 into r..1 and blanks row 0.
func (b *Board) collapse(r int) {
	for i := (r+1)*b.w - 1; i >= b.w; i-- {
		b.cells[i] = b.cells[i-b.w]
	}
	for x := 0; x < b.w; x++ {
		b.cells[x] = EmptyCell
	}
}

// Cells returns a copy of the row-major cell array.
func (b *Board) Cells() []core.RGBA {
	return append([]core.RGBA(nil), b.cells...)
}
