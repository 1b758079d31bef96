package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetra/internal/core"
)

var (
	red   = core.NewRGBA(200, 0, 0)
	green = core.NewRGBA(0, 200, 0)
	blue  = core.NewRGBA(0, 0, 200)
)

func fillRow(b *Board, y int, c core.RGBA) {
	for x := 0; x < b.Width(); x++ {
		b.Set(x, y, c)
	}
}

func TestBoardStartsEmpty(t *testing.T) {
	b := NewBoard(Width, Height)
	for y := 0; y < Height; y++ {
		assert.True(t, b.RowEmpty(y))
	}
	assert.Empty(t, b.FilledRows())
	assert.Equal(t, EmptyCell, b.At(-1, 0), "off-board reads are empty")
}

func TestBoardFits(t *testing.T) {
	b := NewBoard(Width, Height)
	b.Set(3, 3, red)

	assert.True(t, b.Fits([4]Vec{{0, 0}, {9, 0}, {0, 24}, {9, 24}}))
	assert.False(t, b.Fits([4]Vec{{0, 0}, {3, 3}, {1, 1}, {2, 2}}), "overlaps a locked cell")
	assert.False(t, b.Fits([4]Vec{{-1, 0}, {0, 0}, {1, 0}, {2, 0}}), "left of the board")
	assert.False(t, b.Fits([4]Vec{{0, 25}, {0, 0}, {1, 0}, {2, 0}}), "below the floor")
	assert.False(t, b.Fits([4]Vec{{0, -1}, {0, 0}, {1, 0}, {2, 0}}), "above the ceiling")
}

func TestClearFilledShiftsRowsAbove(t *testing.T) {
	b := NewBoard(Width, Height)
	fillRow(b, 10, red)
	fillRow(b, 20, red)
	b.Set(0, 9, green)
	b.Set(1, 15, blue)
	b.Set(2, 22, green)

	require.Equal(t, []int{10, 20}, b.FilledRows())
	assert.Equal(t, 2, b.ClearFilled())

	assert.Equal(t, green, b.At(0, 11), "two cleared rows below: shifts by two")
	assert.Equal(t, blue, b.At(1, 16), "one cleared row below: shifts by one")
	assert.Equal(t, green, b.At(2, 22), "nothing cleared below: untouched")
	assert.True(t, b.RowEmpty(0))
	assert.True(t, b.RowEmpty(1))
	assert.Empty(t, b.FilledRows())
}

func TestClearFilledAdjacentRows(t *testing.T) {
	b := NewBoard(Width, Height)
	for y := 21; y < 25; y++ {
		fillRow(b, y, red)
	}
	b.Set(4, 20, blue)

	assert.Equal(t, 4, b.ClearFilled())
	assert.Equal(t, blue, b.At(4, 24))
	assert.Equal(t, 1, countOccupied(b))
}

// compactNaive removes filled rows by rebuilding the board bottom-up.
func compactNaive(b *Board) []core.RGBA {
	out := make([]core.RGBA, 0, b.w*b.h)
	var kept [][]core.RGBA
	for y := 0; y < b.h; y++ {
		if !b.RowFilled(y) {
			kept = append(kept, b.cells[y*b.w:(y+1)*b.w])
		}
	}
	for range b.h - len(kept) {
		for range b.w {
			out = append(out, EmptyCell)
		}
	}
	for _, row := range kept {
		out = append(out, row...)
	}
	return out
}

func TestClearFilledMatchesNaiveCompaction(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	colors := []core.RGBA{red, green, blue}

	for trial := range 200 {
		b := NewBoard(Width, Height)
		for y := 0; y < Height; y++ {
			switch rng.Intn(3) {
			case 0:
				fillRow(b, y, colors[rng.Intn(3)])
			case 1:
				for x := 0; x < Width; x++ {
					if rng.Intn(2) == 0 {
						b.Set(x, y, colors[rng.Intn(3)])
					}
				}
			}
		}

		want := compactNaive(b)
		filled := len(b.FilledRows())
		got := b.ClearFilled()

		require.Equal(t, filled, got, "trial %d", trial)
		require.Equal(t, want, b.cells, "trial %d", trial)
		require.Len(t, b.cells, Width*Height)
	}
}

func TestPlaceAndReset(t *testing.T) {
	b := NewBoard(Width, Height)
	p := NewPiece(KindO, green, Vec{5, 24})
	b.Place(p)

	assert.Equal(t, 4, countOccupied(b))
	assert.Equal(t, green, b.At(4, 23))

	b.Reset()
	assert.Equal(t, 0, countOccupied(b))
}

func countOccupied(b *Board) int {
	n := 0
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.Occupied(x, y) {
				n++
			}
		}
	}
	return n
}
