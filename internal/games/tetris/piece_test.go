package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapesHaveFourDistinctCells(t *testing.T) {
	for _, k := range Kinds {
		seen := map[Vec]bool{}
		for _, c := range shapes[k] {
			seen[c] = true
		}
		assert.Len(t, seen, 4, "kind %s", k)
	}
}

func TestRotatedRightFourTimesIsIdentity(t *testing.T) {
	for _, k := range Kinds {
		p := NewPiece(k, DefaultPalette()[k], Vec{5, 10})
		r := p
		for range 4 {
			r = r.RotatedRight()
		}
		assert.Equal(t, p, r, "kind %s", k)
	}
}

func TestRotatedRightTurnsOffsets(t *testing.T) {
	p := NewPiece(KindI, DefaultPalette()[KindI], Vec{5, 10}).RotatedRight()
	assert.Equal(t, [4]Vec{{-1, 0}, {0, 0}, {1, 0}, {2, 0}}, p.Cells)
	assert.Equal(t, Vec{5, 10}, p.Pivot, "pivot stays put")
}

func TestAbsoluteAndTranslated(t *testing.T) {
	p := NewPiece(KindT, DefaultPalette()[KindT], Vec{5, 1})
	assert.Equal(t, [4]Vec{{5, 2}, {4, 1}, {5, 1}, {6, 1}}, p.Absolute())

	moved := p.Translated(-2, 3)
	assert.Equal(t, Vec{3, 4}, moved.Pivot)
	assert.Equal(t, Vec{5, 1}, p.Pivot, "translation returns a copy")
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("j")
	require.NoError(t, err)
	assert.Equal(t, KindJ, k)

	k, err = ParseKind("S")
	require.NoError(t, err)
	assert.Equal(t, KindS, k)

	_, err = ParseKind("X")
	assert.Error(t, err)
	assert.Equal(t, "?", Kind(9).String())
}

func TestNewPieceRejectsBadKind(t *testing.T) {
	assert.Panics(t, func() { NewPiece(Kind(7), EmptyCell, Vec{}) })
}
