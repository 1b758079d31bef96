package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBagDealsEveryKindOncePerRound(t *testing.T) {
	b := NewBag(rand.New(rand.NewSource(7)))

	for round := range 100 {
		seen := map[Kind]int{}
		for range NumKinds {
			seen[b.Next()]++
		}
		assert.Len(t, seen, NumKinds, "round %d", round)
		for k, n := range seen {
			assert.Equal(t, 1, n, "kind %s repeated in round %d", k, round)
		}
	}
}

func TestBagRemaining(t *testing.T) {
	b := NewBag(rand.New(rand.NewSource(1)))
	assert.Equal(t, NumKinds, b.Remaining())

	for range 3 {
		b.Next()
	}
	assert.Equal(t, 4, b.Remaining())

	for range 4 {
		b.Next()
	}
	assert.Equal(t, NumKinds, b.Remaining(), "refills the moment it empties")
}

func TestBagIsSeedDeterministic(t *testing.T) {
	a := NewBag(rand.New(rand.NewSource(99)))
	b := NewBag(rand.New(rand.NewSource(99)))
	for range 50 {
		assert.Equal(t, a.Next(), b.Next())
	}
}
