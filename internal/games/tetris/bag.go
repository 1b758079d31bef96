package tetris

import "math/rand"

// Bag draws kinds without replacement. Every group of NumKinds consecutive
// draws, counted from the first, contains each kind exactly once.
type Bag struct {
	rng  *rand.Rand
	pool []Kind
}

// NewBag creates a full bag drawing from rng.
func NewBag(rng *rand.Rand) *Bag {
	b := &Bag{rng: rng, pool: make([]Kind, 0, NumKinds)}
	b.refill()
	return b
}

func (b *Bag) refill() {
	b.pool = append(b.pool[:0], Kinds[:]...)
}

// Next removes and returns a uniformly chosen kind from the pool,
// refilling it as soon as it runs empty.
func (b *Bag) Next() Kind {
	i := b.rng.Intn(len(b.pool))
	k := b.pool[i]
	b.pool = append(b.pool[:i], b.pool[i+1:]...)
	if len(b.pool) == 0 {
		b.refill()
	}
	return k
}

// Remaining returns how many kinds are left before the next refill.
func (b *Bag) Remaining() int {
	return len(b.pool)
}
