// Package queue implements a fixed-capacity FIFO used for the upcoming piece preview.
package queue

import "fmt"

// Bounded is a ring buffer of fixed capacity. Overflow, underflow and
// out-of-range reads are programming errors and panic.
type Bounded[T any] struct {
	items []T
	head  int
	size  int
}

// New creates an empty queue holding at most capacity items.
func New[T any](capacity int) *Bounded[T] {
	if capacity <= 0 {
		panic(fmt.Sprintf("queue: capacity must be positive, got %d", capacity))
	}
	return &Bounded[T]{items: make([]T, capacity)}
}

// Len returns the number of queued items.
func (q *Bounded[T]) Len() int { return q.size }

// Cap returns the fixed capacity.
func (q *Bounded[T]) Cap() int { return len(q.items) }

// Full reports whether another Push would overflow.
func (q *Bounded[T]) Full() bool { return q.size == len(q.items) }

// Push appends v at the back.
func (q *Bounded[T]) Push(v T) {
	if q.Full() {
		panic(fmt.Sprintf("queue: push on full queue (cap %d)", len(q.items)))
	}
	q.items[(q.head+q.size)%len(q.items)] = v
	q.size++
}

// Pop removes and returns the front item.
func (q *Bounded[T]) Pop() T {
	if q.size == 0 {
		panic("queue: pop on empty queue")
	}
	var zero T
	v := q.items[q.head]
	q.items[q.head] = zero
	q.head = (q.head + 1) % len(q.items)
	q.size--
	return v
}

// Get returns the i-th item counting from the front, without removing it.
func (q *Bounded[T]) Get(i int) T {
	if i < 0 || i >= q.size {
		panic(fmt.Sprintf("queue: index %d out of range [0,%d)", i, q.size))
	}
	return q.items[(q.head+i)%len(q.items)]
}

// Items returns the queued items front to back as a new slice.
func (q *Bounded[T]) Items() []T {
	out := make([]T, q.size)
	for i := range out {
		out[i] = q.Get(i)
	}
	return out
}

// Clear empties the queue.
func (q *Bounded[T]) Clear() {
	clear(q.items)
	q.head = 0
	q.size = 0
}
