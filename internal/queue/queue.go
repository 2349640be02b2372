// Package queue implements generic FIFO queue used by breadth-first worklists.
package queue

const minCap = 4

// Queue is a ring buffer, capacity is always a power of 2.
// Zero value is not usable, use New.
type Queue[T any] struct {
	items []T
	head  int
	count int
	zero  T
}

// New creates a queue containing items in the same order.
func New[T any](items ...T) *Queue[T] {
	q := &Queue[T]{items: make([]T, capFor(len(items)))}
	q.count = copy(q.items, items)
	return q
}

func capFor(n int) int {
	c := minCap
	for c < n {
		c <<= 1
	}
	return c
}

func (q *Queue[T]) mask() int {
	return len(q.items) - 1
}

func (q *Queue[T]) IsEmpty() bool {
	return q.count == 0
}

func (q *Queue[T]) Len() int {
	return q.count
}

// Items returns a copy of queued items, first item goes first.
func (q *Queue[T]) Items() []T {
	result := make([]T, q.count)
	n := copy(result, q.items[q.head:min(q.head+q.count, len(q.items))])
	copy(result[n:], q.items[:q.count-n])
	return result
}

// Append adds item to the end of the queue.
func (q *Queue[T]) Append(item T) *Queue[T] {
	if q.count == len(q.items) {
		q.grow()
	}
	q.items[(q.head+q.count)&q.mask()] = item
	q.count++
	return q
}

// First removes and returns the first item.
// Returns zero value and false if the queue is empty.
func (q *Queue[T]) First() (T, bool) {
	if q.count == 0 {
		return q.zero, false
	}

	result := q.items[q.head]
	q.items[q.head] = q.zero
	q.head = (q.head + 1) & q.mask()
	q.count--
	if q.count == 0 {
		q.head = 0
	}
	return result, true
}

func (q *Queue[T]) grow() {
	items := make([]T, len(q.items)<<1)
	copy(items, q.Items())
	q.items = items
	q.head = 0
}
