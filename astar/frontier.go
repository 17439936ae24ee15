package astar

import "github.com/katalvlaran/astargrid/gridgraph"

// entry is one queued cell. f and seq are fixed at enqueue time; seq comes
// from a monotonically increasing counter, so among equal f the earliest
// enqueued cell is dequeued first.
type entry struct {
	at  gridgraph.Coord
	f   int
	seq uint64
}

// frontier is a min-heap of *entry ordered by (f, seq) ascending.
type frontier []*entry

// Len returns the number of queued entries.
func (q frontier) Len() int { return len(q) }

// Less orders by f, then by enqueue sequence.
func (q frontier) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

// Swap swaps two entries.
func (q frontier) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push is called by heap.Push; x must be *entry.
func (q *frontier) Push(x interface{}) { *q = append(*q, x.(*entry)) }

// Pop is called by heap.Pop and returns the last element.
func (q *frontier) Pop() interface{} {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]

	return e
}
