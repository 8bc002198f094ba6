// SPDX-License-Identifier: MIT

package rootfinder

import (
	"container/heap"
	"math/big"

	"github.com/katalvlaran/realroots/interval"
)

// queueItem is an open bounded interval awaiting classification.
type queueItem struct {
	iv       interval.Interval
	strategy Strategy
	diam     *big.Rat // cached iv.Diameter()
	seq      uint64   // insertion order, breaks diameter ties
}

// itemQueue is a max-heap of *queueItem ordered by diameter descending;
// equal diameters pop in insertion order.
type itemQueue []*queueItem

// Len returns the number of items in the heap.
func (q itemQueue) Len() int { return len(q) }

// Less defines the comparison: larger diameter → higher priority.
func (q itemQueue) Less(i, j int) bool {
	if c := q[i].diam.Cmp(q[j].diam); c != 0 {
		return c > 0
	}

	return q[i].seq < q[j].seq
}

// Swap swaps two elements in the heap.
func (q itemQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push adds x onto the heap. Called by heap.Push; x must be *queueItem.
func (q *itemQueue) Push(x any) { *q = append(*q, x.(*queueItem)) }

// Pop removes the last element. Called by heap.Pop.
func (q *itemQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]

	return item
}

// workQueue wraps itemQueue with the insertion counter.
type workQueue struct {
	items itemQueue
	next  uint64
}

func (w *workQueue) push(iv interval.Interval, s Strategy) {
	heap.Push(&w.items, &queueItem{iv: iv, strategy: s, diam: iv.Diameter(), seq: w.next})
	w.next++
}

func (w *workQueue) pop() *queueItem {
	return heap.Pop(&w.items).(*queueItem)
}

func (w *workQueue) len() int { return w.items.Len() }

// minLeft returns the smallest left endpoint among queued items, or nil when empty.
func (w *workQueue) minLeft() *big.Rat {
	var m *big.Rat
	for _, it := range w.items {
		l := it.iv.Left()
		if m == nil || l.Cmp(m) < 0 {
			m = l
		}
	}

	return m
}
