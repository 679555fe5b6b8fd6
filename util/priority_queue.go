package util

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

//*******************************************
// priority queue
//*******************************************

// PriorityQueue is a min-queue on P. Items with equal priority are ordered
// by the optional tie-break, otherwise by insertion order.
type PriorityQueue[T any, P constraints.Ordered] struct {
	items *_PQItems[T, P]
}

func NewPriorityQueue[T any, P constraints.Ordered](cap int) PriorityQueue[T, P] {
	return PriorityQueue[T, P]{
		items: &_PQItems[T, P]{
			entries: make([]_PQEntry[T, P], 0, cap),
		},
	}
}

// WithTieBreak sets the ordering used between items of equal priority.
func (self PriorityQueue[T, P]) WithTieBreak(less func(a, b T) bool) PriorityQueue[T, P] {
	self.items.tie_break = less
	return self
}

func (self *PriorityQueue[T, P]) Enqueue(item T, priority P) {
	self.items.counter += 1
	heap.Push(self.items, _PQEntry[T, P]{
		item:     item,
		priority: priority,
		seq:      self.items.counter,
	})
}

func (self *PriorityQueue[T, P]) Dequeue() (T, bool) {
	if self.items.Len() == 0 {
		var t T
		return t, false
	}
	entry := heap.Pop(self.items).(_PQEntry[T, P])
	return entry.item, true
}

func (self *PriorityQueue[T, P]) Length() int {
	return self.items.Len()
}

type _PQEntry[T any, P constraints.Ordered] struct {
	item     T
	priority P
	seq      int
}

type _PQItems[T any, P constraints.Ordered] struct {
	entries   []_PQEntry[T, P]
	tie_break func(a, b T) bool
	counter   int
}

func (self *_PQItems[T, P]) Len() int {
	return len(self.entries)
}

func (self *_PQItems[T, P]) Less(i, j int) bool {
	a := self.entries[i]
	b := self.entries[j]
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	if self.tie_break != nil {
		if self.tie_break(a.item, b.item) {
			return true
		}
		if self.tie_break(b.item, a.item) {
			return false
		}
	}
	return a.seq < b.seq
}

func (self *_PQItems[T, P]) Swap(i, j int) {
	self.entries[i], self.entries[j] = self.entries[j], self.entries[i]
}

func (self *_PQItems[T, P]) Push(x any) {
	self.entries = append(self.entries, x.(_PQEntry[T, P]))
}

func (self *_PQItems[T, P]) Pop() any {
	n := len(self.entries)
	entry := self.entries[n-1]
	self.entries = self.entries[:n-1]
	return entry
}
