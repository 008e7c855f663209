package util

import (
	"golang.org/x/exp/constraints"
)

//*******************************************
// priority queue
//*******************************************

type _PQEntry[T any, P constraints.Ordered] struct {
	value    T
	priority P
}

// Binary min-heap keyed by priority.
//
// There is no decrease-key, callers enqueue the value again with the
// new priority and skip outdated entries when they are dequeued.
// Order of entries with equal priority is unspecified.
type PriorityQueue[T any, P constraints.Ordered] struct {
	heap []_PQEntry[T, P]
}

func NewPriorityQueue[T any, P constraints.Ordered](cap int) PriorityQueue[T, P] {
	return PriorityQueue[T, P]{
		heap: make([]_PQEntry[T, P], 0, cap),
	}
}

func (self *PriorityQueue[T, P]) Enqueue(value T, priority P) {
	self.heap = append(self.heap, _PQEntry[T, P]{value, priority})
	self._HeapifyUp(len(self.heap) - 1)
}

// Removes and returns the value with the lowest priority.
// ok is false if the queue is empty.
func (self *PriorityQueue[T, P]) Dequeue() (T, bool) {
	value, _, ok := self.DequeueWithPriority()
	return value, ok
}

func (self *PriorityQueue[T, P]) DequeueWithPriority() (T, P, bool) {
	n := len(self.heap)
	if n == 0 {
		var t T
		var p P
		return t, p, false
	}
	root := self.heap[0]
	self.heap[0] = self.heap[n-1]
	self.heap = self.heap[:n-1]
	if len(self.heap) > 1 {
		self._HeapifyDown(0)
	}
	return root.value, root.priority, true
}

func (self *PriorityQueue[T, P]) Peek() (T, bool) {
	if len(self.heap) == 0 {
		var t T
		return t, false
	}
	return self.heap[0].value, true
}

func (self *PriorityQueue[T, P]) IsEmpty() bool {
	return len(self.heap) == 0
}

func (self *PriorityQueue[T, P]) Length() int {
	return len(self.heap)
}

func (self *PriorityQueue[T, P]) _HeapifyUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if self.heap[parent].priority <= self.heap[i].priority {
			break
		}
		self.heap[i], self.heap[parent] = self.heap[parent], self.heap[i]
		i = parent
	}
}

func (self *PriorityQueue[T, P]) _HeapifyDown(i int) {
	n := len(self.heap)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2
		if left < n && self.heap[left].priority < self.heap[smallest].priority {
			smallest = left
		}
		if right < n && self.heap[right].priority < self.heap[smallest].priority {
			smallest = right
		}
		if smallest == i {
			return
		}
		self.heap[i], self.heap[smallest] = self.heap[smallest], self.heap[i]
		i = smallest
	}
}
