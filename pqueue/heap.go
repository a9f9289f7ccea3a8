// Package pqueue implements an indexed mutable-key max-heap: a priority
// queue that supports insert, extract-max, change-priority, and
// remove-by-key in O(log n), rather than the "push a duplicate and
// lazily discard stale pops" idiom a binary heap over container/heap
// makes easy.
//
// The Sloan, MPG, and multilevel heuristics update a vertex's priority far
// more often than they pop it, so an amortized-stale-pop heap would do
// asymptotically more work; this package trades a small amount of bookkeeping
// (a key→index map alongside the heap slice) for genuine O(log n) updates.
package pqueue

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrKeyPresent indicates Insert was called with a key already in the heap.
var ErrKeyPresent = errors.New("pqueue: key already present")

// ErrKeyAbsent indicates ChangePriority or Remove was called with a key
// that is not currently in the heap.
var ErrKeyAbsent = errors.New("pqueue: key not present")

// Number is the set of priority types this heap supports: the integer
// priorities MPG and the MIS gain heap use, and the float64 priorities the
// Sloan family uses.
type Number interface {
	constraints.Integer | constraints.Float
}

type entry[P Number] struct {
	key      int
	priority P
}

// Heap is an indexed max-heap over (key, priority) pairs, keyed by an
// opaque integer identity (a vertex index, in every caller of this
// package). Zero value is not usable; construct with New.
type Heap[P Number] struct {
	entries []entry[P]
	index   map[int]int // key -> position in entries
}

// New returns an empty heap with capacity hinted by cap.
func New[P Number](cap int) *Heap[P] {
	return &Heap[P]{
		entries: make([]entry[P], 0, cap),
		index:   make(map[int]int, cap),
	}
}

// Len returns the number of keys currently in the heap.
func (h *Heap[P]) Len() int { return len(h.entries) }

// Contains reports whether key is currently in the heap.
func (h *Heap[P]) Contains(key int) bool {
	_, ok := h.index[key]
	return ok
}

// PriorityOf returns the current priority of key and whether it is present.
func (h *Heap[P]) PriorityOf(key int) (P, bool) {
	i, ok := h.index[key]
	if !ok {
		var zero P
		return zero, false
	}
	return h.entries[i].priority, true
}

// Keys returns every key currently in the heap, in unspecified order. Used
// by callers (MPG's queue scans) that need to examine the whole frontier
// rather than just its max.
func (h *Heap[P]) Keys() []int {
	keys := make([]int, len(h.entries))
	for i, e := range h.entries {
		keys[i] = e.key
	}
	return keys
}

// Peek returns the max-priority (key, priority) without removing it.
func (h *Heap[P]) Peek() (key int, priority P, ok bool) {
	if len(h.entries) == 0 {
		return 0, priority, false
	}
	e := h.entries[0]
	return e.key, e.priority, true
}

// Insert adds key with the given priority. Panics if key is already
// present: the hot-path callers in this module never do this, so a
// duplicate insert is a programmer error, not a recoverable condition.
func (h *Heap[P]) Insert(key int, priority P) {
	if _, ok := h.index[key]; ok {
		panic(ErrKeyPresent)
	}
	i := len(h.entries)
	h.entries = append(h.entries, entry[P]{key: key, priority: priority})
	h.index[key] = i
	h.bubbleUp(i)
}

// ExtractMax removes and returns the max-priority entry. ok is false when
// the heap is empty.
func (h *Heap[P]) ExtractMax() (key int, priority P, ok bool) {
	if len(h.entries) == 0 {
		return 0, priority, false
	}
	top := h.entries[0]
	last := len(h.entries) - 1
	delete(h.index, top.key)

	if last == 0 {
		h.entries = h.entries[:0]
		return top.key, top.priority, true
	}

	h.entries[0] = h.entries[last]
	h.entries = h.entries[:last]
	h.index[h.entries[0].key] = 0
	h.bubbleDown(0)

	return top.key, top.priority, true
}

// ChangePriority updates key's priority and restores the heap property.
// Returns ErrKeyAbsent if key is not present.
func (h *Heap[P]) ChangePriority(key int, newPriority P) error {
	i, ok := h.index[key]
	if !ok {
		return ErrKeyAbsent
	}
	old := h.entries[i].priority
	h.entries[i].priority = newPriority
	if newPriority > old {
		h.bubbleUp(i)
	} else if newPriority < old {
		h.bubbleDown(i)
	}

	return nil
}

// Remove deletes key from the heap entirely. Returns ErrKeyAbsent if key
// is not present.
func (h *Heap[P]) Remove(key int) error {
	i, ok := h.index[key]
	if !ok {
		return ErrKeyAbsent
	}
	last := len(h.entries) - 1
	delete(h.index, key)
	if i == last {
		h.entries = h.entries[:last]
		return nil
	}

	h.entries[i] = h.entries[last]
	h.entries = h.entries[:last]
	h.index[h.entries[i].key] = i

	parent := (i - 1) / 2
	if i > 0 && h.entries[i].priority > h.entries[parent].priority {
		h.bubbleUp(i)
	} else {
		h.bubbleDown(i)
	}

	return nil
}

func (h *Heap[P]) bubbleUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.entries[parent].priority >= h.entries[i].priority {
			break
		}
		h.swap(parent, i)
		i = parent
	}
}

func (h *Heap[P]) bubbleDown(i int) {
	n := len(h.entries)
	for {
		left, right := 2*i+1, 2*i+2
		largest := i
		if left < n && h.entries[left].priority > h.entries[largest].priority {
			largest = left
		}
		if right < n && h.entries[right].priority > h.entries[largest].priority {
			largest = right
		}
		if largest == i {
			break
		}
		h.swap(i, largest)
		i = largest
	}
}

func (h *Heap[P]) swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.index[h.entries[i].key] = i
	h.index[h.entries[j].key] = j
}
