package stochastic

import "fmt"

// IndexedEventHeap is a min-heap of events, one per process, ordered by Event.Compare.
// A locator map keeps process-index -> heap-position consistent through every swap,
// giving O(log n) rekeying — the operation the next-reaction algorithm relies on.
// Position 0 is unused; live entries occupy positions 1..size.
type IndexedEventHeap struct {
	entries []Event
	locator map[int]int
}

// NewIndexedEventHeap returns an empty heap.
func NewIndexedEventHeap() *IndexedEventHeap {
	return &IndexedEventHeap{
		entries: make([]Event, 1),
		locator: make(map[int]int),
	}
}

// Size returns the number of events currently held.
func (h *IndexedEventHeap) Size() int {
	return len(h.entries) - 1
}

// Insert adds event, keyed by its process. It fails if that process already has an entry.
func (h *IndexedEventHeap) Insert(event Event) error {
	index := event.Process().Index()
	if _, found := h.locator[index]; found {
		return fmt.Errorf("heap already contains an entry for process %d", index)
	}

	h.entries = append(h.entries, event)
	position := len(h.entries) - 1
	h.locator[index] = position
	h.siftUp(position)
	return nil
}

// Peek returns the root event (earliest scheduled time), if any.
func (h *IndexedEventHeap) Peek() (Event, bool) {
	if h.Size() == 0 {
		return Event{}, false
	}
	return h.entries[1], true
}

// Find returns the current entry for process index, if any.
func (h *IndexedEventHeap) Find(index int) (Event, bool) {
	position, found := h.locator[index]
	if !found {
		return Event{}, false
	}
	return h.entries[position], true
}

// Update replaces the entry for event.Process with event and restores the heap property.
// It fails if that process has no existing entry.
func (h *IndexedEventHeap) Update(event Event) error {
	index := event.Process().Index()
	position, found := h.locator[index]
	if !found {
		return fmt.Errorf("heap has no entry for process %d to update", index)
	}

	h.entries[position] = event
	// only one of these will actually move the entry, but calling both is cheap and robust
	h.siftDown(position)
	h.siftUp(h.locator[index])
	return nil
}

// Remove deletes the entry for process index, if present, and returns whether it was found.
// The backing slice is compacted when its capacity exceeds 16 and used capacity falls below half.
func (h *IndexedEventHeap) Remove(index int) bool {
	position, found := h.locator[index]
	if !found {
		return false
	}

	last := len(h.entries) - 1
	if position != last {
		h.entries[position] = h.entries[last]
		h.locator[h.entries[position].Process().Index()] = position
	}

	h.entries = h.entries[:last]
	delete(h.locator, index)

	if position <= len(h.entries)-1 {
		h.siftDown(position)
		h.siftUp(position)
	}

	h.compact()
	return true
}

// compact reallocates the backing slice when its capacity exceeds 16 and used capacity falls below half.
func (h *IndexedEventHeap) compact() {
	if cap(h.entries) > 16 && len(h.entries)*2 < cap(h.entries) {
		fresh := make([]Event, len(h.entries), len(h.entries))
		copy(fresh, h.entries)
		h.entries = fresh
	}
}

// ValidateOrder is a debug check that every parent compares less than or equal to both children.
func (h *IndexedEventHeap) ValidateOrder() error {
	size := h.Size()
	for position := 1; position <= size; position++ {
		for _, child := range []int{2 * position, 2*position + 1} {
			if child > size {
				continue
			}
			if h.entries[position].Compare(h.entries[child]) > 0 {
				return fmt.Errorf("heap invariant broken at position %d: parent is after child %d", position, child)
			}
		}
	}
	return nil
}

// IsOrdered returns true if ValidateOrder finds no violation.
func (h *IndexedEventHeap) IsOrdered() bool {
	return h.ValidateOrder() == nil
}

func (h *IndexedEventHeap) siftUp(position int) {
	for position > 1 {
		parent := position / 2
		if h.entries[position].Compare(h.entries[parent]) >= 0 {
			return
		}
		h.swap(position, parent)
		position = parent
	}
}

func (h *IndexedEventHeap) siftDown(position int) {
	size := h.Size()
	for {
		left, right := 2*position, 2*position+1
		smallest := position

		if left <= size && h.entries[left].Compare(h.entries[smallest]) < 0 {
			smallest = left
		}
		if right <= size && h.entries[right].Compare(h.entries[smallest]) < 0 {
			smallest = right
		}
		if smallest == position {
			return
		}

		h.swap(position, smallest)
		position = smallest
	}
}

func (h *IndexedEventHeap) swap(a, b int) {
	h.entries[a], h.entries[b] = h.entries[b], h.entries[a]
	h.locator[h.entries[a].Process().Index()] = a
	h.locator[h.entries[b].Process().Index()] = b
}
