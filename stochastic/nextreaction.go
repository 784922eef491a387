package stochastic

import (
	"errors"
	"fmt"
)

// NextReactionAlgorithm is the Gibson-Bruck method: every process keeps a scheduled
// event in an indexed heap; each step takes the earliest (without removing it), refires
// it, and retimes every dependent in place using the rate-ratio retiming rule.
type NextReactionAlgorithm struct {
	system *System
	heap   *IndexedEventHeap
}

// NewNextReactionAlgorithm seeds a heap with a first-firing event for every process in
// system and returns a next-reaction driver over it.
func NewNextReactionAlgorithm(system *System, random RandomSource) (*NextReactionAlgorithm, error) {
	heap := NewIndexedEventHeap()
	for process := range system.Processes() {
		if err := heap.Insert(FirstEvent(process, random)); err != nil {
			return nil, err
		}
	}

	return &NextReactionAlgorithm{system: system, heap: heap}, nil
}

// Advance returns the earliest scheduled event, applies it to the system, refires the
// process that just fired, and retimes every dependent process's scheduled event.
// The heap remains fully populated (and ordered) afterward.
func (a *NextReactionAlgorithm) Advance(random RandomSource) (Event, error) {
	event, found := a.heap.Peek()
	if !found {
		return Event{}, errors.New("next-reaction heap is empty")
	} else if event.Time().IsInfinite() {
		return Event{}, errors.New("total rate is zero: no process can fire")
	}

	if err := a.system.UpdateState(event); err != nil {
		return Event{}, err
	}

	if err := a.heap.Update(event.Next(random)); err != nil {
		return Event{}, err
	}

	for _, dependentIndex := range a.system.Successors(event.Process()) {
		dependentEvent, found := a.heap.Find(dependentIndex)
		if !found {
			return Event{}, fmt.Errorf("next-reaction heap has no entry for dependent process %d", dependentIndex)
		}

		retimed, err := dependentEvent.UpdateFrom(event, random)
		if err != nil {
			return Event{}, err
		}

		if err := a.heap.Update(retimed); err != nil {
			return Event{}, err
		}
	}

	return event, nil
}

// ValidateOrder exposes the heap's debug invariant check for tests.
func (a *NextReactionAlgorithm) ValidateOrder() error {
	return a.heap.ValidateOrder()
}
