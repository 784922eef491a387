package stochastic

import (
	"fmt"
	"iter"
)

// StateUpdater applies the domain semantics of an event: mutating whatever
// client-side state backs the fired process and its dependents' rates.
// A System delegates to one after recording the event, the same way the teacher's
// decorator pattern wraps a processor rather than subclassing it.
type StateUpdater interface {
	// ApplyEvent applies the semantics of event. It is called with the event
	// already recorded as the system's last event.
	ApplyEvent(event Event) error
}

// DependencyLink declares that Successor's rate may change whenever Predecessor fires.
type DependencyLink struct {
	Predecessor int
	Successor   int
}

// SystemBuilder assigns per-system process indices and assembles a System.
// Indices come from a counter owned by the builder instance, not a package-level
// global: two builders in two tests never collide.
type SystemBuilder struct {
	counter   int
	processes []Process
	seen      map[int]bool
}

// NewSystemBuilder returns an empty builder with its own index counter.
func NewSystemBuilder() *SystemBuilder {
	return &SystemBuilder{seen: make(map[int]bool)}
}

// NextIndex hands out the next process index and advances the counter.
// Clients call this while constructing a process, then register it with AddProcess.
func (b *SystemBuilder) NextIndex() int {
	index := b.counter
	b.counter++
	return index
}

// AddProcess registers a process built with an index from NextIndex.
// It fails if the process is nil or its index was already registered.
func (b *SystemBuilder) AddProcess(p Process) error {
	if p == nil {
		return fmt.Errorf("cannot add a nil process")
	} else if b.seen[p.Index()] {
		return fmt.Errorf("duplicate process index %d", p.Index())
	}

	b.seen[p.Index()] = true
	b.processes = append(b.processes, p)
	return nil
}

// Build assembles the System: it links the dependency graph and installs updater
// as the hook that applies event semantics. Both link endpoints must already be
// registered processes.
func (b *SystemBuilder) Build(links []DependencyLink, updater StateUpdater) (*System, error) {
	graph := NewDependencyGraph()
	for _, link := range links {
		if !b.seen[link.Predecessor] {
			return nil, fmt.Errorf("dependency link refers to unknown predecessor %d", link.Predecessor)
		} else if !b.seen[link.Successor] {
			return nil, fmt.Errorf("dependency link refers to unknown successor %d", link.Successor)
		} else if err := graph.Link(link.Predecessor, link.Successor); err != nil {
			return nil, err
		}
	}

	index := make(map[int]Process, len(b.processes))
	for _, p := range b.processes {
		index[p.Index()] = p
	}

	return &System{
		processes: append([]Process(nil), b.processes...),
		index:     index,
		graph:     graph,
		updater:   updater,
	}, nil
}

// System owns an insertion-ordered process collection and the dependency graph
// coupling them. Its process set is fixed once built.
type System struct {
	processes  []Process
	index      map[int]Process
	graph      *DependencyGraph
	eventCount int
	lastEvent  *Event
	updater    StateUpdater
}

// Process returns the process registered under index, if any.
func (s *System) Process(index int) (Process, bool) {
	p, found := s.index[index]
	return p, found
}

// ProcessCount returns how many processes the system owns.
func (s *System) ProcessCount() int {
	return len(s.processes)
}

// ContainsIndex returns true if index names a process in this system.
func (s *System) ContainsIndex(index int) bool {
	_, found := s.index[index]
	return found
}

// ContainsProcess returns true if p belongs to this system.
func (s *System) ContainsProcess(p Process) bool {
	if p == nil {
		return false
	}
	return s.ContainsIndex(p.Index())
}

// LastEvent returns the most recently applied event, if any.
func (s *System) LastEvent() (Event, bool) {
	if s.lastEvent == nil {
		return Event{}, false
	}
	return *s.lastEvent, true
}

// LastEventTime returns the time of the last applied event, or Zero before the first one.
func (s *System) LastEventTime() Time {
	if s.lastEvent == nil {
		return Zero
	}
	return s.lastEvent.Time()
}

// EventCount returns how many events have been applied so far.
func (s *System) EventCount() int {
	return s.eventCount
}

// Successors returns the indices of the processes whose rate may change when p fires.
func (s *System) Successors(p Process) []int {
	if p == nil {
		return nil
	}
	return s.graph.Successors(p.Index())
}

// Processes iterates the process collection in insertion order.
func (s *System) Processes() iter.Seq[Process] {
	return func(yield func(Process) bool) {
		for _, p := range s.processes {
			if !yield(p) {
				return
			}
		}
	}
}

// UpdateState validates and records event, then delegates its semantics to the updater.
// It fails if event.Time is not strictly after the current last-event-time, or if
// event.Process does not belong to this system.
func (s *System) UpdateState(event Event) error {
	if !s.ContainsProcess(event.Process()) {
		return fmt.Errorf("event refers to unknown process %d", event.Process().Index())
	} else if event.Time() <= s.LastEventTime() {
		return fmt.Errorf("event time %v is not after last event time %v", event.Time(), s.LastEventTime())
	}

	s.eventCount++
	recorded := event
	s.lastEvent = &recorded

	if s.updater == nil {
		return nil
	}
	return s.updater.ApplyEvent(event)
}
