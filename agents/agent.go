package agents

import (
	"fmt"

	"github.com/google/uuid"
)

// Agent is a named, uniquely identified population counter: the species a process
// kind reads and mutates. Its id is a uuid string, distinct from the integer index
// the engine assigns to the processes that act on it.
type Agent struct {
	id    string
	name  string
	count int64
}

// NewAgent returns an agent named name with the given initial, non-negative population.
func NewAgent(name string, initial int64) (*Agent, error) {
	if initial < 0 {
		return nil, fmt.Errorf("agent %q cannot start with a negative population %d", name, initial)
	}

	return &Agent{id: uuid.NewString(), name: name, count: initial}, nil
}

// Id returns the agent's unique id.
func (a *Agent) Id() string {
	return a.id
}

// Name returns the agent's name.
func (a *Agent) Name() string {
	return a.name
}

// Count returns the current population.
func (a *Agent) Count() int64 {
	return a.count
}

// Add changes the population by delta, rejecting any change that would make it negative.
func (a *Agent) Add(delta int64) error {
	updated := a.count + delta
	if updated < 0 {
		return fmt.Errorf("agent %q population cannot go negative (currently %d, delta %d)", a.name, a.count, delta)
	}

	a.count = updated
	return nil
}
