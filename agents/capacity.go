package agents

import (
	"fmt"

	"github.com/zefrenchwan/stochkit.git/stochastic"
)

// CapacityCappedProcess decorates another population process, shutting its rate off
// once a tracked subset of agents reaches a capacity. It reuses the wrapped process's
// index: only the decorator is ever registered with a system.
type CapacityCappedProcess struct {
	wrapped  populationProcess
	subset   []*Agent
	capacity int64
}

// NewCapacityCappedProcess caps wrapped so it can only fire while the combined
// population of subset is strictly below capacity.
func NewCapacityCappedProcess(wrapped populationProcess, subset []*Agent, capacity int64) (*CapacityCappedProcess, error) {
	if wrapped == nil {
		return nil, fmt.Errorf("cannot cap a nil process")
	} else if capacity < 0 {
		return nil, fmt.Errorf("capacity cannot be negative: %d", capacity)
	}

	return &CapacityCappedProcess{
		wrapped:  wrapped,
		subset:   append([]*Agent(nil), subset...),
		capacity: capacity,
	}, nil
}

// Index implements stochastic.Process, delegating to the wrapped process.
func (p *CapacityCappedProcess) Index() int {
	return p.wrapped.Index()
}

// Rate implements stochastic.Process: the wrapped rate while under capacity, else zero.
func (p *CapacityCappedProcess) Rate() stochastic.Rate {
	var total int64
	for _, agent := range p.subset {
		total += agent.Count()
	}

	if total < p.capacity {
		return p.wrapped.Rate()
	}
	return 0
}

// Apply delegates to the wrapped process's firing semantics.
func (p *CapacityCappedProcess) Apply() error {
	return p.wrapped.Apply()
}
