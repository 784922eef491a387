package agents

import (
	"fmt"

	"github.com/zefrenchwan/stochkit.git/stochastic"
)

// populationProcess is a stochastic.Process that also knows how to apply its own
// firing to the agents it reads. The engine only ever sees the stochastic.Process
// half of this: population mutation is wired through a PopulationUpdater, never
// through a down-cast.
type populationProcess interface {
	stochastic.Process
	Apply() error
}

// BirthProcess models A -> A+A at rate k*count(A).
type BirthProcess struct {
	index int
	agent *Agent
	k     float64
}

// NewBirthProcess returns a birth process over agent with base rate k.
func NewBirthProcess(index int, agent *Agent, k float64) (*BirthProcess, error) {
	if k < 0 {
		return nil, fmt.Errorf("birth process base rate cannot be negative: %v", k)
	}
	return &BirthProcess{index: index, agent: agent, k: k}, nil
}

// Index implements stochastic.Process.
func (p *BirthProcess) Index() int { return p.index }

// Rate implements stochastic.Process.
func (p *BirthProcess) Rate() stochastic.Rate {
	return stochastic.Rate(p.k * float64(p.agent.Count()))
}

// Apply increments the agent's population by one.
func (p *BirthProcess) Apply() error {
	return p.agent.Add(1)
}

// DeathProcess models A -> nothing at rate k*count(A).
type DeathProcess struct {
	index int
	agent *Agent
	k     float64
}

// NewDeathProcess returns a death process over agent with base rate k.
func NewDeathProcess(index int, agent *Agent, k float64) (*DeathProcess, error) {
	if k < 0 {
		return nil, fmt.Errorf("death process base rate cannot be negative: %v", k)
	}
	return &DeathProcess{index: index, agent: agent, k: k}, nil
}

// Index implements stochastic.Process.
func (p *DeathProcess) Index() int { return p.index }

// Rate implements stochastic.Process.
func (p *DeathProcess) Rate() stochastic.Rate {
	return stochastic.Rate(p.k * float64(p.agent.Count()))
}

// Apply decrements the agent's population by one.
func (p *DeathProcess) Apply() error {
	return p.agent.Add(-1)
}

// DecayProcess models first-order decay A -> nothing at rate k*count(A).
// It is the same law as DeathProcess, named separately so scenario files and
// the analytical decay end-to-end test can refer to it without implying the
// process is modeling a death in the demographic sense.
type DecayProcess struct {
	death *DeathProcess
}

// NewDecayProcess returns a decay process over agent with base rate k.
func NewDecayProcess(index int, agent *Agent, k float64) (*DecayProcess, error) {
	death, err := NewDeathProcess(index, agent, k)
	if err != nil {
		return nil, err
	}
	return &DecayProcess{death: death}, nil
}

// Index implements stochastic.Process.
func (p *DecayProcess) Index() int { return p.death.Index() }

// Rate implements stochastic.Process.
func (p *DecayProcess) Rate() stochastic.Rate { return p.death.Rate() }

// Apply decrements the decaying agent's population by one.
func (p *DecayProcess) Apply() error { return p.death.Apply() }

// TransitionProcess models A -> B at rate k*count(A).
type TransitionProcess struct {
	index  int
	source *Agent
	dest   *Agent
	k      float64
}

// NewTransitionProcess returns a transition process from source to dest with base rate k.
func NewTransitionProcess(index int, source, dest *Agent, k float64) (*TransitionProcess, error) {
	if k < 0 {
		return nil, fmt.Errorf("transition process base rate cannot be negative: %v", k)
	}
	return &TransitionProcess{index: index, source: source, dest: dest, k: k}, nil
}

// Index implements stochastic.Process.
func (p *TransitionProcess) Index() int { return p.index }

// Rate implements stochastic.Process.
func (p *TransitionProcess) Rate() stochastic.Rate {
	return stochastic.Rate(p.k * float64(p.source.Count()))
}

// Apply moves one unit of population from source to dest.
func (p *TransitionProcess) Apply() error {
	if err := p.source.Add(-1); err != nil {
		return err
	}
	return p.dest.Add(1)
}
