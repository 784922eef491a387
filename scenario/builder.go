package scenario

import (
	"fmt"

	"github.com/zefrenchwan/stochkit.git/agents"
	"github.com/zefrenchwan/stochkit.git/stochastic"
)

// Built is the runnable result of assembling a scenario: a system, the algorithm
// it should be driven with, and a seeded random source.
type Built struct {
	System    *stochastic.System
	Algorithm stochastic.Algorithm
	Random    stochastic.RandomSource
}

// Build assembles f into a Built simulation. f should already have passed
// Validator.Validate; Build re-checks only what it needs to construct processes
// safely (it does not duplicate every Validator rule).
func Build(f *File) (*Built, error) {
	agentsByName := make(map[string]*agents.Agent, len(f.Spec.Agents))
	for _, spec := range f.Spec.Agents {
		a, err := agents.NewAgent(spec.Name, spec.Initial)
		if err != nil {
			return nil, fmt.Errorf("agent %q: %w", spec.Name, err)
		}
		agentsByName[spec.Name] = a
	}

	builder := agents.NewPopulationSystemBuilder()
	indexByProcessName := make(map[string]int, len(f.Spec.Processes))

	for _, spec := range f.Spec.Processes {
		process, err := buildProcess(builder, spec, agentsByName)
		if err != nil {
			return nil, fmt.Errorf("process %q: %w", spec.Name, err)
		}
		indexByProcessName[spec.Name] = process.Index()
	}

	links := make([]stochastic.DependencyLink, 0, len(f.Spec.Links))
	for _, link := range f.Spec.Links {
		links = append(links, stochastic.DependencyLink{
			Predecessor: indexByProcessName[link.Predecessor],
			Successor:   indexByProcessName[link.Successor],
		})
	}

	system, err := builder.Build(links)
	if err != nil {
		return nil, fmt.Errorf("assembling system: %w", err)
	}

	random := stochastic.NewRandomSource(f.Spec.Seed1, f.Spec.Seed2)

	algorithm, err := buildAlgorithm(f.Spec.Algorithm, system, random)
	if err != nil {
		return nil, err
	}

	return &Built{System: system, Algorithm: algorithm, Random: random}, nil
}

func buildProcess(builder *agents.PopulationSystemBuilder, spec ProcessSpec, agentsByName map[string]*agents.Agent) (stochastic.Process, error) {
	index := builder.NextIndex()

	var process interface {
		stochastic.Process
		Apply() error
	}
	var err error

	switch spec.Kind {
	case "birth":
		process, err = agents.NewBirthProcess(index, agentsByName[spec.Agent], spec.Rate)
	case "death":
		process, err = agents.NewDeathProcess(index, agentsByName[spec.Agent], spec.Rate)
	case "decay":
		process, err = agents.NewDecayProcess(index, agentsByName[spec.Agent], spec.Rate)
	case "transition":
		process, err = agents.NewTransitionProcess(index, agentsByName[spec.Source], agentsByName[spec.Dest], spec.Rate)
	default:
		return nil, fmt.Errorf("unsupported process kind %q", spec.Kind)
	}
	if err != nil {
		return nil, err
	}

	if spec.Capacity != nil {
		subset := make([]*agents.Agent, 0, len(spec.Capacity.Subset))
		for _, name := range spec.Capacity.Subset {
			subset = append(subset, agentsByName[name])
		}
		capped, err := agents.NewCapacityCappedProcess(process, subset, spec.Capacity.Limit)
		if err != nil {
			return nil, err
		}
		process = capped
	}

	if err := builder.AddProcess(process); err != nil {
		return nil, err
	}
	return process, nil
}

func buildAlgorithm(name string, system *stochastic.System, random stochastic.RandomSource) (stochastic.Algorithm, error) {
	switch name {
	case "reference":
		return stochastic.NewReferenceDirectAlgorithm(system), nil
	case "direct":
		return stochastic.NewDirectAlgorithm(system)
	case "nextreaction":
		return stochastic.NewNextReactionAlgorithm(system, random)
	default:
		return nil, fmt.Errorf("unsupported algorithm %q", name)
	}
}
