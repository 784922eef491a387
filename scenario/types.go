// Package scenario describes a simulation as a YAML document: the agents (species
// populations), the process kinds that read and mutate them, the dependency links
// between the processes they fire through, and which event-selection algorithm to
// drive the run with. It is consumed by cmd/stochkit; the stochastic and agents
// packages never import it.
package scenario

// File is the root of a scenario document.
type File struct {
	APIVersion string   `yaml:"apiVersion"`
	Kind       string   `yaml:"kind"`
	Metadata   Metadata `yaml:"metadata"`
	Spec       Spec     `yaml:"spec"`
}

// Metadata carries a scenario's human-facing identification.
type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// Spec is the body of a scenario: what to simulate and how to run it.
type Spec struct {
	// Algorithm selects the event-selection strategy: "reference", "direct", or
	// "nextreaction".
	Algorithm string `yaml:"algorithm"`

	// Steps bounds how many events Advance is called for.
	Steps int `yaml:"steps"`

	// Seed1, Seed2 seed the random source deterministically. Both zero (the default
	// when omitted) is an ordinary seed pair: the run is still reproducible.
	Seed1 uint64 `yaml:"seed1,omitempty"`
	Seed2 uint64 `yaml:"seed2,omitempty"`

	Agents    []AgentSpec   `yaml:"agents"`
	Processes []ProcessSpec `yaml:"processes"`
	Links     []LinkSpec    `yaml:"links,omitempty"`
}

// AgentSpec declares one named population and its initial count.
type AgentSpec struct {
	Name    string `yaml:"name"`
	Initial int64  `yaml:"initial"`
}

// ProcessSpec declares one process kind over one or two named agents.
type ProcessSpec struct {
	// Name uniquely identifies this process within the scenario, for use in Links.
	Name string `yaml:"name"`

	// Kind is one of "birth", "death", "decay", "transition".
	Kind string `yaml:"kind"`

	// Agent is the operand for birth, death and decay.
	Agent string `yaml:"agent,omitempty"`

	// Source, Dest are the operands for transition.
	Source string `yaml:"source,omitempty"`
	Dest   string `yaml:"dest,omitempty"`

	// Rate is the process's base rate constant k.
	Rate float64 `yaml:"rate"`

	// Capacity, if set, wraps this process in a capacity cap.
	Capacity *CapacitySpec `yaml:"capacity,omitempty"`
}

// CapacitySpec caps a process's rate to zero once a subset of agents fills up.
type CapacitySpec struct {
	Subset []string `yaml:"subset"`
	Limit  int64    `yaml:"limit"`
}

// LinkSpec declares that Successor's rate may change whenever Predecessor fires,
// referencing ProcessSpec.Name on both ends.
type LinkSpec struct {
	Predecessor string `yaml:"predecessor"`
	Successor   string `yaml:"successor"`
}
