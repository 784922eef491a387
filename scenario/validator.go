package scenario

import (
	"fmt"
	"strings"
)

// validAlgorithms are the Spec.Algorithm values cmd/stochkit knows how to build.
var validAlgorithms = []string{"reference", "direct", "nextreaction"}

// validKinds are the ProcessSpec.Kind values the agents package can construct.
var validKinds = []string{"birth", "death", "decay", "transition"}

// Validator runs semantic checks a YAML schema alone cannot express: duplicate
// names, dangling references, self-links. Warnings are non-fatal; Errors block
// Build.
type Validator struct {
	Warnings []string
	Errors   []string
}

// NewValidator returns a Validator ready to validate one scenario.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks f and records Warnings/Errors. It returns an error summarizing
// the error count if any errors were found.
func (v *Validator) Validate(f *File) error {
	v.Warnings = nil
	v.Errors = nil

	agentNames := v.validateAgents(f)
	processNames := v.validateProcesses(f, agentNames)
	v.validateLinks(f, processNames)
	v.validateAlgorithm(f)

	if len(v.Errors) > 0 {
		return fmt.Errorf("validation failed with %d errors", len(v.Errors))
	}
	return nil
}

// HasWarnings reports whether Validate recorded any warnings.
func (v *Validator) HasWarnings() bool {
	return len(v.Warnings) > 0
}

// Report formats Warnings and Errors for display.
func (v *Validator) Report() string {
	var sb strings.Builder
	if len(v.Errors) > 0 {
		sb.WriteString("ERRORS:\n")
		for _, e := range v.Errors {
			sb.WriteString(fmt.Sprintf("  - %s\n", e))
		}
	}
	if len(v.Warnings) > 0 {
		sb.WriteString("WARNINGS:\n")
		for _, w := range v.Warnings {
			sb.WriteString(fmt.Sprintf("  - %s\n", w))
		}
	}
	if len(v.Errors) == 0 && len(v.Warnings) == 0 {
		sb.WriteString("validation passed with no issues\n")
	}
	return sb.String()
}

func (v *Validator) validateAgents(f *File) map[string]bool {
	names := make(map[string]bool, len(f.Spec.Agents))
	for i, a := range f.Spec.Agents {
		if a.Name == "" {
			v.Errors = append(v.Errors, fmt.Sprintf("spec.agents[%d].name is required", i))
			continue
		}
		if names[a.Name] {
			v.Errors = append(v.Errors, fmt.Sprintf("spec.agents[%d].name %q is duplicated", i, a.Name))
			continue
		}
		if a.Initial < 0 {
			v.Errors = append(v.Errors, fmt.Sprintf("spec.agents[%d] %q has a negative initial population", i, a.Name))
		}
		names[a.Name] = true
	}
	return names
}

func (v *Validator) validateProcesses(f *File, agentNames map[string]bool) map[string]bool {
	names := make(map[string]bool, len(f.Spec.Processes))
	for i, proc := range f.Spec.Processes {
		if proc.Name == "" {
			v.Errors = append(v.Errors, fmt.Sprintf("spec.processes[%d].name is required", i))
			continue
		}
		if names[proc.Name] {
			v.Errors = append(v.Errors, fmt.Sprintf("spec.processes[%d].name %q is duplicated", i, proc.Name))
			continue
		}
		names[proc.Name] = true

		if !contains(validKinds, proc.Kind) {
			v.Errors = append(v.Errors, fmt.Sprintf("spec.processes[%d] %q has unsupported kind %q", i, proc.Name, proc.Kind))
			continue
		}
		if proc.Rate < 0 {
			v.Errors = append(v.Errors, fmt.Sprintf("spec.processes[%d] %q has a negative rate", i, proc.Name))
		}

		switch proc.Kind {
		case "birth", "death", "decay":
			v.requireAgent(agentNames, proc.Agent, i, proc.Name, "agent")
		case "transition":
			v.requireAgent(agentNames, proc.Source, i, proc.Name, "source")
			v.requireAgent(agentNames, proc.Dest, i, proc.Name, "dest")
		}

		if proc.Capacity != nil {
			if len(proc.Capacity.Subset) == 0 {
				v.Errors = append(v.Errors, fmt.Sprintf("spec.processes[%d] %q capacity.subset must name at least one agent", i, proc.Name))
			}
			for _, name := range proc.Capacity.Subset {
				if !agentNames[name] {
					v.Errors = append(v.Errors, fmt.Sprintf("spec.processes[%d] %q capacity.subset references unknown agent %q", i, proc.Name, name))
				}
			}
			if proc.Capacity.Limit < 0 {
				v.Errors = append(v.Errors, fmt.Sprintf("spec.processes[%d] %q capacity.limit cannot be negative", i, proc.Name))
			}
		}
	}
	return names
}

func (v *Validator) requireAgent(agentNames map[string]bool, name string, index int, procName, field string) {
	if name == "" {
		v.Errors = append(v.Errors, fmt.Sprintf("spec.processes[%d] %q is missing %s", index, procName, field))
		return
	}
	if !agentNames[name] {
		v.Errors = append(v.Errors, fmt.Sprintf("spec.processes[%d] %q references unknown agent %q in %s", index, procName, name, field))
	}
}

func (v *Validator) validateLinks(f *File, processNames map[string]bool) {
	for i, link := range f.Spec.Links {
		if link.Predecessor == link.Successor {
			v.Errors = append(v.Errors, fmt.Sprintf("spec.links[%d] links %q to itself", i, link.Predecessor))
			continue
		}
		if !processNames[link.Predecessor] {
			v.Errors = append(v.Errors, fmt.Sprintf("spec.links[%d].predecessor %q is not a known process", i, link.Predecessor))
		}
		if !processNames[link.Successor] {
			v.Errors = append(v.Errors, fmt.Sprintf("spec.links[%d].successor %q is not a known process", i, link.Successor))
		}
	}
}

func (v *Validator) validateAlgorithm(f *File) {
	if !contains(validAlgorithms, f.Spec.Algorithm) {
		v.Errors = append(v.Errors, fmt.Sprintf("spec.algorithm %q is not one of %v", f.Spec.Algorithm, validAlgorithms))
	}
	if len(f.Spec.Links) == 0 {
		v.Warnings = append(v.Warnings, "spec.links is empty: no process's rate depends on another firing")
	}
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}
