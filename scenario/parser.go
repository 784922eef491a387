package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parser parses scenario YAML documents.
type Parser struct{}

// NewParser returns a Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile reads and parses a scenario file.
func (p *Parser) ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return p.Parse(data)
}

// Parse parses a scenario document from YAML bytes.
func (p *Parser) Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse scenario YAML: %w", err)
	}

	if err := p.validateRequiredFields(&f); err != nil {
		return nil, err
	}

	return &f, nil
}

// validateRequiredFields checks the fields a scenario cannot be parsed without.
// Deeper semantic checks (duplicate names, dangling references) live in Validator.
func (p *Parser) validateRequiredFields(f *File) error {
	if f.APIVersion == "" {
		return fmt.Errorf("apiVersion is required")
	}
	if f.Kind != "StochasticScenario" {
		return fmt.Errorf("kind must be 'StochasticScenario', got %q", f.Kind)
	}
	if f.Metadata.Name == "" {
		return fmt.Errorf("metadata.name is required")
	}
	if len(f.Spec.Agents) == 0 {
		return fmt.Errorf("spec.agents must have at least one agent")
	}
	if len(f.Spec.Processes) == 0 {
		return fmt.Errorf("spec.processes must have at least one process")
	}
	if f.Spec.Steps <= 0 {
		return fmt.Errorf("spec.steps must be positive")
	}
	return nil
}
