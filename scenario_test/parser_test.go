package scenario_test

import (
	"testing"

	"github.com/zefrenchwan/stochkit.git/scenario"
)

const minimalScenario = `
apiVersion: stochkit/v1
kind: StochasticScenario
metadata:
  name: decay-demo
spec:
  algorithm: direct
  steps: 10
  agents:
    - name: A
      initial: 1000
  processes:
    - name: decay-A
      kind: decay
      agent: A
      rate: 0.1
`

func TestParseMinimalScenario(t *testing.T) {
	parser := scenario.NewParser()
	file, err := parser.Parse([]byte(minimalScenario))
	if err != nil {
		t.Fatalf("expected valid scenario to parse, got: %v", err)
	}

	if file.Metadata.Name != "decay-demo" {
		t.Fatalf("expected metadata.name 'decay-demo', got %q", file.Metadata.Name)
	}
	if len(file.Spec.Agents) != 1 || file.Spec.Agents[0].Initial != 1000 {
		t.Fatalf("unexpected agents: %+v", file.Spec.Agents)
	}
}

func TestParseRejectsMissingKind(t *testing.T) {
	parser := scenario.NewParser()
	_, err := parser.Parse([]byte(`
apiVersion: stochkit/v1
metadata:
  name: x
spec:
  algorithm: direct
  steps: 1
  agents: [{name: A, initial: 1}]
  processes: [{name: p, kind: decay, agent: A, rate: 1}]
`))
	if err == nil {
		t.Fatal("expected missing kind to be rejected")
	}
}

func TestParseRejectsZeroSteps(t *testing.T) {
	parser := scenario.NewParser()
	_, err := parser.Parse([]byte(`
apiVersion: stochkit/v1
kind: StochasticScenario
metadata:
  name: x
spec:
  algorithm: direct
  steps: 0
  agents: [{name: A, initial: 1}]
  processes: [{name: p, kind: decay, agent: A, rate: 1}]
`))
	if err == nil {
		t.Fatal("expected zero steps to be rejected")
	}
}
