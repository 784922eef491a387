package agents_test

import (
	"testing"

	"github.com/zefrenchwan/stochkit.git/agents"
)

// TestCapacityCapBoundary checks the exact boundary from the capacity-cap scenario:
// a subset count of capacity-1 still lets the wrapped process fire at its base rate,
// while a subset count of exactly capacity zeroes it out.
func TestCapacityCapBoundary(t *testing.T) {
	const capacity = 10

	tracked, err := agents.NewAgent("tracked", capacity-1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	source, err := agents.NewAgent("source", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	birth, err := agents.NewBirthProcess(0, source, 2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	capped, err := agents.NewCapacityCappedProcess(birth, []*agents.Agent{tracked}, capacity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if capped.Rate() != birth.Rate() {
		t.Fatalf("expected base rate at count=capacity-1, got %v", capped.Rate())
	}

	if err := tracked.Add(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if capped.Rate() != 0 {
		t.Fatalf("expected zero rate at count=capacity, got %v", capped.Rate())
	}
}

func TestCapacityCapSumsAcrossSubset(t *testing.T) {
	const capacity = 5

	first, _ := agents.NewAgent("first", 2)
	second, _ := agents.NewAgent("second", 2)
	source, _ := agents.NewAgent("source", 100)

	birth, err := agents.NewBirthProcess(0, source, 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	capped, err := agents.NewCapacityCappedProcess(birth, []*agents.Agent{first, second}, capacity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// combined count is 4 < 5: still under capacity
	if capped.Rate() != birth.Rate() {
		t.Fatalf("expected base rate under combined capacity, got %v", capped.Rate())
	}

	if err := second.Add(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// combined count is now 5 == capacity: capped
	if capped.Rate() != 0 {
		t.Fatalf("expected zero rate once combined count reaches capacity, got %v", capped.Rate())
	}
}

func TestCapacityCappedProcessDelegatesApply(t *testing.T) {
	tracked, _ := agents.NewAgent("tracked", 0)
	source, _ := agents.NewAgent("source", 10)

	birth, err := agents.NewBirthProcess(0, source, 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	capped, err := agents.NewCapacityCappedProcess(birth, []*agents.Agent{tracked}, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := capped.Apply(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source.Count() != 11 {
		t.Fatalf("expected source=11 after Apply, got %d", source.Count())
	}
	if capped.Index() != birth.Index() {
		t.Fatalf("capped process should report the wrapped process's index")
	}
}

func TestNewCapacityCappedProcessRejectsNilOrNegative(t *testing.T) {
	tracked, _ := agents.NewAgent("tracked", 0)
	source, _ := agents.NewAgent("source", 10)
	birth, _ := agents.NewBirthProcess(0, source, 1.0)

	if _, err := agents.NewCapacityCappedProcess(nil, []*agents.Agent{tracked}, 10); err == nil {
		t.Fatal("nil wrapped process should be rejected")
	}
	if _, err := agents.NewCapacityCappedProcess(birth, []*agents.Agent{tracked}, -1); err == nil {
		t.Fatal("negative capacity should be rejected")
	}
}
