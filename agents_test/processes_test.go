package agents_test

import (
	"testing"

	"github.com/zefrenchwan/stochkit.git/agents"
	"github.com/zefrenchwan/stochkit.git/stochastic"
)

// TestPopulationArithmetic replays the transition-death-birth sequence from the
// agent system scenario: A=1000, B=2000, C=3000, D=0 with A->A+A (k=1), B->nothing
// (k=2), C->D (k=3). Applying one transition, one death, and one birth in that
// order, at strictly increasing times, must yield (1001, 1999, 2999, 1) and an
// event count of 3.
func TestPopulationArithmetic(t *testing.T) {
	a, _ := agents.NewAgent("A", 1000)
	b, _ := agents.NewAgent("B", 2000)
	c, _ := agents.NewAgent("C", 3000)
	d, _ := agents.NewAgent("D", 0)

	builder := agents.NewPopulationSystemBuilder()

	birth, err := agents.NewBirthProcess(builder.NextIndex(), a, 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := builder.AddProcess(birth); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	death, err := agents.NewDeathProcess(builder.NextIndex(), b, 2.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := builder.AddProcess(death); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	transition, err := agents.NewTransitionProcess(builder.NextIndex(), c, d, 3.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := builder.AddProcess(transition); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	system, err := builder.Build(nil)
	if err != nil {
		t.Fatalf("unexpected error building system: %v", err)
	}

	// FirstEvent's scheduled time is Zero + NextExponential(rate); a random source that
	// hands back a fixed increasing sequence from NextExponential, regardless of rate,
	// gives us exact, strictly increasing event times to drive in order.
	random := &scriptedIntervals{intervals: []stochastic.Time{0.1, 0.2, 0.3}}

	fire := func(process stochastic.Process) {
		t.Helper()
		event := stochastic.FirstEvent(process, random)
		if err := system.UpdateState(event); err != nil {
			t.Fatalf("unexpected error applying event: %v", err)
		}
	}

	fire(transition)
	fire(death)
	fire(birth)

	if a.Count() != 1001 {
		t.Fatalf("expected A=1001, got %d", a.Count())
	}
	if b.Count() != 1999 {
		t.Fatalf("expected B=1999, got %d", b.Count())
	}
	if c.Count() != 2999 {
		t.Fatalf("expected C=2999, got %d", c.Count())
	}
	if d.Count() != 1 {
		t.Fatalf("expected D=1, got %d", d.Count())
	}
	if system.EventCount() != 3 {
		t.Fatalf("expected event count 3, got %d", system.EventCount())
	}
}

func TestBirthRateScalesWithCount(t *testing.T) {
	a, _ := agents.NewAgent("A", 10)
	birth, err := agents.NewBirthProcess(0, a, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if birth.Rate() != 5 {
		t.Fatalf("expected rate 5, got %v", birth.Rate())
	}

	if err := a.Add(-10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if birth.Rate() != 0 {
		t.Fatalf("expected rate 0 once population is empty, got %v", birth.Rate())
	}
}

func TestNewProcessesRejectNegativeRate(t *testing.T) {
	a, _ := agents.NewAgent("A", 10)
	b, _ := agents.NewAgent("B", 10)

	if _, err := agents.NewBirthProcess(0, a, -1); err == nil {
		t.Fatal("negative birth rate should be rejected")
	}
	if _, err := agents.NewDeathProcess(0, a, -1); err == nil {
		t.Fatal("negative death rate should be rejected")
	}
	if _, err := agents.NewDecayProcess(0, a, -1); err == nil {
		t.Fatal("negative decay rate should be rejected")
	}
	if _, err := agents.NewTransitionProcess(0, a, b, -1); err == nil {
		t.Fatal("negative transition rate should be rejected")
	}
}

// scriptedIntervals is a stochastic.RandomSource stub that hands back a fixed
// sequence of waiting intervals from NextExponential, independent of the requested
// rate, so a test can drive a precise sequence of event times.
type scriptedIntervals struct {
	intervals []stochastic.Time
	position  int
}

func (s *scriptedIntervals) NextDouble() float64 {
	return 0.5
}

func (s *scriptedIntervals) NextExponential(stochastic.Rate) stochastic.Time {
	interval := s.intervals[s.position]
	s.position++
	return interval
}
