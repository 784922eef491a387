package stochastic_test

import (
	"math"
	"testing"

	"github.com/zefrenchwan/stochkit.git/stochastic"
)

type noopUpdater struct{}

func (noopUpdater) ApplyEvent(stochastic.Event) error { return nil }

func buildSystem(t *testing.T, processes []stochastic.Process, links []stochastic.DependencyLink) *stochastic.System {
	t.Helper()
	builder := stochastic.NewSystemBuilder()
	for _, p := range processes {
		if err := builder.AddProcess(p); err != nil {
			t.Fatalf("unexpected error adding process: %v", err)
		}
	}
	system, err := builder.Build(links, noopUpdater{})
	if err != nil {
		t.Fatalf("unexpected error building system: %v", err)
	}
	return system
}

func sumRates(processes []stochastic.Process) float64 {
	var total float64
	for _, p := range processes {
		total += float64(p.Rate())
	}
	return total
}

func TestAggregatorFullRefreshMatchesSum(t *testing.T) {
	processes := []stochastic.Process{
		&rateProcess{index: 0, rate: 1},
		&rateProcess{index: 1, rate: 2},
		&rateProcess{index: 2, rate: 3},
	}
	system := buildSystem(t, processes, nil)

	aggregator, err := stochastic.NewRateAggregator(system)
	if err != nil {
		t.Fail()
	}
	if math.Abs(float64(aggregator.Total())-sumRates(processes)) > stochastic.Epsilon {
		t.Log("aggregator total disagreed with direct sum after full refresh")
		t.Fail()
	}
}

func TestAggregatorPartialUpdateStaysWithinDrift(t *testing.T) {
	backing := make([]*rateProcess, 0, 20)
	processes := make([]stochastic.Process, 0, 20)
	for i := 0; i < 20; i++ {
		p := &rateProcess{index: i, rate: stochastic.Rate(i + 1)}
		backing = append(backing, p)
		processes = append(processes, p)
	}
	system := buildSystem(t, processes, nil)

	aggregator, err := stochastic.NewRateAggregator(system)
	if err != nil {
		t.Fail()
	}

	for i := 0; i < 50; i++ {
		firedIndex := i % len(backing)
		backing[firedIndex].rate += 1

		if err := aggregator.Update(firedIndex, nil); err != nil {
			t.Fail()
		}

		drift := math.Abs(float64(aggregator.Total()) - sumRates(processes))
		if drift > stochastic.Epsilon*float64(len(processes)) {
			t.Log("aggregator drift exceeded epsilon*N bound")
			t.Fail()
		}
	}
}

func TestAggregatorRejectsNegativeRate(t *testing.T) {
	negative := &rateProcess{index: 0, rate: -1}
	system := buildSystem(t, []stochastic.Process{negative}, nil)
	if _, err := stochastic.NewRateAggregator(system); err == nil {
		t.Log("negative rate should be rejected during full refresh")
		t.Fail()
	}
}
