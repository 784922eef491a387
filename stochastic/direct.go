package stochastic

import "errors"

// DirectAlgorithm is the optimized Gillespie direct method: a RateAggregator tracks
// the total rate incrementally and a PriorityList picks the firing process without
// a fresh sum-and-scan every step.
type DirectAlgorithm struct {
	system     *System
	aggregator *RateAggregator
	priority   *PriorityList
}

// NewDirectAlgorithm returns an optimized direct-method driver over system.
func NewDirectAlgorithm(system *System) (*DirectAlgorithm, error) {
	processes := make([]Process, 0, system.ProcessCount())
	for process := range system.Processes() {
		processes = append(processes, process)
	}

	aggregator, err := NewRateAggregator(system)
	if err != nil {
		return nil, err
	}

	return &DirectAlgorithm{
		system:     system,
		aggregator: aggregator,
		priority:   NewPriorityList(processes),
	}, nil
}

// Advance selects the next event via the aggregator and priority list, applies it to
// the system, and refreshes the aggregator with the fired process and its dependents.
func (a *DirectAlgorithm) Advance(random RandomSource) (Event, error) {
	total := a.aggregator.Total()
	if total.IsZero() {
		return Event{}, errors.New("total rate is zero: no process can fire")
	}

	selected, err := a.priority.Select(random.NextDouble(), total)
	if err != nil {
		return Event{}, err
	}

	rate, err := currentRate(selected)
	if err != nil {
		return Event{}, err
	}

	newTime := a.system.LastEventTime() + total.SampleInterval(random)
	event := Event{process: selected, rate: rate, time: newTime}

	if err := a.system.UpdateState(event); err != nil {
		return Event{}, err
	}

	dependents := a.system.Successors(selected)
	if err := a.aggregator.Update(selected.Index(), dependents); err != nil {
		return Event{}, err
	}
	return event, nil
}
