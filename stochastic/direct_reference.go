package stochastic

import "errors"

// ReferenceDirectAlgorithm is the naive Gillespie direct method: every step re-sums
// every process's rate and re-walks the full process list. It keeps no state between
// steps, which makes it the baseline the optimized algorithms are measured against.
type ReferenceDirectAlgorithm struct {
	system *System
}

// NewReferenceDirectAlgorithm returns a reference direct-method driver over system.
func NewReferenceDirectAlgorithm(system *System) *ReferenceDirectAlgorithm {
	return &ReferenceDirectAlgorithm{system: system}
}

// Advance selects the next event by the direct method, applies it to the system, and
// returns it. There is nothing to update afterward: this algorithm carries no indices.
func (a *ReferenceDirectAlgorithm) Advance(random RandomSource) (Event, error) {
	var total float64
	rates := make(map[int]Rate)
	for process := range a.system.Processes() {
		rate, err := currentRate(process)
		if err != nil {
			return Event{}, err
		}
		rates[process.Index()] = rate
		total += float64(rate)
	}

	if total <= 0 {
		return Event{}, errors.New("total rate is zero: no process can fire")
	}

	threshold := random.NextDouble() * total
	var cumulative float64
	var selected Process
	for process := range a.system.Processes() {
		selected = process
		cumulative += float64(rates[process.Index()])
		if approxGreaterOrEqual(cumulative, threshold) {
			break
		}
	}

	newTime := a.system.LastEventTime() + Rate(total).SampleInterval(random)
	event := Event{process: selected, rate: rates[selected.Index()], time: newTime}

	if err := a.system.UpdateState(event); err != nil {
		return Event{}, err
	}
	return event, nil
}
