package stochastic

import "fmt"

// Rate is a non-negative expected-firings-per-unit-time value.
// A zero rate means the process cannot fire.
type Rate float64

// IsZero returns true if r cannot produce a firing.
func (r Rate) IsZero() bool {
	return r <= 0
}

// SampleInterval draws a waiting interval from an exponential distribution with this rate.
// A zero rate yields PositiveInfinity rather than dividing by zero.
func (r Rate) SampleInterval(random RandomSource) Time {
	if r.IsZero() {
		return PositiveInfinity()
	}

	return random.NextExponential(r)
}

// currentRate reads p's rate and rejects a negative value as the contract violation it is.
func currentRate(p Process) (Rate, error) {
	rate := p.Rate()
	if rate < 0 {
		return 0, fmt.Errorf("process %d has a negative rate %v", p.Index(), rate)
	}
	return rate, nil
}
