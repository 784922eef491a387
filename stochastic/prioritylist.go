package stochastic

import "errors"

// PriorityList is a rate-weighted random selection list that self-adjusts: the
// process it just selected is promoted one position toward the head, so frequently
// selected (higher-rate) processes migrate toward the head and shorten the expected scan.
// Membership never changes after construction.
type PriorityList struct {
	entries []Process
}

// NewPriorityList returns a priority list over processes, in the given order.
func NewPriorityList(processes []Process) *PriorityList {
	return &PriorityList{entries: append([]Process(nil), processes...)}
}

// Select draws the process whose cumulative rate share first reaches u*total, where
// u is a uniform deviate in [0, 1). total must be positive.
// If floating-point rounding causes the scan to exhaust without reaching the threshold,
// selection falls through to the last element rather than failing (see REDESIGN FLAGS).
func (l *PriorityList) Select(u float64, total Rate) (Process, error) {
	if total <= 0 {
		return nil, errors.New("total rate must be positive to select a process")
	} else if len(l.entries) == 0 {
		return nil, errors.New("priority list selection failed: list is empty")
	}

	threshold := u * float64(total)
	var cumulative float64
	selected := len(l.entries) - 1

	for position, process := range l.entries {
		rate, err := currentRate(process)
		if err != nil {
			return nil, err
		}

		cumulative += float64(rate)
		if approxGreaterOrEqual(cumulative, threshold) {
			selected = position
			break
		}
	}

	process := l.entries[selected]
	if selected > 0 {
		l.entries[selected], l.entries[selected-1] = l.entries[selected-1], l.entries[selected]
	}

	return process, nil
}

// Len returns the number of processes held.
func (l *PriorityList) Len() int {
	return len(l.entries)
}
