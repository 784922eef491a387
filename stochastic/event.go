package stochastic

import "fmt"

// Event is an immutable scheduled firing of a process.
// Rate is the process's rate at the instant the event was scheduled — it may differ
// from the process's current rate, which is exactly why it is needed by Update.
type Event struct {
	process Process
	rate    Rate
	time    Time
}

// Process returns the process this event is scheduled for.
func (e Event) Process() Process {
	return e.process
}

// Rate returns the rate snapshot recorded when this event was scheduled.
func (e Event) Rate() Rate {
	return e.rate
}

// Time returns the absolute scheduled time of this event.
func (e Event) Time() Time {
	return e.time
}

// FirstEvent samples the first firing of proc from Zero.
func FirstEvent(proc Process, random RandomSource) Event {
	rate := proc.Rate()
	return Event{process: proc, rate: rate, time: Zero + rate.SampleInterval(random)}
}

// Next resamples a fresh waiting interval for this process, starting from this event's time.
// It is used right after this process has just fired.
func (e Event) Next(random RandomSource) Event {
	rate := e.process.Rate()
	return Event{process: e.process, rate: rate, time: e.time + rate.SampleInterval(random)}
}

// Update retimes this event after a different process fired at linkedTime, changing this
// process's rate. It applies the Gibson-Bruck retiming rule, preserving the unelapsed
// fraction of the random quantile across the rate change.
// It fails if linkedTime is after this event's scheduled time.
func (e Event) Update(linkedTime Time, random RandomSource) (Event, error) {
	if linkedTime > e.time {
		return Event{}, fmt.Errorf("linked time %v is after event time %v for process %d", linkedTime, e.time, e.process.Index())
	}

	newRate := e.process.Rate()
	switch {
	case newRate.IsZero():
		return Event{process: e.process, rate: newRate, time: PositiveInfinity()}, nil
	case e.rate.IsZero():
		return Event{process: e.process, rate: newRate, time: linkedTime + newRate.SampleInterval(random)}, nil
	default:
		elapsed := float64(e.rate) / float64(newRate)
		newTime := linkedTime + Time(elapsed)*(e.time-linkedTime)
		return Event{process: e.process, rate: newRate, time: newTime}, nil
	}
}

// UpdateFrom is a convenience over Update: if linked fired for the same process as e,
// it delegates to Next; otherwise it retimes e using linked's time.
func (e Event) UpdateFrom(linked Event, random RandomSource) (Event, error) {
	if SameProcess(e.process, linked.process) {
		return e.Next(random), nil
	}
	return e.Update(linked.time, random)
}

// Compare orders events chronologically, breaking ties by higher rate first,
// then by lower process index first. It returns a negative number if e is before other,
// zero if they compare equal, and a positive number otherwise.
func (e Event) Compare(other Event) int {
	if e.time != other.time {
		if e.time < other.time {
			return -1
		}
		return 1
	}

	if e.rate != other.rate {
		if e.rate > other.rate {
			return -1
		}
		return 1
	}

	return e.process.Index() - other.process.Index()
}
