package stochastic

// RateAggregator maintains a running total of every tracked process's rate.
// It amortizes incremental (partial) updates against periodic full refreshes to
// bound both the per-step cost and the floating-point drift partial updates accrue.
type RateAggregator struct {
	system        *System
	total         float64
	cache         map[int]Rate
	age           int
	ageThreshold  int
	procThreshold int
}

// NewRateAggregator builds an aggregator over system's processes.
// The thresholds are derived once from the process count N:
// ageThreshold = min(1_000_000, 100*N), procThreshold = N/2.
func NewRateAggregator(system *System) (*RateAggregator, error) {
	n := system.ProcessCount()
	ageThreshold := 100 * n
	if ageThreshold > 1_000_000 {
		ageThreshold = 1_000_000
	}

	aggregator := &RateAggregator{
		system:        system,
		cache:         make(map[int]Rate, n),
		ageThreshold:  ageThreshold,
		procThreshold: n / 2,
	}
	if err := aggregator.fullRefresh(); err != nil {
		return nil, err
	}
	return aggregator, nil
}

// Total returns the current aggregated rate.
func (a *RateAggregator) Total() Rate {
	return Rate(a.total)
}

// Update recomputes the total after firedIndex's process fired, given its dependents.
// It chooses between a partial update (cheap, drifts) and a full refresh (exact, O(N))
// based on the age and dependents-count thresholds.
func (a *RateAggregator) Update(firedIndex int, dependents []int) error {
	if a.age < a.ageThreshold && len(dependents) < a.procThreshold {
		return a.partialUpdate(firedIndex, dependents)
	}
	return a.fullRefresh()
}

func (a *RateAggregator) partialUpdate(firedIndex int, dependents []int) error {
	touched := make([]int, 0, len(dependents)+1)
	touched = append(touched, firedIndex)
	touched = append(touched, dependents...)

	for _, index := range touched {
		process, found := a.system.Process(index)
		if !found {
			continue
		}

		current, err := currentRate(process)
		if err != nil {
			return err
		}

		if previous, cached := a.cache[index]; cached {
			a.total -= float64(previous)
		}

		a.total += float64(current)
		a.cache[index] = current
	}

	a.age++
	return nil
}

func (a *RateAggregator) fullRefresh() error {
	a.total = 0
	a.age = 0
	for process := range a.system.Processes() {
		rate, err := currentRate(process)
		if err != nil {
			return err
		}

		a.cache[process.Index()] = rate
		a.total += float64(rate)
	}
	return nil
}
