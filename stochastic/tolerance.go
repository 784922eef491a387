package stochastic

import "github.com/zefrenchwan/stochkit.git/maths"

// Epsilon is the accepted margin of error for floating point comparisons on rates.
// Time comparisons stay strict: only rate comparisons tolerate this drift.
const Epsilon = maths.LONG_EPSILON

// approxGreaterOrEqual returns true if a is greater than or equal to b, tolerating
// drift smaller than Epsilon. Delegates to the shared tolerant comparator so the
// engine's cumulative-rate threshold walks (priority list, reference direct method)
// agree on what "equal enough" means.
func approxGreaterOrEqual(a, b float64) bool {
	return maths.GreaterOrEqual(a, b)
}
